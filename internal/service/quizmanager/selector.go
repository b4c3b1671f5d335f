package quizmanager

import (
	"math/rand"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// QuestionSelector выбирает следующий вопрос викторины равновероятно из кандидатов
type QuestionSelector struct {
	intn func(n int) int
}

// NewQuestionSelector создаёт селектор на глобальном генераторе math/rand
func NewQuestionSelector() *QuestionSelector {
	return &QuestionSelector{intn: rand.Intn}
}

// NewQuestionSelectorWithSource создаёт селектор с заданным генератором
// intn(n) должен возвращать число из [0, n)
func NewQuestionSelectorWithSource(intn func(n int) int) *QuestionSelector {
	return &QuestionSelector{intn: intn}
}

// Next возвращает случайного кандидата или nil, если кандидатов нет.
// nil - штатное завершение викторины, а не ошибка.
func (s *QuestionSelector) Next(candidates []entity.Question) *entity.Question {
	if len(candidates) == 0 {
		return nil
	}
	picked := candidates[s.intn(len(candidates))]
	return &picked
}

// Candidates отбирает из questions вопросы категории session.CategoryID,
// которых нет в session.PreviousIDs. Используется, когда кандидаты
// не отфильтрованы хранилищем.
func Candidates(questions []entity.Question, session Session) []entity.Question {
	seen := make(map[uint]struct{}, len(session.PreviousIDs))
	for _, id := range session.PreviousIDs {
		seen[id] = struct{}{}
	}

	var result []entity.Question
	for i := range questions {
		if !questions[i].InCategory(session.CategoryID) {
			continue
		}
		if _, ok := seen[questions[i].ID]; ok {
			continue
		}
		result = append(result, questions[i])
	}
	return result
}
