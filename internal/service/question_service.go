package service

import (
	"context"
	"errors"
	"log"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
	"github.com/yourusername/trivia-bank/internal/service/quizmanager"
)

// QuestionService предоставляет методы для работы с вопросами и викториной.
// Сервис не хранит состояния между запросами.
type QuestionService struct {
	questionRepo    repository.QuestionRepository
	categoryService *CategoryService
	selector        *quizmanager.QuestionSelector
	config          *quizmanager.Config
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryService *CategoryService,
	selector *quizmanager.QuestionSelector,
	config *quizmanager.Config,
) *QuestionService {
	return &QuestionService{
		questionRepo:    questionRepo,
		categoryService: categoryService,
		selector:        selector,
		config:          config,
	}
}

// QuestionPage - страница вопросов вместе с категориями
type QuestionPage struct {
	Questions  []entity.Question
	Total      int
	Categories []entity.Category
}

// CreateQuestionInput содержит поля нового вопроса. nil означает, что поле
// отсутствует в запросе.
type CreateQuestionInput struct {
	Question   *string
	Answer     *string
	Category   *int
	Difficulty *int
}

// ListQuestions возвращает страницу page вопросов, упорядоченных по id
func (s *QuestionService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	questions, err := s.questionRepo.ListAll(ctx)
	if err != nil {
		log.Printf("[QuestionService] Ошибка получения вопросов: %v", err)
		return nil, apperrors.PersistenceFailure("ListQuestions", err)
	}

	paged, err := quizmanager.Paginate(questions, page)
	if err != nil {
		return nil, err
	}

	// Отсутствие категорий не мешает отдать страницу вопросов
	categories, err := s.categoryService.ListCategories(ctx)
	if err != nil && apperrors.ReasonOf(err) != apperrors.ReasonEmptyResult {
		return nil, err
	}

	return &QuestionPage{
		Questions:  paged.Items,
		Total:      paged.Total,
		Categories: categories,
	}, nil
}

// GetQuestion возвращает вопрос по ID
func (s *QuestionService) GetQuestion(ctx context.Context, id uint) (*entity.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("GetQuestion", err)
		}
		return nil, apperrors.PersistenceFailure("GetQuestion", err)
	}
	return question, nil
}

// CreateQuestion создает вопрос и возвращает его ID. Все четыре поля обязательны.
func (s *QuestionService) CreateQuestion(ctx context.Context, input CreateQuestionInput) (uint, error) {
	if input.Question == nil || input.Answer == nil || input.Category == nil || input.Difficulty == nil {
		return 0, apperrors.InvalidInput("CreateQuestion", "question, answer, category and difficulty are required")
	}
	// Верхней границы нет: сложность хранится как пришла
	if *input.Difficulty < s.config.MinDifficulty {
		return 0, apperrors.InvalidInput("CreateQuestion", "difficulty must be at least %d", s.config.MinDifficulty)
	}

	question := &entity.Question{
		Question:   *input.Question,
		Answer:     *input.Answer,
		Category:   *input.Category,
		Difficulty: *input.Difficulty,
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		log.Printf("[QuestionService] Ошибка создания вопроса: %v", err)
		return 0, apperrors.PersistenceFailure("CreateQuestion", err)
	}

	log.Printf("[QuestionService] Создан вопрос ID=%d (категория %d)", question.ID, question.Category)
	return question.ID, nil
}

// DeleteQuestion удаляет вопрос и возвращает его ID.
// Повторное удаление того же ID возвращает NotFound.
func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) (uint, error) {
	if _, err := s.GetQuestion(ctx, id); err != nil {
		return 0, err
	}

	if err := s.questionRepo.Delete(ctx, id); err != nil {
		// Вопрос мог быть удален параллельным запросом между чтением и удалением
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, apperrors.NotFound("DeleteQuestion", err)
		}
		log.Printf("[QuestionService] Ошибка удаления вопроса ID=%d: %v", id, err)
		return 0, apperrors.PersistenceFailure("DeleteQuestion", err)
	}

	log.Printf("[QuestionService] Удален вопрос ID=%d", id)
	return id, nil
}

// SearchQuestions ищет вопросы, в тексте которых встречается term (без учета регистра)
func (s *QuestionService) SearchQuestions(ctx context.Context, term *string) ([]entity.Question, error) {
	normalized, err := quizmanager.NormalizeSearchTerm(term)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.Search(ctx, quizmanager.LikePattern(normalized))
	if err != nil {
		log.Printf("[QuestionService] Ошибка поиска по '%s': %v", normalized, err)
		return nil, apperrors.PersistenceFailure("SearchQuestions", err)
	}
	if len(questions) == 0 {
		return nil, apperrors.EmptyResult("SearchQuestions")
	}
	return questions, nil
}

// QuestionsByCategory возвращает все вопросы категории
func (s *QuestionService) QuestionsByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error) {
	questions, err := s.questionRepo.GetByCategory(ctx, categoryID)
	if err != nil {
		log.Printf("[QuestionService] Ошибка получения вопросов категории %d: %v", categoryID, err)
		return nil, apperrors.PersistenceFailure("QuestionsByCategory", err)
	}
	if len(questions) == 0 {
		return nil, apperrors.EmptyResult("QuestionsByCategory")
	}
	return questions, nil
}

// PlayQuiz выбирает следующий вопрос викторины.
// Возвращает nil без ошибки, когда вопросы закончились.
func (s *QuestionService) PlayQuiz(ctx context.Context, session quizmanager.Session) (*entity.Question, error) {
	available, err := s.questionRepo.GetAvailable(ctx, session.CategoryID, session.PreviousIDs)
	if err != nil {
		log.Printf("[QuestionService] Ошибка получения кандидатов викторины (категория %d): %v", session.CategoryID, err)
		return nil, apperrors.PersistenceFailure("PlayQuiz", err)
	}

	candidates := quizmanager.Candidates(available, session)
	question := s.selector.Next(candidates)
	if question == nil {
		log.Printf("[QuestionService] Викторина завершена: категория %d, задано %d вопросов",
			session.CategoryID, len(session.PreviousIDs))
		return nil, nil
	}

	return question, nil
}

// ExportQuestions возвращает все вопросы для выгрузки
func (s *QuestionService) ExportQuestions(ctx context.Context) ([]entity.Question, error) {
	questions, err := s.questionRepo.ListAll(ctx)
	if err != nil {
		log.Printf("[QuestionService] Ошибка выгрузки вопросов: %v", err)
		return nil, apperrors.PersistenceFailure("ExportQuestions", err)
	}
	if len(questions) == 0 {
		return nil, apperrors.EmptyResult("ExportQuestions")
	}
	log.Printf("[QuestionService] Выгрузка %d вопросов", len(questions))
	return questions, nil
}
