package handler

import (
	"context"
	"sort"
	"strings"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// fakeQuestionRepo хранит вопросы в памяти
type fakeQuestionRepo struct {
	nextID    uint
	questions map[uint]entity.Question
	failWith  error
}

func newFakeQuestionRepo(questions ...entity.Question) *fakeQuestionRepo {
	repo := &fakeQuestionRepo{questions: make(map[uint]entity.Question)}
	for _, q := range questions {
		repo.nextID++
		q.ID = repo.nextID
		repo.questions[q.ID] = q
	}
	return repo
}

func (r *fakeQuestionRepo) filter(keep func(q entity.Question) bool) ([]entity.Question, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var result []entity.Question
	for _, q := range r.questions {
		if keep(q) {
			result = append(result, q)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeQuestionRepo) Create(_ context.Context, question *entity.Question) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.nextID++
	question.ID = r.nextID
	r.questions[question.ID] = *question
	return nil
}

func (r *fakeQuestionRepo) GetByID(_ context.Context, id uint) (*entity.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &q, nil
}

func (r *fakeQuestionRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.questions[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.questions, id)
	return nil
}

func (r *fakeQuestionRepo) ListAll(_ context.Context) ([]entity.Question, error) {
	return r.filter(func(entity.Question) bool { return true })
}

func (r *fakeQuestionRepo) Search(_ context.Context, pattern string) ([]entity.Question, error) {
	term := strings.ToLower(strings.Trim(pattern, "%"))
	return r.filter(func(q entity.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	})
}

func (r *fakeQuestionRepo) GetByCategory(_ context.Context, categoryID uint) ([]entity.Question, error) {
	return r.filter(func(q entity.Question) bool { return q.Category == int(categoryID) })
}

func (r *fakeQuestionRepo) GetAvailable(_ context.Context, categoryID uint, excludeIDs []uint) ([]entity.Question, error) {
	excluded := make(map[uint]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	return r.filter(func(q entity.Question) bool {
		return q.InCategory(categoryID) && !excluded[q.ID]
	})
}

// fakeCategoryRepo возвращает фиксированный список категорий
type fakeCategoryRepo struct {
	categories []entity.Category
}

func (r *fakeCategoryRepo) ListOrderedByType(_ context.Context) ([]entity.Category, error) {
	result := append([]entity.Category(nil), r.categories...)
	sort.Slice(result, func(i, j int) bool { return result[i].Type < result[j].Type })
	return result, nil
}
