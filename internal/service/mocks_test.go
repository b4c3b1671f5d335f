package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/yourusername/trivia-bank/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// ============================================================================
// Моки репозиториев (testify/mock)
// ============================================================================

// MockQuestionRepository реализует repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *entity.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuestionRepository) ListAll(ctx context.Context) ([]entity.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) Search(ctx context.Context, pattern string) ([]entity.Question, error) {
	args := m.Called(ctx, pattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetAvailable(ctx context.Context, categoryID uint, excludeIDs []uint) ([]entity.Question, error) {
	args := m.Called(ctx, categoryID, excludeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

// MockCategoryRepository реализует repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListOrderedByType(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

// MockCacheRepository реализует repository.CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepository) GetJSON(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

// ============================================================================
// memoryQuestionRepo - простое хранилище в памяти для сценарных тестов
// ============================================================================

type memoryQuestionRepo struct {
	nextID    uint
	questions map[uint]entity.Question
}

func newMemoryQuestionRepo(questions ...entity.Question) *memoryQuestionRepo {
	repo := &memoryQuestionRepo{questions: make(map[uint]entity.Question)}
	for _, q := range questions {
		if q.ID == 0 {
			repo.nextID++
			q.ID = repo.nextID
		} else if q.ID > repo.nextID {
			repo.nextID = q.ID
		}
		repo.questions[q.ID] = q
	}
	return repo
}

func (r *memoryQuestionRepo) sorted(filter func(q entity.Question) bool) []entity.Question {
	var result []entity.Question
	for _, q := range r.questions {
		if filter(q) {
			result = append(result, q)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (r *memoryQuestionRepo) Create(_ context.Context, question *entity.Question) error {
	r.nextID++
	question.ID = r.nextID
	r.questions[question.ID] = *question
	return nil
}

func (r *memoryQuestionRepo) GetByID(_ context.Context, id uint) (*entity.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &q, nil
}

func (r *memoryQuestionRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.questions[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.questions, id)
	return nil
}

func (r *memoryQuestionRepo) ListAll(_ context.Context) ([]entity.Question, error) {
	return r.sorted(func(entity.Question) bool { return true }), nil
}

// Search поддерживает только шаблоны вида %term% без подстановочных символов внутри
func (r *memoryQuestionRepo) Search(_ context.Context, pattern string) ([]entity.Question, error) {
	term := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(pattern, "%"), "%"))
	return r.sorted(func(q entity.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	}), nil
}

func (r *memoryQuestionRepo) GetByCategory(_ context.Context, categoryID uint) ([]entity.Question, error) {
	return r.sorted(func(q entity.Question) bool { return q.Category == int(categoryID) }), nil
}

func (r *memoryQuestionRepo) GetAvailable(_ context.Context, categoryID uint, excludeIDs []uint) ([]entity.Question, error) {
	excluded := make(map[uint]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	return r.sorted(func(q entity.Question) bool {
		return q.InCategory(categoryID) && !excluded[q.ID]
	}), nil
}
