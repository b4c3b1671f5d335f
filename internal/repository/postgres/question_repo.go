package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос, ID проставляется GORM
func (r *QuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.WithContext(ctx).First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Delete удаляет вопрос. Если строка не была удалена, возвращает ErrNotFound
func (r *QuestionRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListAll возвращает все вопросы в порядке id
func (r *QuestionRepo) ListAll(ctx context.Context) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Search выполняет регистронезависимый поиск по тексту вопроса.
// Символы % и _ в шаблоне не экранируются.
func (r *QuestionRepo) Search(ctx context.Context, pattern string) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).
		Where("question ILIKE ?", pattern).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GetByCategory возвращает все вопросы категории
func (r *QuestionRepo) GetByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).Where("category = ?", categoryID).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GetAvailable возвращает вопросы, еще не заданные в текущей викторине
func (r *QuestionRepo) GetAvailable(ctx context.Context, categoryID uint, excludeIDs []uint) ([]entity.Question, error) {
	var questions []entity.Question

	query := r.db.WithContext(ctx).Model(&entity.Question{})
	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}

	// Исключаем уже заданные вопросы
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	err := query.Order("id").Find(&questions).Error
	return questions, err
}
