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

const categoriesCacheKey = "categories:all"

// CategoryService предоставляет методы для чтения категорий
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cacheRepo    repository.CacheRepository // может быть nil, если Redis отключен
	config       *quizmanager.Config
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	cacheRepo repository.CacheRepository,
	config *quizmanager.Config,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		config:       config,
	}
}

// ListCategories возвращает все категории, отсортированные по type.
// Пустой список - EmptyResult.
func (s *CategoryService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	if categories, ok := s.getCached(ctx); ok {
		return categories, nil
	}

	categories, err := s.categoryRepo.ListOrderedByType(ctx)
	if err != nil {
		log.Printf("[CategoryService] Ошибка получения категорий: %v", err)
		return nil, apperrors.PersistenceFailure("ListCategories", err)
	}
	if len(categories) == 0 {
		return nil, apperrors.EmptyResult("ListCategories")
	}

	s.setCached(ctx, categories)
	return categories, nil
}

// getCached читает категории из кеша. Ошибки Redis не прерывают запрос.
func (s *CategoryService) getCached(ctx context.Context) ([]entity.Category, bool) {
	if s.cacheRepo == nil {
		return nil, false
	}

	var categories []entity.Category
	err := s.cacheRepo.GetJSON(ctx, categoriesCacheKey, &categories)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[CategoryService] WARNING: ошибка чтения кеша категорий: %v", err)
		}
		return nil, false
	}
	if len(categories) == 0 {
		return nil, false
	}
	return categories, true
}

func (s *CategoryService) setCached(ctx context.Context, categories []entity.Category) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.SetJSON(ctx, categoriesCacheKey, categories, s.config.CategoriesCacheTTL); err != nil {
		log.Printf("[CategoryService] WARNING: не удалось сохранить категории в кеш: %v", err)
	}
}
