package store

import (
	"context"
	"eventsBoard/internal/models"
	"eventsBoard/internal/storage"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

type CategoryService struct {
	log     *slog.Logger
	backend CategoriesBackend
}

func NewCategoryService(log *slog.Logger, backend CategoriesBackend) *CategoryService {
	return &CategoryService{log: log, backend: backend}
}

func (s *CategoryService) Fetch(ctx context.Context, sess *Session) ([]models.Category, error) {
	const op = "store.CategoryService.Fetch"

	categories, err := s.backend.ListCategories(ctx, sess.Auth.Token())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sess.Categories.replace(categories)

	return sess.Categories.snapshot(), nil
}

func (s *CategoryService) EnsureLoaded(ctx context.Context, sess *Session) error {
	if sess.Categories.isLoaded() {
		return nil
	}

	_, err := s.Fetch(ctx, sess)
	return err
}

// List returns the categories ordered by name.
func (s *CategoryService) List(ctx context.Context, sess *Session) ([]models.Category, error) {
	if err := s.EnsureLoaded(ctx, sess); err != nil {
		return nil, err
	}

	categories := sess.Categories.snapshot()
	sort.SliceStable(categories, func(i, j int) bool {
		return strings.ToLower(categories[i].Name) < strings.ToLower(categories[j].Name)
	})

	return categories, nil
}

func (s *CategoryService) GetBySlug(ctx context.Context, sess *Session, slug string) (models.Category, error) {
	const op = "store.CategoryService.GetBySlug"

	if err := s.EnsureLoaded(ctx, sess); err != nil {
		return models.Category{}, err
	}

	for _, c := range sess.Categories.snapshot() {
		if c.Slug == slug {
			return c, nil
		}
	}

	return models.Category{}, fmt.Errorf("%s: %w", op, storage.ErrCategoryNotFound)
}

func (s *CategoryService) Create(ctx context.Context, sess *Session, in models.CategoryInput) (models.Category, error) {
	const op = "store.CategoryService.Create"

	created, err := s.backend.CreateCategory(ctx, sess.Auth.Token(), in)
	if err != nil {
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	state := sess.Categories
	state.mu.Lock()
	state.categories = append(state.categories, created)
	state.mu.Unlock()

	s.log.Info("category created", slog.String("op", op), slog.String("slug", created.Slug))

	return created, nil
}

func (s *CategoryService) Delete(ctx context.Context, sess *Session, id string) error {
	const op = "store.CategoryService.Delete"

	if err := s.backend.DeleteCategory(ctx, sess.Auth.Token(), id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	state := sess.Categories
	state.mu.Lock()
	kept := make([]models.Category, 0, len(state.categories))
	for _, c := range state.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	state.categories = kept
	state.mu.Unlock()

	s.log.Info("category deleted", slog.String("op", op), slog.String("id", id))

	return nil
}
