package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/techblog/internal/client/client"
	"github.com/dmitrijs2005/techblog/internal/client/models"
	"github.com/dmitrijs2005/techblog/internal/common"
	"github.com/dmitrijs2005/techblog/internal/textx"
)

// CategoryService defines category operations for the CLI.
type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	WithCounts(ctx context.Context) ([]models.Category, error)
	// Admin lists every category, inactive ones included.
	Admin(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, slug string) (*models.Category, error)
	// Find resolves an id or a slug against the admin list.
	Find(ctx context.Context, idOrSlug string) (*models.Category, error)
	Create(ctx context.Context, draft models.CategoryDraft) (*models.Category, error)
	Update(ctx context.Context, id string, draft models.CategoryDraft) (*models.Category, error)
	Delete(ctx context.Context, id string) error
	RecountPosts(ctx context.Context, id string) (*models.Category, error)
}

type categoryService struct {
	api client.CategoriesAPI
}

func NewCategoryService(api client.CategoriesAPI) CategoryService {
	return &categoryService{api: api}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.api.Categories(ctx)
}

func (s *categoryService) WithCounts(ctx context.Context) ([]models.Category, error) {
	return s.api.CategoriesWithCounts(ctx)
}

func (s *categoryService) Admin(ctx context.Context) ([]models.Category, error) {
	return s.api.AdminCategories(ctx)
}

func (s *categoryService) Get(ctx context.Context, slug string) (*models.Category, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", common.ErrorValidation)
	}
	return s.api.GetCategory(ctx, slug)
}

func (s *categoryService) Find(ctx context.Context, idOrSlug string) (*models.Category, error) {
	if err := requireID(idOrSlug); err != nil {
		return nil, err
	}
	cats, err := s.api.AdminCategories(ctx)
	if err != nil {
		return nil, err
	}
	for i := range cats {
		if cats[i].ID == idOrSlug || cats[i].Slug == idOrSlug {
			return &cats[i], nil
		}
	}
	return nil, fmt.Errorf("category %q: %w", idOrSlug, client.ErrNotFound)
}

func (s *categoryService) Create(ctx context.Context, draft models.CategoryDraft) (*models.Category, error) {
	draft, err := prepareCategory(draft)
	if err != nil {
		return nil, err
	}
	return s.api.CreateCategory(ctx, draft)
}

func (s *categoryService) Update(ctx context.Context, id string, draft models.CategoryDraft) (*models.Category, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	draft, err := prepareCategory(draft)
	if err != nil {
		return nil, err
	}
	return s.api.UpdateCategory(ctx, id, draft)
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.api.DeleteCategory(ctx, id)
}

// RecountPosts asks the server to recompute a category's post count.
func (s *categoryService) RecountPosts(ctx context.Context, id string) (*models.Category, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.api.UpdateCategoryCounts(ctx, id)
}

func prepareCategory(draft models.CategoryDraft) (models.CategoryDraft, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" {
		return draft, fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if draft.Slug == "" {
		draft.Slug = textx.Slug(draft.Name)
	} else {
		draft.Slug = textx.Slug(draft.Slug)
	}
	if draft.Color == "" {
		draft.Color = models.DefaultCategoryColor
	}
	return draft, nil
}
