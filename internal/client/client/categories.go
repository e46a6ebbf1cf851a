package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/techblog/internal/client/models"
)

func (c *HTTPClient) categoryList(ctx context.Context, path string) ([]models.Category, error) {
	var resp models.Envelope[models.CategoriesData]
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Categories, nil
}

func (c *HTTPClient) Categories(ctx context.Context) ([]models.Category, error) {
	return c.categoryList(ctx, "/categories")
}

func (c *HTTPClient) CategoriesWithCounts(ctx context.Context) ([]models.Category, error) {
	return c.categoryList(ctx, "/categories/with-counts")
}

func (c *HTTPClient) AdminCategories(ctx context.Context) ([]models.Category, error) {
	return c.categoryList(ctx, "/categories/admin")
}

func (c *HTTPClient) GetCategory(ctx context.Context, slug string) (*models.Category, error) {
	return c.category(ctx, http.MethodGet, "/categories/"+url.PathEscape(slug), nil)
}

// CategoryPosts lists one page of a category's posts. The category filter
// of p is ignored since the slug already selects it.
func (c *HTTPClient) CategoryPosts(ctx context.Context, slug string, p models.ListParams) (*models.PostList, error) {
	p.Category = ""
	var resp models.Envelope[models.CategoryPostsData]
	if err := c.do(ctx, http.MethodGet, "/categories/"+url.PathEscape(slug)+"/posts", listValues(p), nil, &resp); err != nil {
		return nil, err
	}
	return &models.PostList{Posts: resp.Data.Posts, Pagination: resp.Data.Pagination}, nil
}

func (c *HTTPClient) CreateCategory(ctx context.Context, draft models.CategoryDraft) (*models.Category, error) {
	return c.category(ctx, http.MethodPost, "/categories", draft)
}

func (c *HTTPClient) UpdateCategory(ctx context.Context, id string, draft models.CategoryDraft) (*models.Category, error) {
	return c.category(ctx, http.MethodPut, "/categories/"+url.PathEscape(id), draft)
}

func (c *HTTPClient) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil, nil)
}

func (c *HTTPClient) UpdateCategoryCounts(ctx context.Context, id string) (*models.Category, error) {
	return c.category(ctx, http.MethodPut, "/categories/"+url.PathEscape(id)+"/update-counts", nil)
}

func (c *HTTPClient) category(ctx context.Context, method, path string, body any) (*models.Category, error) {
	var resp models.Envelope[models.CategoryData]
	if err := c.do(ctx, method, path, nil, body, &resp); err != nil {
		return nil, err
	}
	if resp.Data.Category == nil && method == http.MethodGet {
		return nil, ErrNotFound
	}
	return resp.Data.Category, nil
}
