package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/techblog/internal/client/models"
)

// CategoryAll is the category filter value meaning "no filter".
const CategoryAll = "all"

// listValues encodes p the way the list endpoints expect: empty values and
// the "all" category are left out.
func listValues(p models.ListParams) url.Values {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Category != "" && p.Category != CategoryAll {
		q.Set("category", p.Category)
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.IncludeUnpublished {
		q.Set("includeUnpublished", "true")
	}
	return q
}

func (c *HTTPClient) listPosts(ctx context.Context, path string, p models.ListParams) (*models.PostList, error) {
	var resp models.Envelope[models.PostList]
	if err := c.do(ctx, http.MethodGet, path, listValues(p), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *HTTPClient) ListPosts(ctx context.Context, p models.ListParams) (*models.PostList, error) {
	return c.listPosts(ctx, "/posts", p)
}

func (c *HTTPClient) ListAdminPosts(ctx context.Context, p models.ListParams) (*models.PostList, error) {
	return c.listPosts(ctx, "/posts/admin", p)
}

func (c *HTTPClient) GetPost(ctx context.Context, slug string) (*models.Post, error) {
	var resp models.Envelope[models.PostData]
	if err := c.do(ctx, http.MethodGet, "/posts/"+url.PathEscape(slug), nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data.Post == nil {
		return nil, ErrNotFound
	}
	return resp.Data.Post, nil
}

func (c *HTTPClient) TrendingPosts(ctx context.Context, limit int) ([]models.Post, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var resp models.Envelope[models.PostsData]
	if err := c.do(ctx, http.MethodGet, "/posts/trending", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Posts, nil
}

func (c *HTTPClient) Tags(ctx context.Context) ([]models.TagCount, error) {
	var resp models.Envelope[models.TagsData]
	if err := c.do(ctx, http.MethodGet, "/posts/tags", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Tags, nil
}

func (c *HTTPClient) LikePost(ctx context.Context, id string) (*models.LikeData, error) {
	var resp models.Envelope[models.LikeData]
	if err := c.do(ctx, http.MethodPost, "/posts/"+url.PathEscape(id)+"/like", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, draft models.PostDraft) (*models.Post, error) {
	return c.writePost(ctx, http.MethodPost, "/posts", draft)
}

func (c *HTTPClient) UpdatePost(ctx context.Context, id string, draft models.PostDraft) (*models.Post, error) {
	return c.writePost(ctx, http.MethodPut, "/posts/"+url.PathEscape(id), draft)
}

func (c *HTTPClient) writePost(ctx context.Context, method, path string, draft models.PostDraft) (*models.Post, error) {
	var resp models.Envelope[models.PostData]
	if err := c.do(ctx, method, path, nil, draft, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Post, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+url.PathEscape(id), nil, nil, nil)
}
