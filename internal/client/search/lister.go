package search

import (
	"context"

	"github.com/dmitrijs2005/techblog/internal/client/client"
	"github.com/dmitrijs2005/techblog/internal/client/models"
)

// Lister fetches one page of posts.
type Lister interface {
	List(ctx context.Context, p models.ListParams) (*models.PostList, error)
}

// ListerFunc adapts a function to Lister.
type ListerFunc func(ctx context.Context, p models.ListParams) (*models.PostList, error)

func (f ListerFunc) List(ctx context.Context, p models.ListParams) (*models.PostList, error) {
	return f(ctx, p)
}

// PostLister lists published posts (GET /posts).
func PostLister(api client.PostsAPI) Lister {
	return ListerFunc(api.ListPosts)
}

// AdminPostLister lists posts of every status (GET /posts/admin).
func AdminPostLister(api client.PostsAPI) Lister {
	return ListerFunc(api.ListAdminPosts)
}

// CategoryPostLister lists the posts of one category
// (GET /categories/{slug}/posts).
func CategoryPostLister(api client.CategoriesAPI, slug string) Lister {
	return ListerFunc(func(ctx context.Context, p models.ListParams) (*models.PostList, error) {
		return api.CategoryPosts(ctx, slug, p)
	})
}
