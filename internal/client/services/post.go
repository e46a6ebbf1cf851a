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

const (
	ExcerptLength        = 200
	DefaultTrendingLimit = 5
)

// PostService defines post operations for the CLI.
//
// Create and Update fill a missing slug from the title and a missing
// excerpt from the content before sending the draft.
type PostService interface {
	Get(ctx context.Context, slug string) (*models.Post, error)
	Trending(ctx context.Context, limit int) ([]models.Post, error)
	Tags(ctx context.Context) ([]models.TagCount, error)
	Like(ctx context.Context, id string) (*models.LikeData, error)
	Create(ctx context.Context, draft models.PostDraft) (*models.Post, error)
	Update(ctx context.Context, id string, draft models.PostDraft) (*models.Post, error)
	SetStatus(ctx context.Context, id, status string) (*models.Post, error)
	Delete(ctx context.Context, id string) error
}

type postService struct {
	api client.PostsAPI
}

func NewPostService(api client.PostsAPI) PostService {
	return &postService{api: api}
}

func (s *postService) Get(ctx context.Context, slug string) (*models.Post, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", common.ErrorValidation)
	}
	return s.api.GetPost(ctx, slug)
}

func (s *postService) Trending(ctx context.Context, limit int) ([]models.Post, error) {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}
	return s.api.TrendingPosts(ctx, limit)
}

func (s *postService) Tags(ctx context.Context) ([]models.TagCount, error) {
	return s.api.Tags(ctx)
}

func (s *postService) Like(ctx context.Context, id string) (*models.LikeData, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.api.LikePost(ctx, id)
}

func (s *postService) Create(ctx context.Context, draft models.PostDraft) (*models.Post, error) {
	draft, err := preparePost(draft, true)
	if err != nil {
		return nil, err
	}
	return s.api.CreatePost(ctx, draft)
}

func (s *postService) Update(ctx context.Context, id string, draft models.PostDraft) (*models.Post, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	draft, err := preparePost(draft, false)
	if err != nil {
		return nil, err
	}
	return s.api.UpdatePost(ctx, id, draft)
}

// SetStatus publishes, archives or unpublishes a post.
func (s *postService) SetStatus(ctx context.Context, id, status string) (*models.Post, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	status = strings.ToLower(strings.TrimSpace(status))
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", common.ErrorValidation, status)
	}
	return s.api.UpdatePost(ctx, id, models.PostDraft{Status: status})
}

func (s *postService) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.api.DeletePost(ctx, id)
}

// preparePost validates draft and fills derived fields. Partial updates
// only validate what they carry.
func preparePost(draft models.PostDraft, create bool) (models.PostDraft, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	if create {
		if draft.Title == "" {
			return draft, fmt.Errorf("%w: title is required", common.ErrorValidation)
		}
		if textx.Blank(draft.Content) {
			return draft, fmt.Errorf("%w: content is required", common.ErrorValidation)
		}
		if draft.Status == "" {
			draft.Status = models.StatusDraft
		}
	}
	if draft.Status != "" && !models.ValidStatus(draft.Status) {
		return draft, fmt.Errorf("%w: unknown status %q", common.ErrorValidation, draft.Status)
	}

	if draft.Slug == "" && draft.Title != "" {
		draft.Slug = textx.Slug(draft.Title)
	} else {
		draft.Slug = textx.Slug(draft.Slug)
	}
	if draft.Excerpt == "" && draft.Content != "" {
		draft.Excerpt = textx.Excerpt(draft.Content, ExcerptLength)
	}
	if draft.Tags != nil {
		tags := make([]string, 0, len(draft.Tags))
		for _, tag := range draft.Tags {
			if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
				tags = append(tags, tag)
			}
		}
		draft.Tags = tags
	}
	return draft, nil
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", common.ErrorValidation)
	}
	return nil
}
