package client

import (
	"context"

	"github.com/dmitrijs2005/techblog/internal/client/models"
)

// AuthAPI covers the /auth endpoints.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	// VerifyToken checks token explicitly rather than the current session's.
	VerifyToken(ctx context.Context, token string) (bool, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, patch models.ProfileUpdate) (*models.ProfileResponse, error)
	Me(ctx context.Context) (*models.User, error)
}

// PostsAPI covers the /posts endpoints.
type PostsAPI interface {
	ListPosts(ctx context.Context, p models.ListParams) (*models.PostList, error)
	ListAdminPosts(ctx context.Context, p models.ListParams) (*models.PostList, error)
	GetPost(ctx context.Context, slug string) (*models.Post, error)
	TrendingPosts(ctx context.Context, limit int) ([]models.Post, error)
	Tags(ctx context.Context) ([]models.TagCount, error)
	LikePost(ctx context.Context, id string) (*models.LikeData, error)
	CreatePost(ctx context.Context, draft models.PostDraft) (*models.Post, error)
	UpdatePost(ctx context.Context, id string, draft models.PostDraft) (*models.Post, error)
	DeletePost(ctx context.Context, id string) error
}

// CategoriesAPI covers the /categories endpoints.
type CategoriesAPI interface {
	Categories(ctx context.Context) ([]models.Category, error)
	CategoriesWithCounts(ctx context.Context) ([]models.Category, error)
	AdminCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, slug string) (*models.Category, error)
	CategoryPosts(ctx context.Context, slug string, p models.ListParams) (*models.PostList, error)
	CreateCategory(ctx context.Context, draft models.CategoryDraft) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, draft models.CategoryDraft) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	UpdateCategoryCounts(ctx context.Context, id string) (*models.Category, error)
}

// UploadAPI covers the /upload endpoints. kind is models.UploadPosts or
// models.UploadAvatars.
type UploadAPI interface {
	UploadPostImage(ctx context.Context, f models.Upload) (*models.UploadedFile, error)
	UploadPostImages(ctx context.Context, files []models.Upload) ([]models.UploadedFile, error)
	UploadAvatar(ctx context.Context, f models.Upload) (*models.UploadedFile, error)
	DeleteFile(ctx context.Context, kind, filename string) error
	ListFiles(ctx context.Context, kind string, page, limit int) ([]models.UploadedFile, error)
}

// Client is the full API surface.
type Client interface {
	AuthAPI
	PostsAPI
	CategoriesAPI
	UploadAPI
	Health(ctx context.Context) error
	Close() error
}

// Authenticator supplies the bearer token and receives 401 notifications.
// The session manager implements it.
type Authenticator interface {
	Token() string
	Unauthorized(ctx context.Context)
}
