package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dmitrijs2005/techblog/internal/client/client"
	"github.com/dmitrijs2005/techblog/internal/client/models"
	"github.com/dmitrijs2005/techblog/internal/client/session"
)

// fakeAPI records what services send. Unset methods panic through the
// embedded nil interface.
type fakeAPI struct {
	client.Client

	created     *models.PostDraft
	updatedID   string
	updated     *models.PostDraft
	deletedID   string
	trendingN   int
	catCreated  *models.CategoryDraft
	catUpdateID string
	recountID   string
	categories  []models.Category
	uploaded    []string
	deletedFile string
	err         error
}

func (f *fakeAPI) GetPost(_ context.Context, slug string) (*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Post{Slug: slug}, nil
}

func (f *fakeAPI) TrendingPosts(_ context.Context, limit int) ([]models.Post, error) {
	f.trendingN = limit
	return nil, f.err
}

func (f *fakeAPI) LikePost(context.Context, string) (*models.LikeData, error) {
	return &models.LikeData{Likes: 3, IsLiked: true}, f.err
}

func (f *fakeAPI) CreatePost(_ context.Context, d models.PostDraft) (*models.Post, error) {
	f.created = &d
	return &models.Post{ID: "p1", Title: d.Title, Slug: d.Slug}, f.err
}

func (f *fakeAPI) UpdatePost(_ context.Context, id string, d models.PostDraft) (*models.Post, error) {
	f.updatedID, f.updated = id, &d
	return &models.Post{ID: id, Status: d.Status}, f.err
}

func (f *fakeAPI) DeletePost(_ context.Context, id string) error {
	f.deletedID = id
	return f.err
}

func (f *fakeAPI) CreateCategory(_ context.Context, d models.CategoryDraft) (*models.Category, error) {
	f.catCreated = &d
	return &models.Category{ID: "c1", Name: d.Name, Slug: d.Slug, Color: d.Color}, f.err
}

func (f *fakeAPI) UpdateCategory(_ context.Context, id string, d models.CategoryDraft) (*models.Category, error) {
	f.catUpdateID, f.catCreated = id, &d
	return &models.Category{ID: id}, f.err
}

func (f *fakeAPI) UpdateCategoryCounts(_ context.Context, id string) (*models.Category, error) {
	f.recountID = id
	return &models.Category{ID: id, PostCount: 4}, f.err
}

func (f *fakeAPI) AdminCategories(context.Context) ([]models.Category, error) {
	return f.categories, f.err
}

func (f *fakeAPI) GetCategory(_ context.Context, slug string) (*models.Category, error) {
	return &models.Category{Slug: slug}, f.err
}

func (f *fakeAPI) upload(route string, u models.Upload) models.UploadedFile {
	b, _ := io.ReadAll(u.Content)
	f.uploaded = append(f.uploaded, route+" "+filepath.Base(u.Name)+" "+string(b))
	return models.UploadedFile{URL: "/uploads/" + filepath.Base(u.Name)}
}

func (f *fakeAPI) UploadPostImage(_ context.Context, u models.Upload) (*models.UploadedFile, error) {
	file := f.upload("post-image", u)
	return &file, f.err
}

func (f *fakeAPI) UploadPostImages(_ context.Context, us []models.Upload) ([]models.UploadedFile, error) {
	var files []models.UploadedFile
	for _, u := range us {
		files = append(files, f.upload("post-images", u))
	}
	return files, f.err
}

func (f *fakeAPI) UploadAvatar(_ context.Context, u models.Upload) (*models.UploadedFile, error) {
	file := f.upload("avatar", u)
	return &file, f.err
}

func (f *fakeAPI) DeleteFile(_ context.Context, kind, filename string) error {
	f.deletedFile = kind + "/" + filename
	return f.err
}

func (f *fakeAPI) ListFiles(_ context.Context, kind string, page, _ int) ([]models.UploadedFile, error) {
	return []models.UploadedFile{{URL: fmt.Sprintf("/uploads/%s?page=%d", kind, page)}}, f.err
}

type fakeUpdater struct {
	calls int
	last  models.ProfileUpdate
	res   session.Result[models.ProfileResponse]
}

func (f *fakeUpdater) UpdateProfile(_ context.Context, p models.ProfileUpdate) session.Result[models.ProfileResponse] {
	f.calls++
	f.last = p
	return f.res
}
