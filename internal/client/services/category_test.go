package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/techblog/internal/client/client"
	"github.com/dmitrijs2005/techblog/internal/client/models"
	"github.com/dmitrijs2005/techblog/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_CreateDefaults(t *testing.T) {
	api := &fakeAPI{}
	s := NewCategoryService(api)

	c, err := s.Create(context.Background(), models.CategoryDraft{Name: " Web Development "})
	require.NoError(t, err)

	assert.Equal(t, models.CategoryDraft{Name: "Web Development", Slug: "web-development", Color: models.DefaultCategoryColor}, *api.catCreated)
	assert.Equal(t, "c1", c.ID)
}

func TestCategoryService_Validation(t *testing.T) {
	api := &fakeAPI{}
	s := NewCategoryService(api)
	ctx := context.Background()

	_, err := s.Create(ctx, models.CategoryDraft{Name: "  "})
	assert.ErrorIs(t, err, common.ErrorValidation)
	_, err = s.Update(ctx, "", models.CategoryDraft{Name: "Go"})
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.ErrorIs(t, s.Delete(ctx, ""), common.ErrorValidation)
	_, err = s.RecountPosts(ctx, "")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestCategoryService_UpdateAndRecount(t *testing.T) {
	api := &fakeAPI{}
	s := NewCategoryService(api)
	ctx := context.Background()

	_, err := s.Update(ctx, "c1", models.CategoryDraft{Name: "Go", Slug: "Golang", Color: "#00ADD8"})
	require.NoError(t, err)
	assert.Equal(t, "c1", api.catUpdateID)
	assert.Equal(t, models.CategoryDraft{Name: "Go", Slug: "golang", Color: "#00ADD8"}, *api.catCreated)

	c, err := s.RecountPosts(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 4, c.PostCount)
	assert.Equal(t, "c1", api.recountID)
}

func TestCategoryService_Find(t *testing.T) {
	api := &fakeAPI{categories: []models.Category{
		{ID: "c1", Slug: "go", Name: "Go"},
		{ID: "c2", Slug: "devops", Name: "DevOps"},
	}}
	s := NewCategoryService(api)
	ctx := context.Background()

	c, err := s.Find(ctx, "devops")
	require.NoError(t, err)
	assert.Equal(t, "c2", c.ID)

	c, err = s.Find(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Go", c.Name)

	_, err = s.Find(ctx, "rust")
	assert.ErrorIs(t, err, client.ErrNotFound)
	_, err = s.Find(ctx, " ")
	assert.ErrorIs(t, err, common.ErrorValidation)
	_, err = s.Get(ctx, "")
	assert.ErrorIs(t, err, common.ErrorValidation)
}
