package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/techblog/internal/client/client"
	"github.com/dmitrijs2005/techblog/internal/client/models"
	"github.com/dmitrijs2005/techblog/internal/common"
)

// MaxImageBytes is the largest image the CLI will send.
const MaxImageBytes = 5 << 20

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// MediaService uploads local image files and manages what was uploaded.
// Paths are checked for an image extension and MaxImageBytes before any
// request is made.
type MediaService interface {
	PostImage(ctx context.Context, path string) (*models.UploadedFile, error)
	PostImages(ctx context.Context, paths []string) ([]models.UploadedFile, error)
	Avatar(ctx context.Context, path string) (*models.UploadedFile, error)
	Files(ctx context.Context, kind string, page int) ([]models.UploadedFile, error)
	Remove(ctx context.Context, kind, filename string) error
}

type mediaService struct {
	api client.UploadAPI
}

func NewMediaService(api client.UploadAPI) MediaService {
	return &mediaService{api: api}
}

func (s *mediaService) PostImage(ctx context.Context, path string) (*models.UploadedFile, error) {
	u, err := openImage(path)
	if err != nil {
		return nil, err
	}
	defer closeUpload(u)
	return s.api.UploadPostImage(ctx, u)
}

func (s *mediaService) PostImages(ctx context.Context, paths []string) ([]models.UploadedFile, error) {
	uploads := make([]models.Upload, 0, len(paths))
	defer func() {
		for _, u := range uploads {
			closeUpload(u)
		}
	}()
	for _, p := range paths {
		u, err := openImage(p)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, u)
	}
	return s.api.UploadPostImages(ctx, uploads)
}

func (s *mediaService) Avatar(ctx context.Context, path string) (*models.UploadedFile, error) {
	u, err := openImage(path)
	if err != nil {
		return nil, err
	}
	defer closeUpload(u)
	return s.api.UploadAvatar(ctx, u)
}

func (s *mediaService) Files(ctx context.Context, kind string, page int) ([]models.UploadedFile, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}
	return s.api.ListFiles(ctx, kind, page, 0)
}

func (s *mediaService) Remove(ctx context.Context, kind, filename string) error {
	if err := validKind(kind); err != nil {
		return err
	}
	filename = strings.TrimSpace(filename)
	if filename == "" || filename != filepath.Base(filename) {
		return fmt.Errorf("%w: invalid file name %q", common.ErrorValidation, filename)
	}
	return s.api.DeleteFile(ctx, kind, filename)
}

func validKind(kind string) error {
	switch kind {
	case models.UploadPosts, models.UploadAvatars:
		return nil
	}
	return fmt.Errorf("%w: unknown upload type %q", common.ErrorValidation, kind)
}

// openImage opens path for upload; the caller closes it with closeUpload.
func openImage(path string) (models.Upload, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return models.Upload{}, fmt.Errorf("%w: file path is required", common.ErrorValidation)
	}
	if !imageExtensions[strings.ToLower(filepath.Ext(path))] {
		return models.Upload{}, fmt.Errorf("%w: %s is not a jpg, png, gif or webp image", common.ErrorValidation, filepath.Base(path))
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Upload{}, fmt.Errorf("%w: %s does not exist", common.ErrorValidation, path)
		}
		return models.Upload{}, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return models.Upload{}, err
	}
	if info.IsDir() || info.Size() > MaxImageBytes {
		f.Close()
		return models.Upload{}, fmt.Errorf("%w: %s must be a file of at most %d MB", common.ErrorValidation, filepath.Base(path), MaxImageBytes>>20)
	}
	return models.Upload{Name: path, Content: f}, nil
}

func closeUpload(u models.Upload) {
	if f, ok := u.Content.(*os.File); ok {
		_ = f.Close()
	}
}
