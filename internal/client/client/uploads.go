package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/techblog/internal/client/models"
)

// Multipart field names the upload endpoints read.
const (
	fieldImage  = "image"
	fieldImages = "images"
	fieldAvatar = "avatar"
)

// rawBody is sent as is instead of being JSON-encoded.
type rawBody struct {
	contentType string
	data        []byte
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// multipartBody encodes files as one multipart/form-data body, every file
// under field.
func multipartBody(field string, files ...models.Upload) (rawBody, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		if f.Content == nil {
			return rawBody{}, fmt.Errorf("upload %q: no content", f.Name)
		}
		data, err := io.ReadAll(f.Content)
		if err != nil {
			return rawBody{}, fmt.Errorf("read %q: %w", f.Name, err)
		}
		name := filepath.Base(f.Name)
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(field), quoteEscaper.Replace(name)))
		h.Set("Content-Type", contentType(name, data))
		part, err := w.CreatePart(h)
		if err != nil {
			return rawBody{}, err
		}
		if _, err := part.Write(data); err != nil {
			return rawBody{}, err
		}
	}
	if err := w.Close(); err != nil {
		return rawBody{}, err
	}
	return rawBody{contentType: w.FormDataContentType(), data: buf.Bytes()}, nil
}

func contentType(name string, data []byte) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); t != "" {
		return t
	}
	return http.DetectContentType(data)
}

func (c *HTTPClient) uploadOne(ctx context.Context, path, field string, f models.Upload) (*models.UploadedFile, error) {
	body, err := multipartBody(field, f)
	if err != nil {
		return nil, err
	}
	var resp models.Envelope[models.UploadedFile]
	if err := c.do(ctx, http.MethodPost, path, nil, body, &resp); err != nil {
		return nil, err
	}
	if resp.Data.URL == "" {
		return nil, fmt.Errorf("upload %s: response has no url", path)
	}
	return &resp.Data, nil
}

// UploadPostImage stores an image for use in a post (POST /upload/post-image).
func (c *HTTPClient) UploadPostImage(ctx context.Context, f models.Upload) (*models.UploadedFile, error) {
	return c.uploadOne(ctx, "/upload/post-image", fieldImage, f)
}

// UploadAvatar stores a profile picture (POST /upload/avatar).
func (c *HTTPClient) UploadAvatar(ctx context.Context, f models.Upload) (*models.UploadedFile, error) {
	return c.uploadOne(ctx, "/upload/avatar", fieldAvatar, f)
}

func (c *HTTPClient) UploadPostImages(ctx context.Context, files []models.Upload) ([]models.UploadedFile, error) {
	if len(files) == 0 {
		return nil, nil
	}
	body, err := multipartBody(fieldImages, files...)
	if err != nil {
		return nil, err
	}
	var resp models.Envelope[models.UploadedFilesData]
	if err := c.do(ctx, http.MethodPost, "/upload/post-images", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Files, nil
}

func (c *HTTPClient) DeleteFile(ctx context.Context, kind, filename string) error {
	path := "/upload/" + url.PathEscape(kind) + "/" + url.PathEscape(filename)
	return c.do(ctx, http.MethodDelete, path, nil, nil, &models.Envelope[models.Empty]{})
}

// ListFiles lists the stored files of one kind. Zero page or limit leaves
// the server default.
func (c *HTTPClient) ListFiles(ctx context.Context, kind string, page, limit int) ([]models.UploadedFile, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var resp models.Envelope[models.UploadedFilesData]
	if err := c.do(ctx, http.MethodGet, "/upload/files/"+url.PathEscape(kind), q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Files, nil
}
