package models

import "io"

// Upload kinds, as used in /upload/{type}/{filename} and
// /upload/files/{type}.
const (
	UploadPosts   = "posts"
	UploadAvatars = "avatars"
)

// Upload is a local file to send to an upload endpoint. Name supplies the
// filename and, through its extension, the content type.
type Upload struct {
	Name    string
	Content io.Reader
}

// UploadedFile describes a file the server stored. URL is what posts and
// profiles reference.
type UploadedFile struct {
	URL          string `json:"url"`
	Filename     string `json:"filename,omitempty"`
	OriginalName string `json:"originalName,omitempty"`
	MimeType     string `json:"mimetype,omitempty"`
	Size         int64  `json:"size,omitempty"`
}

// UploadedFilesData is the payload of multi-file uploads and file listings.
type UploadedFilesData struct {
	Files []UploadedFile `json:"files"`
}
