package models

import "time"

// Post statuses accepted by the admin endpoints.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// ValidStatus reports whether s is a known post status.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

type Image struct {
	URL     string `json:"url,omitempty"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

type ExternalLink struct {
	Title string `json:"title,omitempty"`
	URL   string `json:"url"`
}

type SEO struct {
	MetaTitle       string   `json:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	MetaKeywords    []string `json:"metaKeywords,omitempty"`
}

// Post is an article as listed and rendered by the API.
type Post struct {
	ID            string         `json:"_id"`
	Title         string         `json:"title"`
	Slug          string         `json:"slug"`
	Excerpt       string         `json:"excerpt,omitempty"`
	Content       string         `json:"content,omitempty"`
	Status        string         `json:"status,omitempty"`
	Category      *Category      `json:"category,omitempty"`
	Tags          []string       `json:"tags,omitempty"`
	FeaturedImage *Image         `json:"featuredImage,omitempty"`
	ExternalLinks []ExternalLink `json:"externalLinks,omitempty"`
	SEO           *SEO           `json:"seo,omitempty"`
	Author        *User          `json:"author,omitempty"`
	Views         int            `json:"views,omitempty"`
	Likes         int            `json:"likes,omitempty"`
	ReadingTime   float64        `json:"readingTime,omitempty"`
	PublishedAt   *time.Time     `json:"publishedAt,omitempty"`
	CreatedAt     *time.Time     `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time     `json:"updatedAt,omitempty"`
}

// PostDraft is the body of POST /posts and PUT /posts/{id}. Category holds
// the category id.
type PostDraft struct {
	Title         string         `json:"title,omitempty"`
	Slug          string         `json:"slug,omitempty"`
	Excerpt       string         `json:"excerpt,omitempty"`
	Content       string         `json:"content,omitempty"`
	Category      string         `json:"category,omitempty"`
	Tags          []string       `json:"tags,omitempty"`
	Status        string         `json:"status,omitempty"`
	FeaturedImage *Image         `json:"featuredImage,omitempty"`
	ExternalLinks []ExternalLink `json:"externalLinks,omitempty"`
	SEO           *SEO           `json:"seo,omitempty"`
}

// Pagination describes where a page sits in the full result set.
type Pagination struct {
	CurrentPage int  `json:"currentPage,omitempty"`
	TotalPages  int  `json:"totalPages"`
	TotalPosts  int  `json:"totalPosts"`
	HasPrevPage bool `json:"hasPrevPage"`
	HasNextPage bool `json:"hasNextPage"`
}

// PostList is one page of posts.
type PostList struct {
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

// Empty reports whether the list holds no posts and no pagination.
func (l PostList) Empty() bool {
	return len(l.Posts) == 0 && l.Pagination == (Pagination{})
}

// PostData wraps a single post.
type PostData struct {
	Post *Post `json:"post"`
}

// PostsData wraps a plain list of posts (trending).
type PostsData struct {
	Posts []Post `json:"posts"`
}

// TagCount is one entry of GET /posts/tags.
type TagCount struct {
	Tag   string `json:"_id"`
	Count int    `json:"count"`
}

// TagsData wraps the tag cloud.
type TagsData struct {
	Tags []TagCount `json:"tags"`
}

// LikeData is the payload of POST /posts/{id}/like.
type LikeData struct {
	Likes   int  `json:"likes"`
	IsLiked bool `json:"isLiked"`
}

// ListParams are the query parameters of the post list endpoints.
type ListParams struct {
	Search             string
	Category           string
	Sort               string
	Page               int
	Limit              int
	IncludeUnpublished bool
}
