package models

// DefaultCategoryColor is used when a category is created without a colour.
const DefaultCategoryColor = "#3b82f6"

// Category groups posts. PostCount is filled by the with-counts endpoint.
type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	PostCount   int    `json:"postCount,omitempty"`
}

// CategoryDraft is the body of POST /categories and PUT /categories/{id}.
type CategoryDraft struct {
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

type CategoryData struct {
	Category *Category `json:"category"`
}

type CategoriesData struct {
	Categories []Category `json:"categories"`
}

// CategoryPostsData is the payload of GET /categories/{slug}/posts.
type CategoryPostsData struct {
	Category   *Category  `json:"category,omitempty"`
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
}
