package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/techblog/internal/client/client"
	"github.com/dmitrijs2005/techblog/internal/client/models"
)

// NewPost prompts for a post and creates it. The featured image may be an
// http(s) URL or a local file, which is uploaded first.
func (a *App) NewPost(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	draft, err := a.promptPost(ctx, false)
	if err != nil {
		return err
	}
	p, err := a.posts.Create(ctx, draft)
	if err != nil {
		return describe(err, "could not create post")
	}
	fmt.Fprintf(a.out, "Created %s post %q (id %s, slug %s).\n", blankOr(p.Status, draft.Status), p.Title, p.ID, p.Slug)
	a.refreshAdmin()
	return nil
}

// EditPost sends only the fields the user fills in.
func (a *App) EditPost(ctx context.Context, id string) error {
	if !a.requireLogin() {
		return nil
	}
	draft, err := a.promptPost(ctx, true)
	if err != nil {
		return err
	}
	if isEmptyDraft(draft) {
		fmt.Fprintln(a.out, "Nothing to update.")
		return nil
	}
	if _, err := a.posts.Update(ctx, id, draft); err != nil {
		return describe(err, "could not update post")
	}
	fmt.Fprintf(a.out, "Post %s updated.\n", id)
	a.refreshAdmin()
	return nil
}

func (a *App) promptPost(ctx context.Context, editing bool) (models.PostDraft, error) {
	var draft models.PostDraft
	suffix := ""
	if editing {
		suffix = " (empty to keep)"
	}
	ask := func(prompt string) (string, error) {
		return getSimpleText(a.reader, prompt+suffix, a.out)
	}

	var err error
	if draft.Title, err = ask("Title"); err != nil {
		return draft, err
	}
	category, err := ask("Category slug (optional)")
	if err != nil {
		return draft, err
	}
	if category != "" {
		c, err := a.categories.Find(ctx, category)
		if err != nil {
			if errors.Is(err, client.ErrNotFound) {
				a.printCategoryHint(ctx)
			}
			return draft, describe(err, "unknown category")
		}
		draft.Category = c.ID
	}
	tags, err := ask("Tags, comma separated (optional)")
	if err != nil {
		return draft, err
	}
	if tags != "" {
		draft.Tags = strings.Split(tags, ",")
	}
	image, err := ask("Featured image, URL or file path (optional)")
	if err != nil {
		return draft, err
	}
	if draft.FeaturedImage, err = a.featuredImage(ctx, image, draft.Title); err != nil {
		return draft, err
	}
	if draft.Status, err = ask("Status: draft or published"); err != nil {
		return draft, err
	}
	draft.Status = strings.ToLower(draft.Status)
	if draft.Content, err = getMultiline(a.reader, "Content"+suffix, a.out); err != nil {
		return draft, err
	}
	return draft, nil
}

// featuredImage turns the user's answer into an image, uploading local
// files. alt defaults to the post title.
func (a *App) featuredImage(ctx context.Context, input, alt string) (*models.Image, error) {
	input = strings.TrimSpace(input)
	switch {
	case input == "":
		return nil, nil
	case strings.HasPrefix(input, "http://"), strings.HasPrefix(input, "https://"):
		return &models.Image{URL: input, Alt: alt}, nil
	}
	f, err := a.media.PostImage(ctx, input)
	if err != nil {
		return nil, describe(err, "could not upload image")
	}
	fmt.Fprintf(a.out, "Uploaded %s\n", f.URL)
	return &models.Image{URL: f.URL, Alt: alt}, nil
}

func (a *App) printCategoryHint(ctx context.Context) {
	cats, err := a.categories.List(ctx)
	if err != nil || len(cats) == 0 {
		return
	}
	slugs := make([]string, len(cats))
	for i, c := range cats {
		slugs[i] = c.Slug
	}
	fmt.Fprintf(a.out, "Available categories: %s\n", strings.Join(slugs, ", "))
}

func isEmptyDraft(d models.PostDraft) bool {
	return d.Title == "" && d.Slug == "" && d.Excerpt == "" && d.Content == "" &&
		d.Category == "" && d.Status == "" && len(d.Tags) == 0 &&
		d.FeaturedImage == nil && len(d.ExternalLinks) == 0 && d.SEO == nil
}

// Trending prints the most viewed posts.
func (a *App) Trending(ctx context.Context) error {
	posts, err := a.posts.Trending(ctx, 0)
	if err != nil {
		return describe(err, "could not load trending posts")
	}
	if len(posts) == 0 {
		fmt.Fprintln(a.out, "No trending posts.")
		return nil
	}
	printPosts(a.out, posts, false)
	return nil
}

func (a *App) Tags(ctx context.Context) error {
	tags, err := a.posts.Tags(ctx)
	if err != nil {
		return describe(err, "could not load tags")
	}
	printTags(a.out, tags)
	return nil
}

// Browse switches to the post list of one category.
func (a *App) Browse(ctx context.Context, slug string) error {
	cat, err := a.categories.Get(ctx, slug)
	if err != nil {
		return describe(err, "could not load category")
	}
	if a.browse != nil {
		a.browse.Close()
	}
	a.browse = a.newBrowse(cat.Slug)
	a.active = a.browse

	fmt.Fprintln(a.out, cat.Name)
	if cat.Description != "" {
		fmt.Fprintln(a.out, cat.Description)
	}
	a.browse.Refresh()
	return a.settle(a.browse)
}
