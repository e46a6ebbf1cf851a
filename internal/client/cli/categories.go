package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/techblog/internal/client/models"
)

// Categories lists categories with their post counts; all also shows
// inactive ones and needs a session.
func (a *App) Categories(ctx context.Context, all bool) error {
	var (
		cats []models.Category
		err  error
	)
	if all {
		if !a.requireLogin() {
			return nil
		}
		cats, err = a.categories.Admin(ctx)
	} else {
		cats, err = a.categories.WithCounts(ctx)
	}
	if err != nil {
		return describe(err, "could not load categories")
	}
	printCategories(a.out, cats)
	return nil
}

func (a *App) CategoryAdd(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	var draft models.CategoryDraft
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Name", &draft.Name},
		{"Slug (optional)", &draft.Slug},
		{"Description (optional)", &draft.Description},
		{"Color (optional)", &draft.Color},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	c, err := a.categories.Create(ctx, draft)
	if err != nil {
		return describe(err, "could not create category")
	}
	fmt.Fprintf(a.out, "Category %s created (id %s, slug %s).\n", c.Name, c.ID, c.Slug)
	return nil
}

// CategoryEdit starts from the category's current values; empty answers
// keep them.
func (a *App) CategoryEdit(ctx context.Context, id string) error {
	if !a.requireLogin() {
		return nil
	}
	cur, err := a.categories.Find(ctx, id)
	if err != nil {
		return describe(err, "could not load category")
	}
	draft := models.CategoryDraft{Name: cur.Name, Slug: cur.Slug, Description: cur.Description, Color: cur.Color}
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Name", &draft.Name},
		{"Slug", &draft.Slug},
		{"Description", &draft.Description},
		{"Color", &draft.Color},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.prompt, *f.dst), a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = v
		}
	}
	c, err := a.categories.Update(ctx, cur.ID, draft)
	if err != nil {
		return describe(err, "could not update category")
	}
	fmt.Fprintf(a.out, "Category %s updated.\n", blankOr(c.Name, draft.Name))
	return nil
}

func (a *App) CategoryRemove(ctx context.Context, id string) error {
	if !a.requireLogin() {
		return nil
	}
	if !Confirm(a.reader, fmt.Sprintf("Delete category %s?", id), a.out) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}
	if err := a.categories.Delete(ctx, id); err != nil {
		return describe(err, "could not delete category")
	}
	fmt.Fprintf(a.out, "Category %s deleted.\n", id)
	return nil
}

// CategoryRecount asks the server to recompute a category's post count.
func (a *App) CategoryRecount(ctx context.Context, id string) error {
	if !a.requireLogin() {
		return nil
	}
	c, err := a.categories.RecountPosts(ctx, id)
	if err != nil {
		return describe(err, "could not recount posts")
	}
	fmt.Fprintf(a.out, "Category %s has %d posts.\n", blankOr(c.Name, id), c.PostCount)
	return nil
}
