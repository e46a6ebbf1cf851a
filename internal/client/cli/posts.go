package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/techblog/internal/client/client"
	"github.com/dmitrijs2005/techblog/internal/client/search"
)

// Search switches to the search view and looks up term.
func (a *App) Search(ctx context.Context, term string) error {
	a.active = a.search
	a.search.SetTerm(term)
	return a.settle(a.search)
}

// Latest switches to the latest-posts view.
func (a *App) Latest(ctx context.Context) error {
	a.active = a.latest
	a.latest.Refresh()
	return a.settle(a.latest)
}

// Posts switches to the admin table, which includes unpublished posts.
func (a *App) Posts(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	a.active = a.admin
	a.admin.Refresh()
	return a.settle(a.admin)
}

func (a *App) Category(ctx context.Context, slug string) error {
	a.active.SetCategory(slug)
	return a.settle(a.active)
}

func (a *App) Sort(ctx context.Context, order string) error {
	a.active.SetSort(order)
	return a.settle(a.active)
}

func (a *App) Page(ctx context.Context, n int) error {
	a.active.SetPage(n)
	return a.settle(a.active)
}

func (a *App) Next(ctx context.Context) error {
	st := a.active.State()
	if !st.Results.Pagination.HasNextPage {
		fmt.Fprintln(a.out, "Already on the last page.")
		return nil
	}
	return a.Page(ctx, st.Query.Page+1)
}

func (a *App) Prev(ctx context.Context) error {
	st := a.active.State()
	if st.Query.Page <= 1 {
		fmt.Fprintln(a.out, "Already on the first page.")
		return nil
	}
	return a.Page(ctx, st.Query.Page-1)
}

// settle waits for c's pending request and prints what it produced.
func (a *App) settle(c *search.Controller) error {
	c.Wait()
	st := c.State()

	switch st.Phase {
	case search.PhaseFailed:
		fmt.Fprintf(a.out, "Could not load posts: %s\n", client.Message(st.Err, "server unavailable"))
		return nil
	case search.PhaseIdle:
		fmt.Fprintln(a.out, "Type 'search <term>' to search posts.")
		return nil
	}

	if len(st.Results.Posts) == 0 {
		if t := strings.TrimSpace(st.Query.Term); t != "" {
			fmt.Fprintf(a.out, "No posts found for %q.\n", t)
		} else {
			fmt.Fprintln(a.out, "No posts found.")
		}
		return nil
	}

	printPosts(a.out, st.Results.Posts, c == a.admin)
	fmt.Fprintln(a.out, st.Summary())
	return nil
}

func (a *App) Show(ctx context.Context, slug string) error {
	p, err := a.posts.Get(ctx, slug)
	if err != nil {
		return describe(err, "could not load post")
	}
	printPost(a.out, p)
	return nil
}

func (a *App) Like(ctx context.Context, id string) error {
	like, err := a.posts.Like(ctx, id)
	if err != nil {
		return describe(err, "could not like post")
	}
	verb := "Unliked"
	if like.IsLiked {
		verb = "Liked"
	}
	fmt.Fprintf(a.out, "%s. The post now has %d likes.\n", verb, like.Likes)
	return nil
}

// Status changes a post's status and refreshes the admin table.
func (a *App) Status(ctx context.Context, id, status string) error {
	if !a.requireLogin() {
		return nil
	}
	if _, err := a.posts.SetStatus(ctx, id, status); err != nil {
		return describe(err, "could not change status")
	}
	fmt.Fprintf(a.out, "Post %s is now %s.\n", id, strings.ToLower(status))
	a.refreshAdmin()
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	if !a.requireLogin() {
		return nil
	}
	if !Confirm(a.reader, fmt.Sprintf("Delete post %s? This cannot be undone.", id), a.out) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}
	if err := a.posts.Delete(ctx, id); err != nil {
		return describe(err, "could not delete post")
	}
	fmt.Fprintf(a.out, "Post %s deleted.\n", id)
	a.refreshAdmin()
	return nil
}

func (a *App) refreshAdmin() {
	if a.active == a.admin {
		a.admin.Refresh()
		_ = a.settle(a.admin)
	}
}

// PrintSearch runs one search and prints a single page. It backs the
// non-interactive "search" command.
func (a *App) PrintSearch(ctx context.Context, term string, page int) error {
	a.active = a.search
	a.search.Hydrate(search.Query{Term: term, Page: max(page, 1)}.Values())
	return a.settle(a.search)
}

// PrintLatest prints one page of the latest posts.
func (a *App) PrintLatest(ctx context.Context, category, sort string, page int) error {
	a.active = a.latest
	v := search.Query{Category: blankOr(category, client.CategoryAll), Sort: search.ParseSort(sort), Page: max(page, 1)}.Values()
	a.latest.Hydrate(v)
	return a.settle(a.latest)
}

// describe prefers the server's own message; otherwise err is wrapped
// with what.
func describe(err error, what string) error {
	if msg := client.Message(err, ""); msg != "" {
		return errors.New(msg)
	}
	return fmt.Errorf("%s: %w", what, err)
}
