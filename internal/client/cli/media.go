package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/techblog/internal/client/models"
)

// Avatar uploads a local image and makes it the profile picture.
func (a *App) Avatar(ctx context.Context, path string) error {
	if !a.requireLogin() {
		return nil
	}
	f, err := a.media.Avatar(ctx, path)
	if err != nil {
		return describe(err, "could not upload avatar")
	}
	res := a.profile.Update(ctx, models.ProfileUpdate{Avatar: &f.URL})
	if !res.Success {
		fmt.Fprintf(a.out, "Profile update failed: %s\n", res.Error)
		return nil
	}
	fmt.Fprintf(a.out, "Avatar set to %s\n", f.URL)
	return nil
}

// Upload sends local images for use in posts and prints their URLs.
func (a *App) Upload(ctx context.Context, paths []string) error {
	if !a.requireLogin() {
		return nil
	}
	files, err := a.media.PostImages(ctx, paths)
	if err != nil {
		return describe(err, "could not upload images")
	}
	for _, f := range files {
		fmt.Fprintln(a.out, f.URL)
	}
	return nil
}

func (a *App) Uploads(ctx context.Context, kind string) error {
	if !a.requireLogin() {
		return nil
	}
	files, err := a.media.Files(ctx, kind, 1)
	if err != nil {
		return describe(err, "could not list uploads")
	}
	if len(files) == 0 {
		fmt.Fprintln(a.out, "No uploads.")
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tBYTES\tURL")
	for _, f := range files {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", f.Filename, f.Size, f.URL)
	}
	return tw.Flush()
}

func (a *App) UploadRemove(ctx context.Context, kind, filename string) error {
	if !a.requireLogin() {
		return nil
	}
	if err := a.media.Remove(ctx, kind, filename); err != nil {
		return describe(err, "could not delete upload")
	}
	fmt.Fprintf(a.out, "Deleted %s/%s\n", kind, filename)
	return nil
}
