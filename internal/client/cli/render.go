package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/techblog/internal/client/models"
	"github.com/dmitrijs2005/techblog/internal/textx"
)

const titleWidth = 48

func printPosts(w io.Writer, posts []models.Post, withStatus bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if withStatus {
		fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tSTATUS\tVIEWS\tLIKES")
	} else {
		fmt.Fprintln(tw, "SLUG\tTITLE\tCATEGORY\tREAD\tVIEWS\tLIKES")
	}
	for _, p := range posts {
		title := textx.Truncate(p.Title, titleWidth)
		if withStatus {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, title, categoryName(p.Category), p.Status,
				textx.FormatNumber(p.Views), textx.FormatNumber(p.Likes))
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Slug, title, categoryName(p.Category), readingTime(p),
			textx.FormatNumber(p.Views), textx.FormatNumber(p.Likes))
	}
	_ = tw.Flush()
}

func printPost(w io.Writer, p *models.Post) {
	fmt.Fprintln(w, p.Title)
	fmt.Fprintln(w, strings.Repeat("=", len([]rune(p.Title))))

	var meta []string
	if name := p.Author.DisplayName(); name != "" {
		meta = append(meta, "by "+name)
	}
	if p.PublishedAt != nil {
		meta = append(meta, p.PublishedAt.Local().Format("Jan 2, 2006"))
	}
	if c := categoryName(p.Category); c != "" {
		meta = append(meta, c)
	}
	meta = append(meta, readingTime(*p))
	fmt.Fprintln(w, strings.Join(meta, " · "))
	if len(p.Tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(p.Tags, ", "))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.TrimSpace(textx.StripHTML(p.Content)))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s views, %s likes (id %s)\n", textx.FormatNumber(p.Views), textx.FormatNumber(p.Likes), p.ID)
	for _, l := range p.ExternalLinks {
		fmt.Fprintf(w, "  -> %s %s\n", blankOr(l.Title, "link"), l.URL)
	}
}

func printCategories(w io.Writer, cats []models.Category) {
	if len(cats) == 0 {
		fmt.Fprintln(w, "No categories.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tNAME\tPOSTS")
	for _, c := range cats {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", c.Slug, c.Name, c.PostCount)
	}
	_ = tw.Flush()
}

func printTags(w io.Writer, tags []models.TagCount) {
	if len(tags) == 0 {
		fmt.Fprintln(w, "No tags.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TAG\tPOSTS")
	for _, t := range tags {
		fmt.Fprintf(tw, "%s\t%d\n", t.Tag, t.Count)
	}
	_ = tw.Flush()
}

func categoryName(c *models.Category) string {
	if c == nil {
		return ""
	}
	return c.Name
}

func readingTime(p models.Post) string {
	minutes := p.ReadingTime
	if minutes == 0 {
		minutes = float64(textx.ReadingTime(p.Content))
	}
	return textx.FormatReadingTime(minutes)
}
