package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	Avatar(ctx context.Context, path string) error
	Password(ctx context.Context) error

	Search(ctx context.Context, term string) error
	Latest(ctx context.Context) error
	Posts(ctx context.Context) error
	Category(ctx context.Context, slug string) error
	Sort(ctx context.Context, order string) error
	Page(ctx context.Context, n int) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error

	Trending(ctx context.Context) error
	Tags(ctx context.Context) error
	Browse(ctx context.Context, slug string) error

	Show(ctx context.Context, slug string) error
	Like(ctx context.Context, id string) error
	Categories(ctx context.Context, all bool) error
	Status(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	NewPost(ctx context.Context) error
	EditPost(ctx context.Context, id string) error

	CategoryAdd(ctx context.Context) error
	CategoryEdit(ctx context.Context, id string) error
	CategoryRemove(ctx context.Context, id string) error
	CategoryRecount(ctx context.Context, id string) error

	Upload(ctx context.Context, paths []string) error
	Uploads(ctx context.Context, kind string) error
	UploadRemove(ctx context.Context, kind, filename string) error
}

const (
	helpGuest = "Available commands: search <term>, latest, trending, tags, browse <slug>, category <slug|all>, " +
		"sort <latest|oldest|popular|title>, page <n>, next, prev, show <slug>, like <id>, categories, register, login, exit"
	helpAuthor = "Available commands: search <term>, latest, trending, tags, browse <slug>, posts, category <slug|all>, " +
		"sort <latest|oldest|popular|title>, page <n>, next, prev, show <slug>, like <id>, " +
		"new, edit <id>, status <id> <draft|published|archived>, delete <id>, " +
		"categories [all], category-add, category-edit <id|slug>, category-rm <id>, category-recount <id>, " +
		"upload <file>..., uploads <posts|avatars>, upload-rm <posts|avatars> <file>, " +
		"whoami, profile, profile avatar <file>, password, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the Tech Blog CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands and missing arguments are
// reported back to the user. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are printed and otherwise ignored,
// which keeps the loop resilient.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("techblog%s> ", prefixSpace(statusFn())))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if err := dispatch(ctx, a, cmd, args); err != nil {
			printlnFn("Error:", err)
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpAuthor)
		} else {
			printlnFn(helpGuest)
		}
		return nil

	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.WhoAmI(ctx)
	case "profile":
		if len(args) > 0 {
			if args[0] != "avatar" || len(args) < 2 {
				return usage("profile avatar <file>")
			}
			return a.Avatar(ctx, strings.Join(args[1:], " "))
		}
		return a.Profile(ctx)
	case "password":
		return a.Password(ctx)

	case "search", "s":
		return a.Search(ctx, strings.Join(args, " "))
	case "latest":
		return a.Latest(ctx)
	case "posts":
		return a.Posts(ctx)
	case "category":
		if len(args) == 0 {
			return usage("category <slug|all>")
		}
		return a.Category(ctx, args[0])
	case "sort":
		if len(args) == 0 {
			return usage("sort <latest|oldest|popular|title>")
		}
		return a.Sort(ctx, args[0])
	case "page":
		var n int
		if len(args) == 0 {
			return usage("page <n>")
		}
		if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil || n < 1 {
			return usage("page <n>, n >= 1")
		}
		return a.Page(ctx, n)
	case "trending":
		return a.Trending(ctx)
	case "tags":
		return a.Tags(ctx)
	case "browse":
		if len(args) == 0 {
			return usage("browse <slug>")
		}
		return a.Browse(ctx, args[0])
	case "next", "n":
		return a.Next(ctx)
	case "prev", "p":
		return a.Prev(ctx)

	case "show":
		if len(args) == 0 {
			return usage("show <slug>")
		}
		return a.Show(ctx, args[0])
	case "like":
		if len(args) == 0 {
			return usage("like <id>")
		}
		return a.Like(ctx, args[0])
	case "categories":
		return a.Categories(ctx, len(args) > 0 && args[0] == "all")
	case "status":
		if len(args) < 2 {
			return usage("status <id> <draft|published|archived>")
		}
		return a.Status(ctx, args[0], args[1])
	case "delete":
		if len(args) == 0 {
			return usage("delete <id>")
		}
		return a.Delete(ctx, args[0])
	case "new":
		return a.NewPost(ctx)
	case "edit":
		if len(args) == 0 {
			return usage("edit <id>")
		}
		return a.EditPost(ctx, args[0])

	case "category-add":
		return a.CategoryAdd(ctx)
	case "category-edit":
		if len(args) == 0 {
			return usage("category-edit <id|slug>")
		}
		return a.CategoryEdit(ctx, args[0])
	case "category-rm":
		if len(args) == 0 {
			return usage("category-rm <id>")
		}
		return a.CategoryRemove(ctx, args[0])
	case "category-recount":
		if len(args) == 0 {
			return usage("category-recount <id>")
		}
		return a.CategoryRecount(ctx, args[0])

	case "upload":
		if len(args) == 0 {
			return usage("upload <file>...")
		}
		return a.Upload(ctx, args)
	case "uploads":
		if len(args) == 0 {
			return usage("uploads <posts|avatars>")
		}
		return a.Uploads(ctx, args[0])
	case "upload-rm":
		if len(args) < 2 {
			return usage("upload-rm <posts|avatars> <file>")
		}
		return a.UploadRemove(ctx, args[0], args[1])

	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}

type usageError string

func (u usageError) Error() string { return "usage: " + string(u) }

func usage(s string) error { return usageError(s) }

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
