package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/dmitrijs2005/techblog/internal/client/client"
	"github.com/dmitrijs2005/techblog/internal/client/config"
	"github.com/dmitrijs2005/techblog/internal/client/credentials"
	"github.com/dmitrijs2005/techblog/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/techblog/internal/client/search"
	"github.com/dmitrijs2005/techblog/internal/client/services"
	"github.com/dmitrijs2005/techblog/internal/client/session"
	"github.com/dmitrijs2005/techblog/internal/filex"
	"github.com/dmitrijs2005/techblog/internal/logging"
)

// App is the terminal front end: one session manager and one list
// controller per view (search, latest, admin posts).
type App struct {
	config *config.Config
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	api        *client.HTTPClient
	sessions   *session.Manager
	posts      services.PostService
	categories services.CategoryService
	profile    services.ProfileService
	media      services.MediaService

	search *search.Controller
	latest *search.Controller
	admin  *search.Controller
	// browse lists one category; it is rebuilt by each browse command.
	browse    *search.Controller
	newBrowse func(slug string) *search.Controller
	// active receives page/sort/category commands.
	active *search.Controller

	closers []io.Closer
}

// NewApp wires every component from c. in and out default to the process's
// stdin and stdout.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer) (*App, error) {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	log, err := logging.New(os.Stderr, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	a := &App{config: c, log: log, reader: bufio.NewReader(in), out: out}

	repo, err := a.openStorage(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	if c.StorageSecret != "" {
		repo = metadata.NewEncryptedRepository(repo, c.StorageSecret)
	}

	api, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.api = api
	a.closers = append(a.closers, api)

	a.sessions = session.NewManager(api, credentials.NewStore(repo), log)
	api.SetAuthenticator(a.sessions)
	a.sessions.OnForcedLogout(func() {
		fmt.Fprintln(a.out, "Your session has expired. Please log in again.")
	})
	a.sessions.Subscribe(func(s session.State) {
		if s.Error != "" {
			log.Debug(ctx, "session error", "message", s.Error)
		}
	})

	a.posts = services.NewPostService(api)
	a.categories = services.NewCategoryService(api)
	a.profile = services.NewProfileService(a.sessions)
	a.media = services.NewMediaService(api)

	onURL := func(path string) func(url.Values) {
		return func(v url.Values) {
			log.Debug(ctx, "query changed", "url", shareURL(path, v))
		}
	}
	onChange := func(path string) func(search.State) {
		return search.LatestOnly(func(st search.State) {
			log.Debug(ctx, "list state", "view", path, "phase", st.Phase.String(), "version", st.Version)
		})
	}
	a.search = search.NewController(search.PostLister(api), search.Options{
		Debounce:    c.SearchDebounce,
		Limit:       c.PageSize,
		RequireTerm: true,
		Logger:      log,
		Context:     ctx,
		OnURLChange: onURL("/search"),
		OnChange:    onChange("/search"),
	})
	a.latest = search.NewController(search.PostLister(api), search.Options{
		Debounce:    c.SearchDebounce,
		Limit:       c.PageSize,
		Logger:      log,
		Context:     ctx,
		OnURLChange: onURL("/latest"),
		OnChange:    onChange("/latest"),
	})
	a.admin = search.NewController(search.AdminPostLister(api), search.Options{
		Debounce:           c.SearchDebounce,
		Limit:              c.AdminPageSize,
		IncludeUnpublished: true,
		Logger:             log,
		Context:            ctx,
		OnURLChange:        onURL("/admin/posts"),
		OnChange:           onChange("/admin/posts"),
	})
	a.newBrowse = func(slug string) *search.Controller {
		return search.NewController(search.CategoryPostLister(api, slug), search.Options{
			Debounce:    c.SearchDebounce,
			Limit:       c.PageSize,
			Logger:      log,
			Context:     ctx,
			OnURLChange: onURL("/category/" + slug),
			OnChange:    onChange("/category/" + slug),
		})
	}
	a.active = a.latest

	return a, nil
}

func (a *App) openStorage(ctx context.Context) (metadata.Repository, error) {
	switch a.config.StorageBackend {
	case config.StorageRedis:
		rc, err := metadata.DialRedis(ctx, a.config.RedisAddr)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, rc)
		return metadata.NewRedisRepository(rc, a.config.RedisKey), nil
	case config.StorageSQLite:
		path, err := filex.EnsureParentDir(a.config.StoragePath)
		if err != nil {
			return nil, err
		}
		db, err := client.InitDatabase(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("error initializing database: %w", err)
		}
		a.closers = append(a.closers, db)
		return metadata.NewSQLiteRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", a.config.StorageBackend)
	}
}

// Close stops the list controllers and releases storage and connections.
func (a *App) Close() error {
	for _, c := range []*search.Controller{a.search, a.latest, a.admin, a.browse} {
		if c != nil {
			c.Close()
		}
	}
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.State().IsAuthenticated
}

func (a *App) getStatus() string {
	s := a.sessions.State()
	switch {
	case s.IsLoading:
		return "(...)"
	case s.IsAuthenticated:
		return fmt.Sprintf("(%s)", s.User.DisplayName())
	default:
		return ""
	}
}

func shareURL(path string, v url.Values) string {
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}
