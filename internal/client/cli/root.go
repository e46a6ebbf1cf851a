package cli

import (
	"context"
	"fmt"
)

// Run restores the stored session, prints where the user stands and runs
// the REPL until exit. Resources are released on return.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to the Tech Blog CLI (type 'help' for commands)")
	if err := a.api.Health(ctx); err != nil {
		a.log.Warn(ctx, "health check failed", "error", err)
		fmt.Fprintf(a.out, "Warning: %s is not reachable; commands may fail.\n", a.config.APIBaseURL)
	}

	a.sessions.Restore(ctx)
	if s := a.sessions.State(); s.IsAuthenticated {
		fmt.Fprintf(a.out, "Signed in as %s\n", s.User.DisplayName())
	} else {
		fmt.Fprintln(a.out, "Not signed in. Use 'login' to sign in.")
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
