package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/techblog/internal/buildinfo"
	"github.com/dmitrijs2005/techblog/internal/client/cli"
	"github.com/dmitrijs2005/techblog/internal/client/config"
)

// globalFlags mirror the flags config.Load understands so they show up in
// help; values given in long form are applied on top of the loaded config.
type globalFlags struct {
	api        string
	timeoutSec int
	db         string
	configFile string
}

func newRootCmd() *cobra.Command {
	var gf globalFlags

	rootCmd := &cobra.Command{
		Use:   "techblog",
		Short: "Terminal client for the Tech Blog API",
		Long: `techblog searches, lists and reads Tech Blog posts from a terminal.

Without a subcommand it starts an interactive shell that keeps you signed
in between runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
			return withApp(cmd, &gf, func(ctx context.Context, app *cli.App) error {
				app.Run(ctx)
				return nil
			})
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&gf.api, "api", "a", "", "base URL of the REST API")
	pf.IntVarP(&gf.timeoutSec, "timeout", "t", 0, "request timeout (in seconds)")
	pf.StringVarP(&gf.db, "db", "d", "", "path to the local session database")
	pf.StringVarP(&gf.configFile, "config", "c", "", "JSON configuration file")

	rootCmd.AddCommand(
		searchCmd(&gf),
		latestCmd(&gf),
		versionCmd(),
	)
	return rootCmd
}

func searchCmd(gf *globalFlags) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search published posts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")
			return withApp(cmd, gf, func(ctx context.Context, app *cli.App) error {
				defer app.Close()
				return app.PrintSearch(ctx, term, page)
			})
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to show")
	return cmd
}

func latestCmd(gf *globalFlags) *cobra.Command {
	var (
		category string
		sort     string
		page     int
	)

	cmd := &cobra.Command{
		Use:   "latest",
		Short: "List the latest posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, gf, func(ctx context.Context, app *cli.App) error {
				defer app.Close()
				return app.PrintLatest(ctx, category, sort, page)
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "category slug (default all)")
	cmd.Flags().StringVarP(&sort, "sort", "s", "", "latest, oldest, popular or title")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to show")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}

// withApp loads the configuration, builds the App and runs fn with a
// context that is cancelled on SIGINT/SIGTERM.
func withApp(cmd *cobra.Command, gf *globalFlags, fn func(context.Context, *cli.App) error) error {
	args := os.Args[1:]
	if cmd.Flags().Changed("config") {
		args = append(args, "-c", gf.configFile)
	}
	cfg := config.Load(args)
	gf.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return fn(ctx, app)
}

func (gf *globalFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("api") {
		cfg.APIBaseURL = gf.api
	}
	if flags.Changed("timeout") {
		cfg.RequestTimeout = time.Duration(gf.timeoutSec) * time.Second
	}
	if flags.Changed("db") {
		cfg.StoragePath = gf.db
	}
}
