package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/techblog/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   base URL of the REST API
//	-t int      request timeout in seconds
//	-d string   SQLite session database path
//
// Only these flags are looked at (via flagx.FilterArgs) so cobra
// subcommands and their arguments pass through untouched. Panics on a
// malformed value.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-d"})

	fs := flag.NewFlagSet("techblog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the REST API")
	fs.StringVar(&cfg.StoragePath, "d", cfg.StoragePath, "path to the local session database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
