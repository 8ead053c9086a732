package config

import (
	"flag"
	"os"
	"time"

	"github.com/antonvlasov/voicenotes/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the local database file
//	-m string   media directory
//	-e string   export directory (empty disables sharing)
//	-t int      capture counter tick interval in seconds
//
// os.Args is filtered to only the flags handled here, via
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-m", "-e", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	fs.StringVar(&cfg.MediaDir, "m", cfg.MediaDir, "directory for captured media files")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "directory shared recordings are exported into")
	tick := fs.Int("t", int(cfg.TickInterval.Seconds()), "capture counter tick interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.TickInterval = time.Duration(*tick) * time.Second
}
