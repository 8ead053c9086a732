package main

import (
	"context"
	"log"
	"os"

	"github.com/antonvlasov/voicenotes/internal/buildinfo"
	"github.com/antonvlasov/voicenotes/internal/cli"
	"github.com/antonvlasov/voicenotes/internal/config"
	"github.com/antonvlasov/voicenotes/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
