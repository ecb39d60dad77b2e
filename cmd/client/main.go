package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/beautyease/beautyease/internal/client/cli"
	"github.com/beautyease/beautyease/internal/client/config"
	"github.com/beautyease/beautyease/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	app.Run(ctx)
}
