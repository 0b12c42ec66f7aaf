package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rryowa/medcard/internal/cli"
	"github.com/rryowa/medcard/internal/client"
	"github.com/rryowa/medcard/internal/util"
)

func main() {
	cfg, err := util.LoadClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := util.NewZapLogger(cfg.LogLevel)
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := client.New(cfg.APIURL,
		client.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		client.WithStore(client.NewFileStore(cfg.CredentialsFile)),
		client.WithLogger(logger),
	)

	app, err := cli.NewApp(c, cfg.PublicURL, os.Stdin, os.Stdout, logger)
	if err != nil {
		logger.Fatal(err)
	}

	err = app.Run(ctx, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", cli.Describe(err))
	}
	stop()
	os.Exit(cli.ExitCode(err))
}
