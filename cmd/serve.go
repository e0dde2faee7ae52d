package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/etnz/pricetracker/renderer"
	"github.com/etnz/pricetracker/server"
	"github.com/google/subcommands"
)

type serveCmd struct {
	addr   string
	prices bool
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the dashboard over HTTP" }
func (*serveCmd) Usage() string {
	return `cpt serve [-addr <host:port>] [-prices]

  Serves the dashboard as HTML pages (/, /yearly, /monthly, /volatility) and
  as JSON (/api/dashboard, /api/yearly, /api/monthly, /api/volatility).
  The data file is read again on every request.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", listenAddr, "Address to listen on")
	f.BoolVar(&c.prices, "prices", false, "Display the prices used in the computation")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := server.New(LoadTable, *dataFile, renderer.Options{Currency: *currency, Prices: c.prices})
	srv := &http.Server{
		Addr:              c.addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			log.Printf("Warning: shutdown: %v", err)
		}
	}()

	log.Printf("serving %s on http://%s", *dataFile, c.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
