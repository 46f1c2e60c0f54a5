package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/foliate-press/foliate"
	"github.com/foliate-press/foliate/internal/adapters/cli"
	"github.com/foliate-press/foliate/internal/adapters/env"
)

func main() {
	output := cli.NewOutput()

	cfg, err := env.Load()
	if err != nil {
		output.PrintHeader("Foliate Build")
		output.PrintError("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	site, err := defaultSite(cfg)
	if err != nil {
		output.PrintHeader("Foliate Build")
		output.PrintError("%v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := site.Build(ctx); err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}
}

// defaultSite registers the two canonical pages: the plain home list
// and the roadmap with its calendar styling and sidebar placement.
func defaultSite(cfg *env.Config) (*foliate.Site, error) {
	site := foliate.New(cfg.SiteTitle)
	site.PostsDir = cfg.PostsDir
	site.OutputDir = cfg.OutputDir
	site.PostsBase = cfg.PostsBase
	site.CSSHref = cfg.CSSHref
	site.LogLevel = cfg.LogLevel

	if err := site.AddPage(foliate.Page(cfg.SiteTitle, "/", foliate.WithLayout("home"))); err != nil {
		return nil, err
	}
	if err := site.AddPage(foliate.Page("Roadmap", "/roadmap/",
		foliate.WithIcon("calendar"),
		foliate.WithOrder(3),
		foliate.WithListStyle("roadmap"),
		foliate.WithCalendarIcon())); err != nil {
		return nil, err
	}

	return site, nil
}
