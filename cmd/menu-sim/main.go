//go:build cgo
// +build cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/appengine-ltd/menu-sim/internal/config"
	"github.com/appengine-ltd/menu-sim/internal/gui"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		noUpdate    bool
		configPath  string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&noUpdate, "no-update", false, "disable update checks")
	flag.StringVar(&configPath, "config", "menu-sim.yaml", "path to the config file")
	flag.Parse()

	if showVersion {
		fmt.Printf("Menu Sim %s (%s) %s\n", version, commit, date)
		return
	}

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	conf := config.Load(log, configPath)

	app := gui.NewApp(gui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		NoUpdate:  noUpdate,
	}, conf, log)

	if err := app.Run(); err != nil {
		log.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}
