//go:build !cgo
// +build !cgo

package main

import (
	"flag"
	"fmt"
	"os"
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

	_ = noUpdate
	_ = configPath
	fmt.Fprintln(os.Stderr, "Menu Sim requires the desktop build (cgo/raylib enabled).")
	os.Exit(1)
}
