package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/lvpath/server"
)

// Environment variables read by lvpathd. A .env file in the working
// directory is loaded first; variables already set in the process win.
const (
	envAddr         = "LVPATH_ADDR"
	envGraph        = "LVPATH_GRAPH"
	envSolveTimeout = "LVPATH_SOLVE_TIMEOUT"
)

var errNoGraph = errors.New(envGraph + " is required")

type config struct {
	GraphPath string
	Server    server.Config
}

// loadDotEnv loads the given files (".env" when none), ignoring missing ones.
func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !isNotExist(err) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}

	return nil
}

// loadConfig builds the daemon configuration from getenv.
func loadConfig(getenv func(string) string) (config, error) {
	cfg := config{
		GraphPath: getenv(envGraph),
		Server:    server.DefaultConfig(),
	}
	if cfg.GraphPath == "" {
		return config{}, errNoGraph
	}
	if addr := getenv(envAddr); addr != "" {
		cfg.Server.Addr = addr
	}
	if raw := getenv(envSolveTimeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			return config{}, fmt.Errorf("%s: invalid duration %q", envSolveTimeout, raw)
		}
		cfg.Server.SolveTimeout = d
	}

	return cfg, nil
}

func isNotExist(err error) bool { return errors.Is(err, fs.ErrNotExist) }
