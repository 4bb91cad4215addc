// Command lvpathd loads a graph file and serves shortest-path queries over HTTP.
//
// Configuration comes from the environment (optionally via a .env file):
//
//	LVPATH_GRAPH          path to the edge-list graph file (required)
//	LVPATH_ADDR           listen address, default ":8080"
//	LVPATH_SOLVE_TIMEOUT  per-solve deadline such as "250ms", default none
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvpath/graphio"
	"github.com/katalvlaran/lvpath/server"
)

func main() {
	log.SetPrefix("lvpathd: ")

	if err := loadDotEnv(); err != nil {
		log.Fatal(err)
	}
	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		log.Fatal(err)
	}

	g, err := graphio.ReadFile(cfg.GraphPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded %s: %d vertices, %d edges", cfg.GraphPath, g.VertexCount(), g.EdgeCount())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("listening on %s", cfg.Server.Addr)
	if err := server.New(g, cfg.Server).ListenAndServe(ctx); err != nil {
		log.Fatal(err)
	}
	log.Print("stopped")
}
