// Command dijkstras reads an edge-list graph file, solves single-source
// shortest paths from one vertex and prints the path and cost to every vertex.
//
// Usage:
//
//	dijkstras [-source N] <graphfile>
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/graphio"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("dijkstras: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("dijkstras", flag.ContinueOnError)
	source := fs.Int("source", 0, "source vertex index")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: dijkstras [-source N] <graphfile>\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one graph file, got %d arguments", fs.NArg())
	}

	g, err := graphio.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("error reading graph: %w", err)
	}
	res, err := dijkstra.Solve(g, *source)
	if err != nil {
		return err
	}

	return graphio.WriteReport(out, res)
}
