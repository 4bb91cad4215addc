// Package graphio reads edge-list graph descriptions into core.Graph values
// and renders shortest-path results as text.
//
// Input format:
//
//	# comment lines and blank lines are ignored
//	4          <- vertex count N
//	0 1 4      <- edge: src dst weight
//	0 2 1
//	2 1 1
//
// The input is a stream of whitespace separated integers: the first is N and
// every following group of three is an edge. Line breaks carry no meaning, so
// "4 0 1 4 0 2 1 2 1 1" describes the same graph. A '#' starts a comment that
// runs to the end of its line. Vertex indices must lie in [0, N); weight rules
// follow the core.GraphOption values passed to Read.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvpath/core"
)

// ErrSyntax is returned (wrapped with the line number) for malformed input.
var ErrSyntax = errors.New("graphio: syntax error")

// token is one whitespace separated word and the line it came from.
type token struct {
	text string
	line int
}

// tokenizer yields the words of r one at a time, skipping '#' comments.
type tokenizer struct {
	sc      *bufio.Scanner
	line    int
	pending []string
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{sc: bufio.NewScanner(r)}
}

// next returns the following token. ok is false at end of input or on a read
// error, which Err then reports.
func (t *tokenizer) next() (tok token, ok bool) {
	for len(t.pending) == 0 {
		if !t.sc.Scan() {
			return token{}, false
		}
		t.line++
		text := t.sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		t.pending = strings.Fields(text)
	}
	tok = token{text: t.pending[0], line: t.line}
	t.pending = t.pending[1:]

	return tok, true
}

// Err reports the first non-EOF read error.
func (t *tokenizer) Err() error { return t.sc.Err() }

// Read parses a graph description from r.
func Read(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	tz := newTokenizer(r)

	// header
	hdr, ok := tz.next()
	if !ok {
		if err := tz.Err(); err != nil {
			return nil, fmt.Errorf("graphio: read: %w", err)
		}
		return nil, fmt.Errorf("%w: missing vertex count", ErrSyntax)
	}
	n, err := strconv.Atoi(hdr.text)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: vertex count: %v", ErrSyntax, hdr.line, err)
	}
	g, err := core.NewGraph(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("graphio: line %d: %w", hdr.line, err)
	}

	// edges, three tokens at a time
	var triple [3]token
	for {
		got := 0
		for got < len(triple) {
			if triple[got], ok = tz.next(); !ok {
				break
			}
			got++
		}
		if got == 0 {
			break
		}
		if got < len(triple) {
			if err = tz.Err(); err != nil {
				return nil, fmt.Errorf("graphio: read: %w", err)
			}
			return nil, fmt.Errorf("%w: line %d: want \"src dst weight\", input ends after %d of 3 fields",
				ErrSyntax, triple[got-1].line, got)
		}

		from, to, w, err := parseEdge(triple)
		if err != nil {
			return nil, err
		}
		if err = g.AddEdge(from, to, w); err != nil {
			return nil, fmt.Errorf("graphio: line %d: %w", triple[0].line, err)
		}
	}
	if err = tz.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	return g, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: could not open graph file: %w", err)
	}
	defer f.Close()

	g, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// parseEdge decodes "src dst weight". Errors name the line of the bad token.
func parseEdge(f [3]token) (from, to int, w int64, err error) {
	if from, err = strconv.Atoi(f[0].text); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: line %d: src: %v", ErrSyntax, f[0].line, err)
	}
	if to, err = strconv.Atoi(f[1].text); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: line %d: dst: %v", ErrSyntax, f[1].line, err)
	}
	if w, err = strconv.ParseInt(f[2].text, 10, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: line %d: weight: %v", ErrSyntax, f[2].line, err)
	}

	return from, to, w, nil
}
