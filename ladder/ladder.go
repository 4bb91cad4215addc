// Package ladder finds word ladders: the shortest chain of dictionary words
// from one word to another where each step is a single insertion, deletion
// or substitution.
//
// The dictionary words are the vertices of an implicit graph whose edges
// ("one edit apart") are computed on demand. Generate runs bfs.Search over
// it, stopping as soon as the end word is discovered.
//
//	dict, _ := ladder.LoadFile("words.txt")
//	words, err := ladder.Generate(ctx, dict, "cat", "dog")
//	_ = ladder.Write(os.Stdout, words) // Word ladder found: cat cot cog dog
//
// The start word need not be in the dictionary; the end word must be.
// Among several shortest ladders the one found first wins, with neighbors
// tried same length first, then one longer, then one shorter, each group
// in alphabetical order.
package ladder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvpath/bfs"
)

// Sentinel errors for ladder generation.
var (
	// ErrNilDictionary is returned when Generate is called without a dictionary.
	ErrNilDictionary = errors.New("ladder: dictionary is nil")

	// ErrNoLadder is returned when no chain of dictionary words links the two words.
	ErrNoLadder = errors.New("ladder: no word ladder found")
)

// Generate returns the shortest word ladder from begin to end, both included.
//
// begin == end yields the one-word ladder even when the word is not in d.
// Otherwise end must be in d and every intermediate word comes from d.
// ErrNoLadder is returned (wrapped with both words) when no ladder exists;
// ctx cancellation aborts the search with ctx.Err().
func Generate(ctx context.Context, d *Dictionary, begin, end string) ([]string, error) {
	if d == nil {
		return nil, ErrNilDictionary
	}
	if begin == end {
		return []string{begin}, nil
	}
	target, ok := d.index[end]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not in the dictionary", ErrNoLadder, end)
	}

	// Vertices are dictionary positions; a begin word outside the dictionary
	// gets the extra id n.
	n := d.Len()
	start, ok := d.index[begin]
	if !ok {
		start = n
		n++
	}
	word := func(v int) string {
		if v == d.Len() {
			return begin
		}
		return d.words[v]
	}
	next := func(v int) ([]int, error) {
		return d.adjacent(word(v)), nil
	}

	res, err := bfs.Search(n, start, next, bfs.WithContext(ctx), bfs.WithTarget(target))
	if err != nil {
		return nil, fmt.Errorf("ladder: %w", err)
	}
	path, err := res.PathTo(target)
	if errors.Is(err, bfs.ErrNoPath) {
		return nil, fmt.Errorf("%w from %q to %q", ErrNoLadder, begin, end)
	}
	if err != nil {
		return nil, fmt.Errorf("ladder: %w", err)
	}

	out := make([]string, len(path))
	for i, v := range path {
		out[i] = word(v)
	}

	return out, nil
}

// Write prints "Word ladder found: w1 w2 ... wn", or "No word ladder found."
// for an empty ladder, each followed by a newline.
func Write(w io.Writer, ladder []string) error {
	if len(ladder) == 0 {
		_, err := io.WriteString(w, "No word ladder found.\n")
		return err
	}
	_, err := fmt.Fprintf(w, "Word ladder found: %s\n", strings.Join(ladder, " "))

	return err
}
