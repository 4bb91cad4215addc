package ladder

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"unicode/utf8"
)

// Dictionary is an immutable, sorted set of words grouped by length.
// Index i in [0, Len()) names Words()[i]; the ladder search uses these
// indices as vertex ids.
type Dictionary struct {
	words []string       // sorted, unique
	index map[string]int // word → position in words
	byLen map[int][]int  // rune length → positions, ascending
}

// NewDictionary builds a Dictionary from words. Duplicates and empty strings
// are dropped; the input slice is not retained.
func NewDictionary(words []string) *Dictionary {
	sorted := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			sorted = append(sorted, w)
		}
	}
	sort.Strings(sorted)

	d := &Dictionary{
		words: sorted[:0],
		index: make(map[string]int, len(sorted)),
		byLen: make(map[int][]int),
	}
	for _, w := range sorted {
		if _, dup := d.index[w]; dup {
			continue
		}
		i := len(d.words)
		d.words = append(d.words, w)
		d.index[w] = i
		l := utf8.RuneCountInString(w)
		d.byLen[l] = append(d.byLen[l], i)
	}

	return d
}

// Load reads whitespace separated words from r.
func Load(r io.Reader) (*Dictionary, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ladder: read words: %w", err)
	}

	return NewDictionary(words), nil
}

// LoadFile opens path and reads it with Load.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ladder: could not open word list: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.words) }

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.index[w]
	return ok
}

// Words returns a copy of the words in ascending order.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)

	return out
}

// adjacent returns the positions of every word one edit away from w, other
// than w itself. Candidates are tried by length (same, one longer, one
// shorter) and alphabetically within a length.
func (d *Dictionary) adjacent(w string) []int {
	l := utf8.RuneCountInString(w)
	var out []int
	for _, cl := range [...]int{l, l + 1, l - 1} {
		for _, i := range d.byLen[cl] {
			if d.words[i] != w && IsAdjacent(w, d.words[i]) {
				out = append(out, i)
			}
		}
	}

	return out
}

// Neighbors returns every dictionary word one edit away from w, in the order
// the ladder search discovers them.
func (d *Dictionary) Neighbors(w string) []string {
	idx := d.adjacent(w)
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = d.words[i]
	}

	return out
}
