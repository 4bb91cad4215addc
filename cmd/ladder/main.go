// Command ladder prints the shortest word ladder between two words, using a
// whitespace separated word list as the dictionary.
//
// Usage:
//
//	ladder [-dict words.txt] [start end]
//
// Without the two words it prompts for them on standard input.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvpath/ladder"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ladder: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		stop()
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("ladder", flag.ContinueOnError)
	dictPath := fs.String("dict", "words.txt", "word list file")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: ladder [-dict words.txt] [start end]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	var start, end string
	switch fs.NArg() {
	case 2:
		start, end = fs.Arg(0), fs.Arg(1)
	case 0:
		var err error
		if start, end, err = prompt(in, out); err != nil {
			return err
		}
	default:
		fs.Usage()
		return fmt.Errorf("expected a start and an end word, got %d arguments", fs.NArg())
	}

	dict, err := ladder.LoadFile(*dictPath)
	if err != nil {
		return err
	}
	words, err := ladder.Generate(ctx, dict, start, end)
	if err != nil && !errors.Is(err, ladder.ErrNoLadder) {
		return err
	}

	return ladder.Write(out, words)
}

// prompt asks for the two words on in, one token each.
func prompt(in io.Reader, out io.Writer) (start, end string, err error) {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	read := func(label string) (string, error) {
		fmt.Fprintf(out, "Enter %s word: ", label)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("missing %s word", label)
		}
		return sc.Text(), nil
	}
	if start, err = read("start"); err != nil {
		return "", "", err
	}
	if end, err = read("end"); err != nil {
		return "", "", err
	}

	return start, end, nil
}
