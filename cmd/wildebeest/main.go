// wildebeest is an interactive board sandbox for Wildebeest Chess. It
// renders the board, reads moves, and reports why a rejected move failed.
// It does not enforce turn order or detect game end; it is a thin shell
// around the rules engine.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mboyd/wildebeest/internal/chess"
	"github.com/mboyd/wildebeest/internal/render"
)

const programVersion = "0.1.0"

var (
	version = flag.Bool("version", false, "Print version and exit")
	quiet   = flag.Bool("q", false, "Don't render the board after each move")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: wildebeest [flags]\n\n")
	fmt.Fprintf(os.Stderr, "Moves are entered as two squares, e.g. \"a2 a5\".\n")
	fmt.Fprintf(os.Stderr, "Files run a-%c, ranks 1-%d. Enter \"quit\" to exit.\n\n",
		render.File(chess.BoardCols-1), chess.BoardRows)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("wildebeest version %s\n", programVersion)
		os.Exit(0)
	}

	board := chess.NewBoard()
	board.Reset()

	if !*quiet {
		fmt.Print(render.Text(board))
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return
		}

		from, to, err := parseMove(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}
		if err := board.Move(from, to); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}
		if !*quiet {
			fmt.Print(render.Text(board))
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "reading input: %v\n", err)
		os.Exit(1)
	}
}
