// Command chesscore drives the move-generation core: perft runs, divide
// output, the regression battery, or a minimal UCI-style loop.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/perft"
	"github.com/hailam/chesscore/internal/uci"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to the initial position)")
	depth := flag.Int("depth", 6, "perft depth")
	divide := flag.Bool("divide", true, "print per-root-move node counts")
	battery := flag.String("battery", "", "run regression cases from a file (\"default\" for the built-in set)")
	uciMode := flag.Bool("uci", false, "run the text protocol loop on stdin")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to the working directory")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	switch {
	case *uciMode:
		uci.New(os.Stdout).Run(os.Stdin)

	case *battery != "":
		runBattery(*battery)

	default:
		pos, err := board.ParseFEN(*fen)
		if err != nil {
			log.Fatalf("parsing FEN: %v", err)
		}
		fmt.Println(pos)

		// Divide is the default: print the position, then the per-move
		// breakdown.
		if *divide {
			perft.Go(pos, *depth, os.Stdout)
			return
		}

		start := time.Now()
		nodes := perft.Nodes(pos, *depth)
		elapsed := time.Since(start)
		fmt.Printf("Depth: %d\nNodes: %d\nTime: %d milliseconds\n", *depth, nodes, elapsed.Milliseconds())
	}
}

// runBattery executes a perft regression set and reports each case the way
// the classic harness does.
func runBattery(path string) {
	var cases []perft.Case
	if path == "default" {
		cases = perft.DefaultCases()
	} else {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("opening battery: %v", err)
		}
		defer f.Close()

		cases, err = perft.ParseCases(f)
		if err != nil {
			log.Fatalf("parsing battery: %v", err)
		}
	}

	failed := 0
	for _, c := range cases {
		start := time.Now()
		nodes, err := perft.RunCase(c)
		elapsed := time.Since(start)

		fmt.Printf("Depth %d  Nodes %d  %d milliseconds - ", c.Depth, nodes, elapsed.Milliseconds())
		if err != nil {
			failed++
			fmt.Printf("FAILED (expected: %d)\n", c.Nodes)
		} else {
			fmt.Println("PASSED")
		}
	}

	if failed > 0 {
		log.Fatalf("%d of %d cases failed", failed, len(cases))
	}
	fmt.Printf("All %d cases passed\n", len(cases))
}
