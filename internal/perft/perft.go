// Package perft implements exhaustive move-tree leaf counting, the
// correctness oracle for the move generator and make/undo.
package perft

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"slices"

	"github.com/hailam/chesscore/internal/board"
)

// Nodes counts the leaves of the legal move tree at the given depth. At
// depth 1 the generator's move count is the answer, so the last ply is
// never made.
func Nodes(pos *board.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	var ml board.MoveList
	pos.GenerateMoves(&ml)

	if depth == 1 {
		return uint64(ml.Len())
	}

	var nodes uint64
	var info board.PosInfo
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		pos.MakeMove(m, &info)
		nodes += Nodes(pos, depth-1)
		pos.UndoMove(m)
	}
	return nodes
}

// RootCount pairs a root move with its subtree leaf count.
type RootCount struct {
	Move  board.Move
	Nodes uint64
}

// Divide returns the per-root-move leaf counts, sorted by move text.
func Divide(pos *board.Position, depth int) []RootCount {
	var ml board.MoveList
	pos.GenerateMoves(&ml)

	counts := make([]RootCount, 0, ml.Len())
	var info board.PosInfo
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		n := uint64(1)
		if depth > 1 {
			pos.MakeMove(m, &info)
			n = Nodes(pos, depth-1)
			pos.UndoMove(m)
		}
		counts = append(counts, RootCount{Move: m, Nodes: n})
	}

	slices.SortFunc(counts, func(a, b RootCount) int {
		return strings.Compare(a.Move.String(), b.Move.String())
	})
	return counts
}

// Go runs a performance test and writes the per-root-move counts, the
// total and the elapsed wall time.
func Go(pos *board.Position, depth int, w io.Writer) uint64 {
	fmt.Fprintf(w, "Running performance test\n\n")

	start := time.Now()

	var nodes uint64
	if depth == 0 {
		nodes = 1
	} else {
		for _, rc := range Divide(pos, depth) {
			fmt.Fprintf(w, "    %s: %d\n", rc.Move, rc.Nodes)
			nodes += rc.Nodes
		}
	}

	elapsed := time.Since(start)

	fmt.Fprintf(w, "\nDepth: %d\n", depth)
	fmt.Fprintf(w, "Nodes: %d\n", nodes)
	fmt.Fprintf(w, "Time: %d milliseconds\n", elapsed.Milliseconds())
	return nodes
}

// Case is one regression entry: an expected leaf count for a position at a
// fixed depth.
type Case struct {
	Depth int
	Nodes uint64
	FEN   string
}

// ParseCases reads "<depth> <expected_nodes> <FEN>" lines. Blank lines and
// lines starting with '#' are skipped.
func ParseCases(r io.Reader) ([]Case, error) {
	var cases []Case

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, " ", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("line %d: want \"<depth> <nodes> <fen>\", got %q", lineNo, line)
		}

		depth, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad depth: %v", lineNo, err)
		}
		nodes, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad node count: %v", lineNo, err)
		}

		cases = append(cases, Case{Depth: depth, Nodes: nodes, FEN: strings.TrimSpace(parts[2])})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

// defaultBattery is the stock regression battery.
const defaultBattery = `
5 4865609 rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1
6 11030083 8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1
5 15587335 r3k2r/pp3pp1/PN1pr1p1/4p1P1/4P3/3P4/P1P2PP1/R3K2R w KQkq - 4 4
5 89941194 rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8
4 3894594 r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10
5 193690690 r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1
4 497787 r3k1nr/p2pp1pp/b1n1P1P1/1BK1Pp1q/8/8/2PP1PPP/6N1 w kq - 0 1
6 1134888 3k4/3p4/8/K1P4r/8/8/8/8 b - - 0 1
6 1440467 8/8/1k6/2b5/2pP4/8/5K2/8 b - d3 0 1
6 661072 5k2/8/8/8/8/8/8/4K2R w K - 0 1
7 15594314 3k4/8/8/8/8/8/8/R3K3 w Q - 0 1
4 1274206 r3k2r/1b4bq/8/8/8/8/7B/R3K2R w KQkq - 0 1
5 58773923 r3k2r/8/3Q4/8/8/5q2/8/R3K2R b KQkq - 0 1
6 3821001 2K2r2/4P3/8/8/8/8/8/3k4 w - - 0 1
5 1004658 8/8/1P2K3/8/2n5/1q6/8/5k2 b - - 0 1
6 217342 4k3/1P6/8/8/8/8/K7/8 w - - 0 1
6 92683 8/P1k5/K7/8/8/8/8/8 w - - 0 1
10 5966690 K1k5/8/P7/8/8/8/8/8 w - - 0 1
7 567584 8/k1P5/8/1K6/8/8/8/8 w - - 0 1
6 3114998 8/8/2k5/5q2/5n2/8/5K2/8 b - - 0 1
5 42761834 r1bq2r1/1pppkppp/1b3n2/pP1PP3/2n5/2P5/P3QPPP/RNB1K2R w KQ a6 0 12
4 3050662 r3k2r/pppqbppp/3p1n1B/1N2p3/1nB1P3/3P3b/PPPQNPPP/R3K2R w KQkq - 11 10
5 10574719 4k2r/1pp1n2p/6N1/1K1P2r1/4P3/P5P1/1Pp4P/R7 w k - 0 6
4 6871272 1Bb3BN/R2Pk2r/1Q5B/4q2R/2bN4/4Q1BK/1p6/1bq1R1rb w - - 0 1
6 71179139 n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1
6 28859283 8/PPPk4/8/8/8/8/4Kppp/8 b - - 0 1
9 7618365 8/2k1p3/3pP3/3P2K1/8/8/8/8 w - - 0 1
4 28181 3r4/2p1p3/8/1P1P1P2/3K4/5k2/8/8 b - - 0 1
5 6323457 8/1p4p1/8/q1PK1P1r/3p1k2/8/4P3/4Q3 b - - 0 1
`

// DefaultCases returns the built-in regression battery.
func DefaultCases() []Case {
	cases, err := ParseCases(strings.NewReader(defaultBattery))
	if err != nil {
		panic("perft: bad built-in battery: " + err.Error())
	}
	return cases
}

// RunCase parses the case's FEN and compares the counted leaves against
// the expectation.
func RunCase(c Case) (uint64, error) {
	pos, err := board.ParseFEN(c.FEN)
	if err != nil {
		return 0, err
	}
	nodes := Nodes(pos, c.Depth)
	if nodes != c.Nodes {
		return nodes, fmt.Errorf("perft(%d) on %q: got %d nodes, want %d", c.Depth, c.FEN, nodes, c.Nodes)
	}
	return nodes, nil
}
