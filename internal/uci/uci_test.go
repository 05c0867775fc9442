package uci

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func run(input string) string {
	var out strings.Builder
	New(&out).Run(strings.NewReader(input))
	return out.String()
}

func TestHandshake(t *testing.T) {
	out := run("uci\nisready\nquit\n")
	assert.Contains(t, out, "id name chesscore")
	assert.Contains(t, out, "uciok")
	assert.Contains(t, out, "readyok")
}

func TestPositionAndPerft(t *testing.T) {
	out := run("position startpos\ngo perft 3\nquit\n")
	assert.Contains(t, out, "Nodes: 8902")

	out = run("position fen r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1\ngo perft 1\n")
	assert.Contains(t, out, "Nodes: 48")
}

func TestPositionWithMoves(t *testing.T) {
	out := run("position startpos moves e2e4 c7c5\nd\n")
	assert.Contains(t, out, "FEN: rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
}

func TestIllegalMoveReported(t *testing.T) {
	out := run("position startpos moves e2e5\n")
	assert.Contains(t, out, "illegal move")
}

func TestGoWithoutPerftReportsMoveCount(t *testing.T) {
	out := run("position startpos\ngo depth 5\n")
	assert.Contains(t, out, "20 legal moves")
	assert.Contains(t, out, "bestmove 0000")
}
