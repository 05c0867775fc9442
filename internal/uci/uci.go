// Package uci is a thin text-protocol adapter over the move-generation
// core. It understands just enough of the UCI vocabulary to set up
// positions and drive perft; search commands are not implemented.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/perft"
)

const (
	engineName   = "chesscore"
	engineAuthor = "chesscore authors"
)

// Handler owns one Position and serves commands from a reader.
type Handler struct {
	pos *board.Position
	out io.Writer
}

// New creates a handler holding the starting position.
func New(out io.Writer) *Handler {
	pos, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		panic("uci: bad start FEN: " + err.Error())
	}
	return &Handler{pos: pos, out: out}
}

// Run reads commands line by line until EOF or "quit".
func (h *Handler) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if !h.handle(strings.Fields(scanner.Text())) {
			return
		}
	}
}

func (h *Handler) handle(tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}

	switch tokens[0] {
	case "uci":
		fmt.Fprintf(h.out, "id name %s\n", engineName)
		fmt.Fprintf(h.out, "id author %s\n", engineAuthor)
		fmt.Fprintln(h.out, "uciok")
	case "isready":
		fmt.Fprintln(h.out, "readyok")
	case "position":
		if err := h.setPosition(tokens[1:]); err != nil {
			fmt.Fprintf(h.out, "info string %v\n", err)
		}
	case "go":
		h.runGo(tokens[1:])
	case "d":
		fmt.Fprintln(h.out, h.pos)
		fmt.Fprintf(h.out, "FEN: %s\n", h.pos.ToFEN())
	case "quit":
		return false
	}
	return true
}

// setPosition handles "position [startpos | fen <fen>] [moves <m>...]".
func (h *Handler) setPosition(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("position: missing arguments")
	}

	var fen string
	moveIdx := len(args)

	switch args[0] {
	case "startpos":
		fen = board.StartFEN
		moveIdx = 1
	case "fen":
		end := len(args)
		for i, tok := range args[1:] {
			if tok == "moves" {
				end = i + 1
				break
			}
		}
		fen = strings.Join(args[1:end], " ")
		moveIdx = end
	default:
		return fmt.Errorf("position: unknown argument %q", args[0])
	}

	pos, err := board.ParseFEN(fen)
	if err != nil {
		return err
	}

	if moveIdx < len(args) && args[moveIdx] == "moves" {
		for _, tok := range args[moveIdx+1:] {
			m, err := board.ParseMove(tok, pos)
			if err != nil {
				return err
			}
			pos.MakeMove(m, &board.PosInfo{})
		}
	}

	h.pos = pos
	return nil
}

// runGo handles "go perft <depth>". Other go subcommands report the legal
// move count, which is all a generator-only engine can say.
func (h *Handler) runGo(args []string) {
	if len(args) >= 2 && args[0] == "perft" {
		depth, err := strconv.Atoi(args[1])
		if err != nil || depth < 0 {
			fmt.Fprintf(h.out, "info string bad perft depth %q\n", args[1])
			return
		}
		perft.Go(h.pos, depth, h.out)
		return
	}

	var ml board.MoveList
	h.pos.GenerateMoves(&ml)
	fmt.Fprintf(h.out, "info string %d legal moves\n", ml.Len())
	fmt.Fprintln(h.out, "bestmove 0000")
}
