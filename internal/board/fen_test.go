package board

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestParseStartPosition(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)

	assert.Equal(t, White, pos.SideToMove())
	assert.Equal(t, AllCastling, pos.CastlingRights())
	assert.Equal(t, NoSquare, pos.EnPassant())
	assert.Equal(t, 0, pos.FiftyMove())
	assert.Equal(t, 0, pos.Ply())
	assert.Equal(t, 1, pos.FullMove())

	assert.Equal(t, WhiteRook, pos.PieceOn(A1))
	assert.Equal(t, WhiteKing, pos.PieceOn(E1))
	assert.Equal(t, BlackQueen, pos.PieceOn(D8))
	assert.Equal(t, Empty, pos.PieceOn(E4))

	assert.Equal(t, 8, pos.Count(WhitePawn))
	assert.Equal(t, 2, pos.Count(BlackRook))
	assert.Equal(t, 16, pos.Count(NewPiece(AllPieces, White)))
	assert.Equal(t, E1, pos.KingSquare(White))
	assert.Equal(t, E8, pos.KingSquare(Black))
	assert.Equal(t, Bitboard(0), pos.Checkers())
}

func TestParsePly(t *testing.T) {
	pos, err := ParseFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 3 12")
	require.NoError(t, err)
	assert.Equal(t, 23, pos.Ply())
	assert.Equal(t, 12, pos.FullMove())
	assert.Equal(t, 3, pos.FiftyMove())

	pos, err = ParseFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 3 12")
	require.NoError(t, err)
	assert.Equal(t, 22, pos.Ply())
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		kiwipeteFEN,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/pp3pp1/PN1pr1p1/4p1P1/4P3/3P4/P1P2PP1/R3K2R w KQkq - 4 4",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
		"8/8/1k6/2b5/2pP4/8/5K2/8 b - d3 0 1",
		"4k3/8/8/8/8/8/8/4K2R w K - 10 31",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, pos.ToFEN(), "round trip of %q", fen)

		again, err := ParseFEN(pos.ToFEN())
		require.NoError(t, err)
		assert.Equal(t, pos.ToFEN(), again.ToFEN())
	}
}

func TestFENMatchesReferenceLibrary(t *testing.T) {
	for _, fen := range []string{StartFEN, kiwipeteFEN} {
		opt, err := chess.FEN(fen)
		require.NoError(t, err)
		game := chess.NewGame(opt)

		pos, err := ParseFEN(fen)
		require.NoError(t, err)

		assert.Equal(t, game.Position().String(), pos.ToFEN())
	}
}

func TestParsePermissive(t *testing.T) {
	// Unknown castling letters are skipped, recognized ones still apply.
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KxQz - 0 1")
	require.NoError(t, err)
	assert.Equal(t, WhiteKingSideCastle|WhiteQueenSideCastle, pos.CastlingRights())

	// Declared rights are dropped when king or rook left home.
	pos, err = ParseFEN("r3k2r/8/8/8/8/8/8/R4K1R w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, BlackKingSideCastle|BlackQueenSideCastle, pos.CastlingRights())

	// An en passant square nobody can capture on is discarded.
	pos, err = ParseFEN("4k3/8/8/3p4/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	assert.Equal(t, NoSquare, pos.EnPassant())

	// A capturable one is kept.
	pos, err = ParseFEN("4k3/8/8/3Pp3/8/8/8/4K3 w - e6 0 1")
	require.NoError(t, err)
	assert.Equal(t, E6, pos.EnPassant())

	// Clock fields may be missing.
	pos, err = ParseFEN("4k3/8/8/8/8/8/8/4K3 w - -")
	require.NoError(t, err)
	assert.Equal(t, 0, pos.FiftyMove())
	assert.Equal(t, 1, pos.FullMove())
}

func TestParseRejectsBrokenPlacement(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8 w KQkq - 0 1")
	assert.Error(t, err)

	_, err = ParseFEN("9/8/8/8/8/8/8/8 w - - 0 1")
	assert.Error(t, err)

	_, err = ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	assert.Error(t, err)

	// Kings are not optional.
	_, err = ParseFEN("8/8/8/8/8/8/8/R7 w - - 0 1")
	assert.Error(t, err)
}
