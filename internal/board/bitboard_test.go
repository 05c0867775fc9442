package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareEncoding(t *testing.T) {
	assert.Equal(t, 0, A1.File())
	assert.Equal(t, 0, A1.Rank())
	assert.Equal(t, 7, H8.File())
	assert.Equal(t, 7, H8.Rank())
	assert.Equal(t, E4, NewSquare(4, 3))
	assert.Equal(t, "e4", E4.String())
	assert.Equal(t, "-", NoSquare.String())

	sq, err := ParseSquare("c6")
	assert.NoError(t, err)
	assert.Equal(t, C6, sq)

	_, err = ParseSquare("j9")
	assert.Error(t, err)

	assert.Equal(t, 1, E2.RelativeRank(White))
	assert.Equal(t, 6, E2.RelativeRank(Black))
}

func TestPieceEncoding(t *testing.T) {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			p := NewPiece(pt, c)
			assert.Equal(t, pt, p.Type())
			assert.Equal(t, c, p.Color())
			assert.NotEqual(t, Empty, p)
		}
	}
	assert.Equal(t, "P", WhitePawn.String())
	assert.Equal(t, "q", BlackQueen.String())
	assert.Equal(t, BlackKnight, PieceFromChar('n'))
	assert.Equal(t, Empty, PieceFromChar('x'))
}

func TestShifts(t *testing.T) {
	e4 := SquareBB(E4)
	assert.Equal(t, SquareBB(E5), e4.North())
	assert.Equal(t, SquareBB(E3), e4.South())
	assert.Equal(t, SquareBB(F4), e4.East())
	assert.Equal(t, SquareBB(D4), e4.West())
	assert.Equal(t, SquareBB(F5), e4.NorthEast())
	assert.Equal(t, SquareBB(D3), e4.SouthWest())

	// No wrapping around the board edges.
	assert.Equal(t, Bitboard(0), SquareBB(H4).East())
	assert.Equal(t, Bitboard(0), SquareBB(A4).West())
	assert.Equal(t, Bitboard(0), SquareBB(H4).NorthEast())
	assert.Equal(t, Bitboard(0), SquareBB(A4).SouthWest())
	assert.Equal(t, Bitboard(0), SquareBB(H8).North())
	assert.Equal(t, Bitboard(0), SquareBB(A1).South())
}

func TestBitScans(t *testing.T) {
	bb := SquareBB(C3) | SquareBB(F7) | SquareBB(H8)
	assert.Equal(t, 3, bb.PopCount())
	assert.Equal(t, C3, bb.LSB())
	assert.True(t, bb.MoreThanOne())
	assert.False(t, SquareBB(C3).MoreThanOne())

	first := bb.PopLSB()
	assert.Equal(t, C3, first)
	assert.Equal(t, 2, bb.PopCount())

	assert.Equal(t, NoSquare, Bitboard(0).LSB())
}

func TestLineAndBetween(t *testing.T) {
	// Between is the open interval plus the destination square.
	assert.Equal(t, SquareBB(C3)|SquareBB(D4)|SquareBB(E5), Between(B2, E5))
	assert.Equal(t, SquareBB(E2)|SquareBB(E3)|SquareBB(E4), Between(E1, E4))

	// Non-aligned pairs still carry the destination.
	assert.Equal(t, SquareBB(E5), Between(C2, E5))

	// Lines include both endpoints and run edge to edge.
	line := Line(B2, E5)
	assert.True(t, line.IsSet(A1))
	assert.True(t, line.IsSet(B2))
	assert.True(t, line.IsSet(E5))
	assert.True(t, line.IsSet(H8))
	assert.False(t, line.IsSet(A2))

	assert.Equal(t, Bitboard(0), Line(A1, B3))

	assert.True(t, Aligned(A1, C3, H8))
	assert.True(t, Aligned(E1, E8, E4))
	assert.False(t, Aligned(A1, C3, C4))
}

func TestMoveEncoding(t *testing.T) {
	m := NewMove(E2, E4)
	assert.Equal(t, E2, m.From())
	assert.Equal(t, E4, m.To())
	assert.Equal(t, KindNormal, m.Kind())
	assert.Equal(t, "e2e4", m.String())

	pm := NewPromotion(A7, A8, Queen)
	assert.True(t, pm.IsPromotion())
	assert.Equal(t, Queen, pm.Promotion())
	assert.Equal(t, "a7a8q", pm.String())

	under := NewPromotion(A7, B8, Knight)
	assert.Equal(t, Knight, under.Promotion())
	assert.Equal(t, "a7b8n", under.String())

	ep := NewEnPassant(D5, E6)
	assert.True(t, ep.IsEnPassant())
	assert.False(t, ep.IsPromotion())

	oo := NewCastling(E1, G1)
	assert.True(t, oo.IsCastling())
	assert.Equal(t, "e1g1", oo.String())

	assert.Equal(t, "0000", MoveNone.String())
	assert.NotEqual(t, MoveNone, MoveNull)
}
