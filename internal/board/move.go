package board

import "fmt"

// Move encodes a chess move in 16 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-13: kind (0=normal, 1=promotion, 2=en passant, 3=castling)
// bits 14-15: promotion piece minus knight (0=N, 1=B, 2=R, 3=Q)
type Move uint16

// Move kinds.
const (
	KindNormal    uint16 = 0 << 12
	KindPromotion uint16 = 1 << 12
	KindEnPassant uint16 = 2 << 12
	KindCastling  uint16 = 3 << 12
)

// Reserved moves. MoveNull is a syntactically valid encoding (b1b1) that no
// legal move can produce.
const (
	MoveNone Move = 0
	MoveNull Move = Move(B1) | Move(B1)<<6
)

// NewMove creates a normal move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// NewPromotion creates a promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move(from) | Move(to)<<6 | Move(KindPromotion) | Move(promo-Knight)<<14
}

// NewEnPassant creates an en passant capture move.
func NewEnPassant(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(KindEnPassant)
}

// NewCastling creates a castling move, encoded as the king's movement.
func NewCastling(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(KindCastling)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Kind returns the move kind bits.
func (m Move) Kind() uint16 {
	return uint16(m) & 0x3000
}

// Promotion returns the promotion piece type. Only meaningful when
// IsPromotion() is true.
func (m Move) Promotion() PieceType {
	return PieceType(m>>14) + Knight
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m.Kind() == KindPromotion
}

// IsEnPassant returns true if this is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Kind() == KindEnPassant
}

// IsCastling returns true if this is a castling move.
func (m Move) IsCastling() bool {
	return m.Kind() == KindCastling
}

// String returns the UCI form of the move (e.g., "e2e4", "a7a8q").
// Castling renders as the king's move.
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}

	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string("nbrq"[m.Promotion()-Knight])
	}
	return s
}

// ParseMove parses a UCI move string against the position's legal moves, so
// the kind bits and promotion come back exactly as generated.
func ParseMove(s string, pos *Position) (Move, error) {
	var ml MoveList
	pos.GenerateMoves(&ml)
	for i := 0; i < ml.Len(); i++ {
		if ml.Get(i).String() == s {
			return ml.Get(i), nil
		}
	}
	return MoveNone, fmt.Errorf("illegal move: %s", s)
}

// MaxMoves bounds the number of legal moves in any reachable position.
const MaxMoves = 256

// MoveList is a fixed-size list of moves to avoid allocations.
type MoveList struct {
	moves [MaxMoves]Move
	count int
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Clear empties the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice backed by the list.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
