package board

// Pre-computed attack tables. Populated once by package init and read-only
// afterwards; reads are safe from any goroutine.
var (
	pawnAttackTable [2][64]Bitboard
	pseudoAttacks   [pieceTypeCount][64]Bitboard

	// lineMask spans the full rank/file/diagonal through two squares,
	// endpoints included; zero when the squares share no line.
	// betweenMask holds the open interval between two squares plus the
	// destination square, so that capturing a checker counts as an
	// interposition. The destination is present for every pair, aligned
	// or not.
	lineMask    [64][64]Bitboard
	betweenMask [64][64]Bitboard
)

func init() {
	initMagics() // from magic.go
	initPseudoAttacks()
	initLineAndBetweenMasks()
}

func initPseudoAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		pawnAttackTable[White][sq] = bb.NorthWest() | bb.NorthEast()
		pawnAttackTable[Black][sq] = bb.SouthWest() | bb.SouthEast()

		pseudoAttacks[King][sq] = bb.North() | bb.South() | bb.East() | bb.West() |
			bb.NorthEast() | bb.NorthWest() | bb.SouthEast() | bb.SouthWest()

		pseudoAttacks[Knight][sq] = bb.North().NorthEast() | bb.North().NorthWest() |
			bb.South().SouthEast() | bb.South().SouthWest() |
			bb.East().NorthEast() | bb.East().SouthEast() |
			bb.West().NorthWest() | bb.West().SouthWest()

		pseudoAttacks[Bishop][sq] = bishopAttacks(sq, 0)
		pseudoAttacks[Rook][sq] = rookAttacks(sq, 0)
		pseudoAttacks[Queen][sq] = pseudoAttacks[Bishop][sq] | pseudoAttacks[Rook][sq]
	}
}

func initLineAndBetweenMasks() {
	for from := A1; from <= H8; from++ {
		for to := A1; to <= H8; to++ {
			for _, pt := range []PieceType{Bishop, Rook} {
				if pseudoAttacks[pt][from].IsSet(to) {
					lineMask[from][to] = (AttackMask(pt, from, 0) & AttackMask(pt, to, 0)) |
						SquareBB(from) | SquareBB(to)
					betweenMask[from][to] = AttackMask(pt, from, SquareBB(to)) &
						AttackMask(pt, to, SquareBB(from))
				}
			}
			betweenMask[from][to] |= SquareBB(to)
		}
	}
}

// PawnAttacks returns the capture targets of a pawn of the given color.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttackTable[c][sq]
}

// AttackMask returns the attack set of the given piece type from a square.
// Blockers only matter for sliders. Pawn attacks are color-dependent and
// must go through PawnAttacks instead.
func AttackMask(pt PieceType, sq Square, blockers Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopAttacks(sq, blockers)
	case Rook:
		return rookAttacks(sq, blockers)
	case Queen:
		return bishopAttacks(sq, blockers) | rookAttacks(sq, blockers)
	case Knight, King:
		return pseudoAttacks[pt][sq]
	}
	panic("AttackMask: bad piece type " + pt.String())
}

// Between returns the squares strictly between two squares plus the second
// square itself. Empty apart from sq2 when the squares are not aligned.
func Between(sq1, sq2 Square) Bitboard {
	return betweenMask[sq1][sq2]
}

// Line returns the full line through two squares, endpoints included.
// Returns empty if the squares are not aligned.
func Line(sq1, sq2 Square) Bitboard {
	return lineMask[sq1][sq2]
}

// Aligned returns true if three squares are on the same line.
func Aligned(sq1, sq2, sq3 Square) bool {
	return lineMask[sq1][sq2]&SquareBB(sq3) != 0
}
