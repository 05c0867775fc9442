package board

// MakeMove applies a legal move, pushing next onto the undo stack. The
// caller owns the frame and must keep it alive until the matching
// UndoMove; recursion typically stack-allocates one per level.
func (p *Position) MakeMove(m Move, next *PosInfo) {
	*next = *p.info
	next.prev = p.info
	p.info = next

	us := p.sideToMove
	them := us.Other()
	from, to := m.From(), m.To()
	up := PawnDir(us)
	piece := p.pieceOn[from]

	p.ply++
	next.fiftyMove++
	next.movesFromNull++

	key := next.key ^ zobristSideToMove
	if next.epSquare != NoSquare {
		key ^= zobristEnPassant[next.epSquare.File()]
	}
	key ^= zobristCastling[next.castlingRights]

	captured := p.pieceOn[to]
	if m.IsEnPassant() {
		captured = NewPiece(Pawn, them)
	}

	if m.IsCastling() {
		// The rook travels from the corner to the square beside the
		// king's destination.
		captured = Empty
		rookFrom, rookTo := NewSquare(0, from.Rank()), NewSquare(3, from.Rank())
		if to > from {
			rookFrom, rookTo = NewSquare(7, from.Rank()), NewSquare(5, from.Rank())
		}
		rook := p.pieceOn[rookFrom]
		p.movePiece(from, to)
		p.movePiece(rookFrom, rookTo)
		key ^= zobristPiece[rook][rookFrom] ^ zobristPiece[rook][rookTo]
	} else {
		if captured != Empty {
			capSq := to
			if m.IsEnPassant() {
				capSq = to.Add(-up)
			}
			p.removePiece(capSq)
			key ^= zobristPiece[captured][capSq]
			next.fiftyMove = 0
		}
		p.movePiece(from, to)
	}
	key ^= zobristPiece[piece][from] ^ zobristPiece[piece][to]

	next.castlingRights &^= p.castlingMask[from] | p.castlingMask[to]
	key ^= zobristCastling[next.castlingRights]

	next.epSquare = NoSquare
	if piece.Type() == Pawn {
		// Record the en passant square only when an enemy pawn can
		// actually use it.
		if from^to == 16 && pawnAttackTable[us][to.Add(-up)]&p.PieceMask(Pawn, them) != 0 {
			next.epSquare = to.Add(-up)
			key ^= zobristEnPassant[next.epSquare.File()]
		}

		if m.IsPromotion() {
			promo := NewPiece(m.Promotion(), us)
			p.removePiece(to)
			p.placePiece(promo, to)
			key ^= zobristPiece[piece][to] ^ zobristPiece[promo][to]
		}

		next.fiftyMove = 0
	}

	next.captured = captured
	next.key = key
	p.sideToMove = them
	p.updateCheckInfo()
}

// UndoMove reverts the last MakeMove and pops its frame. The popped frame
// already holds the prior derived data and hash, so nothing is recomputed.
func (p *Position) UndoMove(m Move) {
	p.sideToMove = p.sideToMove.Other()
	us := p.sideToMove
	from, to := m.From(), m.To()
	up := PawnDir(us)

	if m.IsPromotion() {
		p.removePiece(to)
		p.placePiece(NewPiece(Pawn, us), to)
	}

	if m.IsCastling() {
		p.movePiece(to, from)
		if to > from {
			p.movePiece(NewSquare(5, from.Rank()), NewSquare(7, from.Rank()))
		} else {
			p.movePiece(NewSquare(3, from.Rank()), NewSquare(0, from.Rank()))
		}
	} else {
		p.movePiece(to, from)
		if p.info.captured != Empty {
			capSq := to
			if m.IsEnPassant() {
				capSq = to.Add(-up)
			}
			p.placePiece(p.info.captured, capSq)
		}
	}

	p.info = p.info.prev
	p.ply--
}
