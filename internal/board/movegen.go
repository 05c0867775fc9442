package board

// GenerateMoves appends every legal move for the side to move to ml.
// Moves come out in generation order; the caller sorts if it cares.
func (p *Position) GenerateMoves(ml *MoveList) {
	p.generate(ml, false)
}

// GenerateCaptures appends the legal captures, en passant included.
// Promotions are emitted only when they capture.
func (p *Position) GenerateCaptures(ml *MoveList) {
	p.generate(ml, true)
}

// generate produces strictly legal moves without make-and-test: pseudo
// attacks are filtered through pin rays, the check-evasion target mask and
// the king-safety scan, and en passant runs its own slider sweep.
func (p *Position) generate(ml *MoveList, capturesOnly bool) {
	us := p.sideToMove
	them := us.Other()
	ksq := p.KingSquare(us)
	occupied := p.byType[AllPieces]
	checkers := p.info.checkers

	// King moves first: they are the only answer to double check. The
	// king is excluded from the occupancy so a slider's attack sweeps
	// through the square it vacates.
	kingTargets := pseudoAttacks[King][ksq] &^ p.byColor[us]
	if capturesOnly {
		kingTargets &= p.byColor[them]
	}
	occWithoutKing := occupied ^ SquareBB(ksq)
	for bb := kingTargets; bb != 0; {
		to := bb.PopLSB()
		if p.AttackersTo(to, occWithoutKing)&p.byColor[them] == 0 {
			ml.Add(NewMove(ksq, to))
		}
	}

	if checkers.MoreThanOne() {
		return
	}

	// In check every other move must capture the checker or interpose;
	// Between includes the checker square, so both come out of one mask.
	target := ^p.byColor[us]
	if checkers != 0 {
		target = betweenMask[ksq][checkers.LSB()]
	}
	if capturesOnly {
		target &= p.byColor[them]
	}

	p.generatePawnMoves(ml, target, capturesOnly)
	p.generatePieceMoves(ml, target)

	if checkers == 0 && !capturesOnly {
		p.generateCastlingMoves(ml)
	}
}

func (p *Position) generatePawnMoves(ml *MoveList, target Bitboard, capturesOnly bool) {
	us := p.sideToMove
	them := us.Other()
	ksq := p.KingSquare(us)
	occupied := p.byType[AllPieces]
	empty := ^occupied
	enemies := p.byColor[them]
	pinned := p.Pinned(us)

	up := PawnDir(us)
	upLeft, upRight := NorthWest, NorthEast
	rank3, rank7 := Rank3, Rank7
	if us == Black {
		upLeft, upRight = SouthEast, SouthWest
		rank3, rank7 = Rank6, Rank2
	}

	pawns := p.PieceMask(Pawn, us)
	promoters := pawns & rank7
	pushers := pawns &^ rank7

	// A pinned pawn may still move along its pin ray; check per move.
	add := func(from, to Square, m Move) {
		if pinned.IsSet(from) && !Aligned(from, to, ksq) {
			return
		}
		ml.Add(m)
	}

	if !capturesOnly {
		singlePush := pushers.Shift(up) & empty
		doublePush := (singlePush & rank3).Shift(up) & empty & target
		singlePush &= target

		for singlePush != 0 {
			to := singlePush.PopLSB()
			from := to.Add(-up)
			add(from, to, NewMove(from, to))
		}
		for doublePush != 0 {
			to := doublePush.PopLSB()
			from := to.Add(-up).Add(-up)
			add(from, to, NewMove(from, to))
		}
	}

	capturesLeft := pushers.Shift(upLeft) & enemies & target
	capturesRight := pushers.Shift(upRight) & enemies & target

	for capturesLeft != 0 {
		to := capturesLeft.PopLSB()
		from := to.Add(-upLeft)
		add(from, to, NewMove(from, to))
	}
	for capturesRight != 0 {
		to := capturesRight.PopLSB()
		from := to.Add(-upRight)
		add(from, to, NewMove(from, to))
	}

	if promoters != 0 {
		addPromotions := func(from, to Square) {
			if pinned.IsSet(from) && !Aligned(from, to, ksq) {
				return
			}
			ml.Add(NewPromotion(from, to, Queen))
			ml.Add(NewPromotion(from, to, Rook))
			ml.Add(NewPromotion(from, to, Bishop))
			ml.Add(NewPromotion(from, to, Knight))
		}

		if !capturesOnly {
			pushPromos := promoters.Shift(up) & empty & target
			for pushPromos != 0 {
				to := pushPromos.PopLSB()
				addPromotions(to.Add(-up), to)
			}
		}

		promoLeft := promoters.Shift(upLeft) & enemies & target
		promoRight := promoters.Shift(upRight) & enemies & target
		for promoLeft != 0 {
			to := promoLeft.PopLSB()
			addPromotions(to.Add(-upLeft), to)
		}
		for promoRight != 0 {
			to := promoRight.PopLSB()
			addPromotions(to.Add(-upRight), to)
		}
	}

	p.generateEnPassant(ml, pawns)
}

// generateEnPassant emits the en passant captures that leave the king
// safe. Removing two pawns from one rank can uncover attacks no pin mask
// anticipates, so legality is settled by sweeping sliders over the
// occupancy as it would be after the capture.
func (p *Position) generateEnPassant(ml *MoveList, pawns Bitboard) {
	ep := p.info.epSquare
	if ep == NoSquare {
		return
	}

	us := p.sideToMove
	them := us.Other()
	ksq := p.KingSquare(us)
	up := PawnDir(us)
	capSq := ep.Add(-up)

	// Under check the capture must take the checker itself or land on the
	// checking ray; the slider sweep below settles the rest.
	if checkers := p.info.checkers; checkers != 0 {
		checker := checkers.LSB()
		if capSq != checker && !betweenMask[ksq][checker].IsSet(ep) {
			return
		}
	}

	enemyStraight := p.PieceMask(Rook, them) | p.PieceMask(Queen, them)
	enemyDiagonal := p.PieceMask(Bishop, them) | p.PieceMask(Queen, them)

	attackers := pawnAttackTable[them][ep] & pawns
	for attackers != 0 {
		from := attackers.PopLSB()

		occupied := p.byType[AllPieces] ^ SquareBB(from) ^ SquareBB(capSq) ^ SquareBB(ep)
		if rookAttacks(ksq, occupied)&enemyStraight != 0 ||
			bishopAttacks(ksq, occupied)&enemyDiagonal != 0 {
			continue
		}
		ml.Add(NewEnPassant(from, ep))
	}
}

func (p *Position) generatePieceMoves(ml *MoveList, target Bitboard) {
	us := p.sideToMove
	ksq := p.KingSquare(us)
	occupied := p.byType[AllPieces]
	pinned := p.Pinned(us)

	for pt := Knight; pt <= Queen; pt++ {
		pieces := p.PieceMask(pt, us)
		for pieces != 0 {
			from := pieces.PopLSB()

			attacks := AttackMask(pt, from, occupied) & target
			if pinned.IsSet(from) {
				if pt == Knight {
					continue // a knight never stays on a ray
				}
				attacks &= lineMask[from][ksq]
			}

			for attacks != 0 {
				ml.Add(NewMove(from, attacks.PopLSB()))
			}
		}
	}
}

// generateCastlingMoves assumes the king is not in check. The squares the
// king crosses must be empty and safe; for long castling the b-file square
// only needs to be empty.
func (p *Position) generateCastlingMoves(ml *MoveList) {
	us := p.sideToMove
	them := us.Other()
	rights := p.info.castlingRights
	occupied := p.byType[AllPieces]

	safe := func(sq Square) bool {
		return p.AttackersTo(sq, occupied)&p.byColor[them] == 0
	}

	if us == White {
		if rights&WhiteKingSideCastle != 0 &&
			occupied&(SquareBB(F1)|SquareBB(G1)) == 0 &&
			safe(F1) && safe(G1) {
			ml.Add(NewCastling(E1, G1))
		}
		if rights&WhiteQueenSideCastle != 0 &&
			occupied&(SquareBB(B1)|SquareBB(C1)|SquareBB(D1)) == 0 &&
			safe(C1) && safe(D1) {
			ml.Add(NewCastling(E1, C1))
		}
	} else {
		if rights&BlackKingSideCastle != 0 &&
			occupied&(SquareBB(F8)|SquareBB(G8)) == 0 &&
			safe(F8) && safe(G8) {
			ml.Add(NewCastling(E8, G8))
		}
		if rights&BlackQueenSideCastle != 0 &&
			occupied&(SquareBB(B8)|SquareBB(C8)|SquareBB(D8)) == 0 &&
			safe(C8) && safe(D8) {
			ml.Add(NewCastling(E8, C8))
		}
	}
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	var ml MoveList
	p.GenerateMoves(&ml)
	return ml.Len() > 0
}

// IsCheckmate returns true if the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate returns true if the side to move is stalemated.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}

// IsRepetition reports whether the current position already occurred on
// the undo stack. Frames older than the last irreversible move cannot
// match, so the walk stops at the fifty-move counter.
func (p *Position) IsRepetition() bool {
	st := p.info
	frame := st.prev
	for plies := 1; frame != nil && plies <= st.fiftyMove; plies++ {
		if frame.key == st.key {
			return true
		}
		frame = frame.prev
	}
	return false
}

// IsInsufficientMaterial returns true when neither side can ever deliver
// mate: bare kings, or king and one minor piece against a bare king.
func (p *Position) IsInsufficientMaterial() bool {
	if p.byType[Pawn]|p.byType[Rook]|p.byType[Queen] != 0 {
		return false
	}

	whiteMinors := ((p.byType[Knight] | p.byType[Bishop]) & p.byColor[White]).PopCount()
	blackMinors := ((p.byType[Knight] | p.byType[Bishop]) & p.byColor[Black]).PopCount()

	return whiteMinors+blackMinors == 0 ||
		(whiteMinors <= 1 && blackMinors == 0) ||
		(blackMinors <= 1 && whiteMinors == 0)
}

// IsDraw returns true for stalemate, the fifty-move rule or insufficient
// material. Repetition is left to the caller, which knows how many folds
// it cares about.
func (p *Position) IsDraw() bool {
	if p.info.fiftyMove >= 100 {
		return true
	}
	if p.IsInsufficientMaterial() {
		return true
	}
	return p.IsStalemate()
}
