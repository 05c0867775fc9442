package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a fresh Position with its own root
// info frame.
func ParseFEN(fen string) (*Position, error) {
	p := &Position{}
	if err := p.Set(fen, &PosInfo{}); err != nil {
		return nil, err
	}
	return p, nil
}

// Set resets the position from a FEN string, rooting the undo stack at the
// given frame. Parsing is permissive where the field is recoverable:
// unknown castling letters are skipped, castling rights without the king
// and rook on their home squares are dropped, and an unparsable or
// inconsistent en passant field means no en passant.
func (p *Position) Set(fen string, info *PosInfo) error {
	*p = Position{}
	*info = PosInfo{epSquare: NoSquare}
	p.info = info

	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(fields))
	}

	if err := p.parsePlacement(fields[0]); err != nil {
		return err
	}
	if p.PieceMask(King, White).PopCount() != 1 || p.PieceMask(King, Black).PopCount() != 1 {
		return fmt.Errorf("invalid FEN: each side needs exactly one king")
	}
	if p.byType[Pawn]&(Rank1|Rank8) != 0 {
		return fmt.Errorf("invalid FEN: pawn on a back rank")
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return fmt.Errorf("invalid side to move: %s", fields[1])
	}

	p.parseCastling(fields[2])
	p.parseEnPassant(fields[3])

	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil && n >= 0 {
			info.fiftyMove = n
		}
	}

	fullMove := 1
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil && n > 0 {
			fullMove = n
		}
	}
	p.ply = 2 * (fullMove - 1)
	if p.sideToMove == Black {
		p.ply++
	}

	p.updateCheckInfo()
	info.key = p.ComputeKey()
	return nil
}

func (p *Position) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
			} else {
				piece := PieceFromChar(byte(c))
				if piece == Empty {
					return fmt.Errorf("invalid piece character: %c", c)
				}
				p.placePiece(piece, NewSquare(file, rank))
				file++
			}
		}

		if file != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}
	return nil
}

// parseCastling grants each declared right only when the king and the
// relevant rook still stand on their home squares, and records the
// per-square masks that invalidate the right when either square is touched.
func (p *Position) parseCastling(castling string) {
	for _, c := range castling {
		var right CastlingRights
		var kingSq, rookSq Square
		var king, rook Piece

		switch c {
		case 'K':
			right, kingSq, rookSq, king, rook = WhiteKingSideCastle, E1, H1, WhiteKing, WhiteRook
		case 'Q':
			right, kingSq, rookSq, king, rook = WhiteQueenSideCastle, E1, A1, WhiteKing, WhiteRook
		case 'k':
			right, kingSq, rookSq, king, rook = BlackKingSideCastle, E8, H8, BlackKing, BlackRook
		case 'q':
			right, kingSq, rookSq, king, rook = BlackQueenSideCastle, E8, A8, BlackKing, BlackRook
		default:
			continue
		}

		if p.pieceOn[kingSq] != king || p.pieceOn[rookSq] != rook {
			continue
		}

		p.info.castlingRights |= right
		p.castlingMask[kingSq] |= right
		p.castlingMask[rookSq] |= right
	}
}

// parseEnPassant accepts the target square only when it sits on the rank a
// double push would have just crossed and a pawn of the side to move is
// placed to capture it, mirroring what make records.
func (p *Position) parseEnPassant(field string) {
	if field == "-" {
		return
	}
	sq, err := ParseSquare(field)
	if err != nil {
		return
	}

	us := p.sideToMove
	them := us.Other()
	if sq.RelativeRank(us) != 5 {
		return
	}
	if pawnAttackTable[them][sq]&p.PieceMask(Pawn, us) == 0 {
		return
	}
	p.info.epSquare = sq
}

// ToFEN returns the FEN representation of the position.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.pieceOn[NewSquare(file, rank)]
			if piece == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.info.castlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(p.info.epSquare.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.info.fiftyMove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMove()))

	return sb.String()
}
