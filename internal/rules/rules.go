// Package rules binds move legality to github.com/corentings/chess/v2.
//
// Nothing here knows chess rules. A Board is a fresh game at the standard starting
// position; Apply hands one move string to the engine, which validates and advances it.
package rules

import (
	"errors"
	"fmt"
	"strings"

	nchess "github.com/corentings/chess/v2"
)

var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrUnknownNotation = errors.New("unknown notation")
)

// Notation selects how move strings are decoded.
type Notation string

const (
	NotationSAN Notation = "san"
	NotationUCI Notation = "uci"
	NotationLAN Notation = "lan"
)

// ParseNotation maps a user supplied name to a Notation. Empty means SAN.
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "san", "algebraic":
		return NotationSAN, nil
	case "uci":
		return NotationUCI, nil
	case "lan", "long":
		return NotationLAN, nil
	default:
		return "", fmt.Errorf("%w: %q (want san, uci or lan)", ErrUnknownNotation, s)
	}
}

// Engine creates boards.
type Engine interface {
	NewBoard() Board
	// Name identifies the engine and notation in logs.
	Name() string
}

// Board is one game in progress. It must not be shared between verifications.
type Board interface {
	// Apply validates move against the current position and advances it.
	// Any rejection, malformed or illegal, wraps ErrIllegalMove.
	Apply(move string) error
	FEN() string
}

type chessEngine struct {
	notation Notation
	decoder  nchess.Notation
}

// NewChessEngine returns an Engine backed by corentings/chess.
func NewChessEngine(notation Notation) (Engine, error) {
	dec, err := decoderFor(notation)
	if err != nil {
		return nil, err
	}
	if notation == "" {
		notation = NotationSAN
	}
	return &chessEngine{notation: notation, decoder: dec}, nil
}

func decoderFor(n Notation) (nchess.Notation, error) {
	switch n {
	case "", NotationSAN:
		return nchess.AlgebraicNotation{}, nil
	case NotationUCI:
		return nchess.UCINotation{}, nil
	case NotationLAN:
		return nchess.LongAlgebraicNotation{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNotation, string(n))
	}
}

func (e *chessEngine) NewBoard() Board {
	return &chessBoard{game: nchess.NewGame(), decoder: e.decoder}
}

func (e *chessEngine) Name() string { return "corentings/chess (" + string(e.notation) + ")" }

type chessBoard struct {
	game    *nchess.Game
	decoder nchess.Notation
}

func (b *chessBoard) Apply(move string) error {
	if err := b.game.PushNotationMove(move, b.decoder, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	return nil
}

func (b *chessBoard) FEN() string { return b.game.FEN() }
