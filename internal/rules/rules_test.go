package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestParseNotation(t *testing.T) {
	tests := []struct {
		in      string
		want    Notation
		wantErr bool
	}{
		{in: "", want: NotationSAN},
		{in: "SAN", want: NotationSAN},
		{in: " uci ", want: NotationUCI},
		{in: "lan", want: NotationLAN},
		{in: "pgn", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNotation(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownNotation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewChessEngine_UnknownNotation(t *testing.T) {
	_, err := NewChessEngine(Notation("fen"))
	require.ErrorIs(t, err, ErrUnknownNotation)
}

func TestChessEngine_Name(t *testing.T) {
	eng, err := NewChessEngine(NotationUCI)
	require.NoError(t, err)
	assert.Equal(t, "corentings/chess (uci)", eng.Name())

	eng, err = NewChessEngine("")
	require.NoError(t, err)
	assert.Equal(t, "corentings/chess (san)", eng.Name())
}

func TestBoard_StartsFromStandardPosition(t *testing.T) {
	eng, err := NewChessEngine(NotationSAN)
	require.NoError(t, err)
	assert.Equal(t, startFEN, eng.NewBoard().FEN())
}

func TestBoard_ApplySAN(t *testing.T) {
	tests := []struct {
		name    string
		setup   []string
		move    string
		wantErr bool
	}{
		{name: "pawn push", move: "e4"},
		{name: "knight", setup: []string{"e4", "e5"}, move: "Nf3"},
		{name: "castle", setup: []string{"e4", "e5", "Nf3", "Nc6", "Bc4", "Bc5"}, move: "O-O"},
		{name: "capture with check marker", setup: []string{"e4", "e5", "Qh5", "Nc6", "Bc4", "Nf6"}, move: "Qxf7#"},
		{name: "black cannot move first", move: "e5", wantErr: true},
		{name: "queen blocked at start", move: "Qh5", wantErr: true},
		{name: "off-board square", move: "e9", wantErr: true},
		{name: "garbage", move: "hello", wantErr: true},
	}
	eng, err := NewChessEngine(NotationSAN)
	require.NoError(t, err)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := eng.NewBoard()
			for _, m := range tt.setup {
				require.NoError(t, b.Apply(m), "setup move %s", m)
			}
			err := b.Apply(tt.move)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrIllegalMove))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBoard_RejectedMoveLeavesPosition(t *testing.T) {
	eng, err := NewChessEngine(NotationSAN)
	require.NoError(t, err)
	b := eng.NewBoard()
	require.Error(t, b.Apply("e5"))
	assert.Equal(t, startFEN, b.FEN())
}

func TestBoard_ApplyUCI(t *testing.T) {
	eng, err := NewChessEngine(NotationUCI)
	require.NoError(t, err)
	b := eng.NewBoard()
	require.NoError(t, b.Apply("e2e4"))
	require.NoError(t, b.Apply("e7e5"))
	require.ErrorIs(t, b.Apply("e2e5"), ErrIllegalMove)
}

func TestBoards_AreIndependent(t *testing.T) {
	eng, err := NewChessEngine(NotationSAN)
	require.NoError(t, err)
	a := eng.NewBoard()
	require.NoError(t, a.Apply("e4"))

	b := eng.NewBoard()
	assert.Equal(t, startFEN, b.FEN())
	require.NoError(t, b.Apply("d4"))
}

func TestBoard_SANEdgeInputs(t *testing.T) {
	castleReady := []string{"e4", "e5", "Nf3", "Nc6", "Bc4", "Bc5"}
	tests := []struct {
		name    string
		setup   []string
		move    string
		wantErr bool
	}{
		{name: "castling with letter O", setup: castleReady, move: "O-O"},
		{name: "castling with digit zero", setup: castleReady, move: "0-0", wantErr: true},
		{name: "coordinate form", move: "e2e4"},
		{name: "annotation suffix", move: "e4!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, err := NewChessEngine(NotationSAN)
			require.NoError(t, err)
			b := eng.NewBoard()
			for _, m := range tt.setup {
				require.NoError(t, b.Apply(m), m)
			}
			err = b.Apply(tt.move)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrIllegalMove)
				return
			}
			require.NoError(t, err)
		})
	}
}
