package verifier

import (
	"github.com/park285/moveset-verifier/internal/moveset"
	"github.com/park285/moveset-verifier/internal/obslog"
	"github.com/park285/moveset-verifier/internal/rules"
	"github.com/park285/moveset-verifier/pkg/chessdto"
	"go.uber.org/zap"
)

// Verifier replays move sequences against a rules engine.
type Verifier struct {
	engine rules.Engine
	logger *zap.Logger
}

func New(engine rules.Engine, logger *zap.Logger) *Verifier {
	if logger == nil {
		logger = obslog.L()
	}
	return &Verifier{engine: engine, logger: logger}
}

// Verify applies seq to a fresh board and stops at the first rejected move.
// An empty sequence verifies.
func (v *Verifier) Verify(seq moveset.Sequence) chessdto.VerificationResult {
	res := chessdto.VerificationResult{Source: seq.Source}
	board := v.engine.NewBoard()

	v.logger.Debug("verify_start",
		zap.String("source", seq.Source),
		zap.String("engine", v.engine.Name()),
		zap.Int("moves", seq.Len()),
	)

	for i, mv := range seq.Moves {
		if err := board.Apply(mv); err != nil {
			res.Index = i + 1
			res.Move = mv
			res.Err = chessdto.NewIllegalMoveError(res.Index, mv, err)
			res.FinalFEN = board.FEN()
			v.logger.Info("verify_illegal_move",
				zap.String("source", seq.Source),
				zap.Int("index", res.Index),
				zap.String("move", mv),
				zap.Error(err),
			)
			return res
		}
		res.Applied++
	}

	res.OK = true
	res.FinalFEN = board.FEN()
	v.logger.Debug("verify_ok",
		zap.String("source", seq.Source),
		zap.Int("applied", res.Applied),
		zap.String("fen", res.FinalFEN),
	)
	return res
}

// VerifyFile loads path and verifies it. Only load failures are returned as errors;
// an illegal move is reported through the result.
func (v *Verifier) VerifyFile(path string) (chessdto.VerificationResult, error) {
	seq, err := moveset.Load(path)
	if err != nil {
		v.logger.Warn("verify_load_error", zap.String("source", path), zap.Error(err))
		return chessdto.VerificationResult{Source: path}, err
	}
	return v.Verify(seq), nil
}
