// Package moveset reads move files: one move per line, blank lines ignored.
package moveset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/park285/moveset-verifier/pkg/chessdto"
)

const maxLineBytes = 1 << 20

// Sequence is one file's worth of moves in file order.
type Sequence struct {
	Source string
	Moves  []string
}

func (s Sequence) Len() int { return len(s.Moves) }

// FromMoves builds an in-memory sequence. Blank entries are dropped the same way Parse drops blank lines.
func FromMoves(moves ...string) Sequence {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		if v := strings.TrimSpace(m); v != "" {
			out = append(out, v)
		}
	}
	return Sequence{Moves: out}
}

// Load reads path into a Sequence. Open and read failures come back as *chessdto.FileAccessError.
func Load(path string) (Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sequence{}, chessdto.NewFileAccessError(path, err)
	}
	defer f.Close()

	seq, err := Parse(f)
	if err != nil {
		return Sequence{}, chessdto.NewFileAccessError(path, err)
	}
	seq.Source = path
	return seq, nil
}

// Parse splits r into trimmed, non-empty lines.
func Parse(r io.Reader) (Sequence, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var moves []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		moves = append(moves, line)
	}
	if err := sc.Err(); err != nil {
		return Sequence{}, fmt.Errorf("scan moves: %w", err)
	}
	return Sequence{Moves: moves}, nil
}
