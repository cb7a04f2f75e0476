// Package scanner verifies every regular file directly inside a directory.
package scanner

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/park285/moveset-verifier/internal/obslog"
	"github.com/park285/moveset-verifier/pkg/chessdto"
	"go.uber.org/zap"
)

// FileVerifier is satisfied by *verifier.Verifier.
type FileVerifier interface {
	VerifyFile(path string) (chessdto.VerificationResult, error)
}

// Observer is told about progress while a scan runs.
type Observer interface {
	ScanStarted(dir string)
	FileFound(name string)
	FileVerified(name string, res chessdto.VerificationResult)
}

type Option func(*Scanner)

func WithObserver(o Observer) Option {
	return func(s *Scanner) { s.observer = o }
}

type Scanner struct {
	verifier FileVerifier
	logger   *zap.Logger
	observer Observer
}

func New(v FileVerifier, logger *zap.Logger, opts ...Option) *Scanner {
	if logger == nil {
		logger = obslog.L()
	}
	s := &Scanner{verifier: v, logger: logger, observer: nopObserver{}}
	for _, opt := range opts {
		opt(s)
	}
	if s.observer == nil {
		s.observer = nopObserver{}
	}
	return s
}

// Scan verifies the regular files in dir in name order and stops at the first failing one.
// A missing directory, or a path that is not one, is reported in the returned ScanReport.
// A directory or file that exists but cannot be read aborts the scan with a *chessdto.FileAccessError.
func (s *Scanner) Scan(dir string) (chessdto.ScanReport, error) {
	report := chessdto.ScanReport{Dir: dir}
	if abs, err := filepath.Abs(dir); err == nil {
		report.Dir = abs
	}

	s.observer.ScanStarted(report.Dir)

	entries, err := readDir(dir)
	switch {
	case err == nil:
	case isNotFound(err):
		report.NotFound = true
		report.Err = chessdto.NewDirectoryNotFoundError(dir, err)
		s.logger.Warn("scan_dir_not_found", zap.String("dir", dir), zap.Error(err))
		return report, nil
	default:
		s.logger.Error("scan_dir_unreadable", zap.String("dir", dir), zap.Error(err))
		return report, chessdto.NewFileAccessError(dir, err)
	}

	s.logger.Debug("scan_start", zap.String("dir", report.Dir), zap.Int("entries", len(entries)))

	for _, e := range entries {
		full := filepath.Join(dir, e.Name())
		if !isRegular(full, e) {
			s.logger.Debug("scan_skip", zap.String("name", e.Name()), zap.String("mode", e.Type().String()))
			continue
		}

		s.observer.FileFound(e.Name())
		res, err := s.verifier.VerifyFile(full)
		if err != nil {
			s.logger.Error("scan_file_error", zap.String("file", full), zap.Error(err))
			return report, err
		}
		report.Checked = append(report.Checked, e.Name())
		s.observer.FileVerified(e.Name(), res)

		if res.Failed() {
			report.Failed = e.Name()
			report.Failure = &res
			s.logger.Info("scan_failed",
				zap.String("dir", report.Dir),
				zap.String("file", e.Name()),
				zap.Int("index", res.Index),
				zap.String("move", res.Move),
			)
			return report, nil
		}
	}

	s.logger.Info("scan_ok", zap.String("dir", report.Dir), zap.Int("files", len(report.Checked)))
	return report, nil
}

var errNotDir = errors.New("not a directory")

// isNotFound is true for a missing path or one that is not a directory.
// Other failures, such as permission errors, are not.
func isNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, errNotDir) || errors.Is(err, syscall.ENOTDIR)
}

func readDir(dir string) ([]fs.DirEntry, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, &fs.PathError{Op: "scan", Path: dir, Err: errNotDir}
	}
	return os.ReadDir(dir)
}

// isRegular follows symlinks so a link to a regular file is verified and a link to a directory is skipped.
func isRegular(path string, e fs.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

type nopObserver struct{}

func (nopObserver) ScanStarted(string) {}

func (nopObserver) FileFound(string) {}

func (nopObserver) FileVerified(string, chessdto.VerificationResult) {}
