package reportpresenter

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/park285/moveset-verifier/internal/msgcat"
	"github.com/park285/moveset-verifier/pkg/chessdto"
)

// Renderer is the subset of *msgcat.Catalog the formatter needs.
type Renderer interface {
	Render(key string, data any) (string, error)
}

var _ Renderer = (*msgcat.Catalog)(nil)

// Formatter turns results into status lines. Lines come from the catalog; a template
// that fails to render falls back to a built-in English line.
type Formatter struct {
	catalog Renderer
}

func NewFormatter(catalog Renderer) *Formatter {
	return &Formatter{catalog: catalog}
}

func (f *Formatter) render(key string, data map[string]any, fallback string) string {
	if f == nil || f.catalog == nil {
		return fallback
	}
	s, err := f.catalog.Render(key, data)
	if err != nil {
		return fallback
	}
	return s
}

func (f *Formatter) Searching(dir string) string {
	return f.render(msgcat.KeyScanSearching, map[string]any{"Dir": dir}, "Searching for files in: "+dir)
}

func (f *Formatter) Found(name string) string {
	return f.render(msgcat.KeyScanFound, map[string]any{"Name": name}, "Found file: "+name)
}

func (f *Formatter) VerifyingFile(path string) string {
	return f.render(msgcat.KeyVerifyFile, map[string]any{"Path": path}, "Verifying "+path)
}

// Verification returns the lines for one verification result, in print order.
func (f *Formatter) Verification(res chessdto.VerificationResult) []string {
	if !res.Failed() {
		return []string{f.render(msgcat.KeyVerifyOK, nil, "All moves in the sequence are legal!")}
	}
	return []string{
		f.render(msgcat.KeyVerifyIllegal,
			map[string]any{"Index": res.Index, "Move": res.Move},
			fmt.Sprintf("ERROR: Move %d ('%s') is illegal!", res.Index, res.Move)),
		f.render(msgcat.KeyVerifyFailed, nil, "Verification failed."),
	}
}

func (f *Formatter) ScanFailed(name string) string {
	return f.render(msgcat.KeyScanFailed, map[string]any{"Name": name}, "Illegal move detected!: "+name)
}

func (f *Formatter) DirectoryNotFound(dir string) string {
	return f.render(msgcat.KeyScanNotFound, map[string]any{"Dir": dir}, fmt.Sprintf("Error: Directory not found at '%s'", dir))
}

func (f *Formatter) ScanDone(report chessdto.ScanReport) string {
	n := len(report.Checked)
	return f.render(msgcat.KeyScanDone,
		map[string]any{"Count": n, "Dir": report.Dir},
		fmt.Sprintf("All %d file(s) in %s are legal.", n, report.Dir))
}

// Unreadable renders a file access failure. Any other error is rendered with its message.
func (f *Formatter) Unreadable(err error) string {
	path, reason := "", err.Error()
	var fae *chessdto.FileAccessError
	if errors.As(err, &fae) {
		path = fae.Path
		if fae.Err != nil {
			reason = fae.Err.Error()
			var pe *fs.PathError
			if errors.As(fae.Err, &pe) {
				reason = pe.Err.Error()
			}
		}
	}
	return f.render(msgcat.KeyUnreadable,
		map[string]any{"Path": path, "Reason": reason},
		fmt.Sprintf("Error: cannot read '%s': %s", path, reason))
}
