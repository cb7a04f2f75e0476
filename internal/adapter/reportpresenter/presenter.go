package reportpresenter

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/park285/moveset-verifier/pkg/chessdto"
)

// Presenter writes status lines to w. It also serves as the scanner's progress observer.
type Presenter struct {
	w      io.Writer
	format *Formatter

	okStyle   lipgloss.Style
	failStyle lipgloss.Style
	infoStyle lipgloss.Style
}

// NewPresenter styles lines for w's terminal capabilities; noColor forces plain text.
func NewPresenter(w io.Writer, format *Formatter, noColor bool) *Presenter {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Presenter{
		w:         w,
		format:    format,
		okStyle:   r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		failStyle: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		infoStyle: r.NewStyle().Faint(true),
	}
}

func (p *Presenter) line(style lipgloss.Style, text string) {
	if p == nil || p.w == nil {
		return
	}
	fmt.Fprintln(p.w, style.Render(text))
}

// VerifyingFile announces a file when several are verified in one run.
func (p *Presenter) VerifyingFile(path string) {
	p.line(p.infoStyle, p.format.VerifyingFile(path))
}

// Verification prints the outcome of one file.
func (p *Presenter) Verification(res chessdto.VerificationResult) {
	style := p.okStyle
	if res.Failed() {
		style = p.failStyle
	}
	for _, l := range p.format.Verification(res) {
		p.line(style, l)
	}
}

func (p *Presenter) ScanStarted(dir string) {
	p.line(p.infoStyle, p.format.Searching(dir))
}

func (p *Presenter) FileFound(name string) {
	p.line(p.infoStyle, p.format.Found(name))
}

func (p *Presenter) FileVerified(_ string, res chessdto.VerificationResult) {
	p.Verification(res)
}

// ScanReport prints the closing line of a scan.
func (p *Presenter) ScanReport(report chessdto.ScanReport) {
	switch {
	case report.NotFound:
		dir := report.Dir
		if report.Err != nil {
			dir = report.Err.Path
		}
		p.line(p.failStyle, p.format.DirectoryNotFound(dir))
	case report.Failure != nil:
		p.line(p.failStyle, p.format.ScanFailed(report.Failed))
	default:
		p.line(p.okStyle, p.format.ScanDone(report))
	}
}

// Error prints a load failure.
func (p *Presenter) Error(err error) {
	if err == nil {
		return
	}
	p.line(p.failStyle, p.format.Unreadable(err))
}
