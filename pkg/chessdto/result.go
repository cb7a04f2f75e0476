package chessdto

// VerificationResult is the outcome of replaying one move sequence.
type VerificationResult struct {
	OK       bool
	Source   string
	Index    int
	Move     string
	Applied  int
	FinalFEN string
	Err      *IllegalMoveError
}

// Failed reports whether a move was rejected.
func (r VerificationResult) Failed() bool { return !r.OK }

// ScanReport summarises one directory scan.
type ScanReport struct {
	Dir      string
	Checked  []string
	Failed   string
	Failure  *VerificationResult
	NotFound bool
	Err      *DirectoryNotFoundError
}

// OK is true when the directory existed and no file failed.
func (r ScanReport) OK() bool {
	return !r.NotFound && r.Failure == nil
}
