package chessdto

import "fmt"

const (
	CodeIllegalMove       = "illegal_move"
	CodeFileAccess        = "file_access"
	CodeDirectoryNotFound = "directory_not_found"
)

// DomainError carries a stable machine-readable Code next to the human message.
type DomainError struct {
	Code    string
	Message string
}

func (e DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return "moveset verifier error"
}

// IllegalMoveError reports the first move the rules engine rejected.
// Malformed notation ends up here too.
type IllegalMoveError struct {
	DomainError
	Index int // 1-based
	Move  string
	Err   error
}

func NewIllegalMoveError(index int, move string, cause error) *IllegalMoveError {
	return &IllegalMoveError{
		DomainError: DomainError{
			Code:    CodeIllegalMove,
			Message: fmt.Sprintf("move %d (%q) is illegal", index, move),
		},
		Index: index,
		Move:  move,
		Err:   cause,
	}
}

func (e *IllegalMoveError) Error() string {
	if e.Err == nil {
		return e.DomainError.Error()
	}
	return e.DomainError.Error() + ": " + e.Err.Error()
}

func (e *IllegalMoveError) Unwrap() error { return e.Err }

// FileAccessError is returned when a move file cannot be opened or read.
type FileAccessError struct {
	DomainError
	Path string
	Err  error
}

func NewFileAccessError(path string, cause error) *FileAccessError {
	return &FileAccessError{
		DomainError: DomainError{
			Code:    CodeFileAccess,
			Message: fmt.Sprintf("cannot read %q", path),
		},
		Path: path,
		Err:  cause,
	}
}

func (e *FileAccessError) Error() string {
	if e.Err == nil {
		return e.DomainError.Error()
	}
	return e.DomainError.Error() + ": " + e.Err.Error()
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// DirectoryNotFoundError is reported by the scanner; it never aborts the process.
type DirectoryNotFoundError struct {
	DomainError
	Path string
	Err  error
}

func NewDirectoryNotFoundError(path string, cause error) *DirectoryNotFoundError {
	return &DirectoryNotFoundError{
		DomainError: DomainError{
			Code:    CodeDirectoryNotFound,
			Message: fmt.Sprintf("directory not found at %q", path),
		},
		Path: path,
		Err:  cause,
	}
}

func (e *DirectoryNotFoundError) Error() string {
	if e.Err == nil {
		return e.DomainError.Error()
	}
	return e.DomainError.Error() + ": " + e.Err.Error()
}

func (e *DirectoryNotFoundError) Unwrap() error { return e.Err }
