package errors

import (
	stderrors "errors"
	"fmt"
)

const (
	CodeFileTooLarge    = "file_too_large"
	CodeMissingFile     = "missing_file"
	CodeUnauthorized    = "unauthorized"
	CodeNotFound        = "not_found"
	CodeUpstream        = "upstream_failed"
	CodeInvalidResponse = "invalid_response"
	CodeTmpFile         = "tmp_file_error"
	CodeInternal        = "internal_error"
	CodeSessionClosed   = "session_closed"
	CodeConnect         = "connect_failed"
)

type RelayError struct {
	Code    string
	Message string
	Err     error
}

func (e *RelayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *RelayError) Unwrap() error { return e.Err }

// Is matches any RelayError carrying the same code.
func (e *RelayError) Is(target error) bool {
	t, ok := target.(*RelayError)
	return ok && t.Code == e.Code
}

var (
	ErrFileTooLarge = func(size, limit int64) *RelayError {
		return &RelayError{
			Code:    CodeFileTooLarge,
			Message: fmt.Sprintf("file size %d exceeds the %d byte limit", size, limit),
		}
	}
	ErrMissingFile = func(err error) *RelayError {
		return &RelayError{Code: CodeMissingFile, Message: "No file uploaded", Err: err}
	}
	ErrUnauthorized = func() *RelayError {
		return &RelayError{Code: CodeUnauthorized, Message: "Invalid or missing API key"}
	}
	ErrNotFound = func(id string) *RelayError {
		return &RelayError{Code: CodeNotFound, Message: fmt.Sprintf("File not found: %s", id)}
	}
	// ErrUpstream keeps the upstream status text and body verbatim.
	ErrUpstream = func(status, body string) *RelayError {
		return &RelayError{Code: CodeUpstream, Message: fmt.Sprintf("Upload failed: %s - %s", status, body)}
	}
	ErrUpstreamRejected = func(host, message string) *RelayError {
		if message == "" {
			message = "Upload failed"
		}
		return &RelayError{Code: CodeUpstream, Message: fmt.Sprintf("%s: %s", host, message)}
	}
	ErrUpstreamTransport = func(host string, err error) *RelayError {
		return &RelayError{Code: CodeUpstream, Message: fmt.Sprintf("request to %s failed", host), Err: err}
	}
	ErrInvalidResponse = func(host string, err error) *RelayError {
		return &RelayError{Code: CodeInvalidResponse, Message: fmt.Sprintf("Invalid response from %s", host), Err: err}
	}
	ErrTmpFile = func(err error) *RelayError {
		return &RelayError{Code: CodeTmpFile, Message: "temporary file error", Err: err}
	}
	ErrInternal = func(err error) *RelayError {
		return &RelayError{Code: CodeInternal, Message: "internal server error", Err: err}
	}
	ErrSessionClosed = func() *RelayError {
		return &RelayError{Code: CodeSessionClosed, Message: "drive session is closed"}
	}
	ErrConnect = func(backend string, err error) *RelayError {
		return &RelayError{Code: CodeConnect, Message: fmt.Sprintf("could not connect to %s", backend), Err: err}
	}
)

// HasCode reports whether err is a RelayError with the given code.
func HasCode(err error, code string) bool {
	var re *RelayError
	return stderrors.As(err, &re) && re.Code == code
}

// Message returns the client-facing text of err.
func Message(err error) string {
	var re *RelayError
	if stderrors.As(err, &re) {
		if re.Err != nil && re.Code != CodeInternal {
			return fmt.Sprintf("%s: %v", re.Message, re.Err)
		}
		return re.Message
	}
	return err.Error()
}
