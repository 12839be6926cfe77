package config

import "encoding/json"

// CLI-level error codes, assigned before a diag.Buffer exists (bad
// flags, unreadable source paths) — distinct from compiler
// diagnostic codes (ES-*/ET-*/IS-* in internal/verifier), which
// require a parsed AST to attach to.
const (
	ErrInvalidFlag   = "ERR_INVALID_FLAG"
	ErrMissingInput  = "ERR_MISSING_INPUT"
	ErrUnreadableSrc = "ERR_UNREADABLE_SOURCE"
	ErrWriteFailed   = "ERR_WRITE_FAILED"
	ErrLinkFailed    = "ERR_LINK_FAILED"
	ErrUnknown       = "ERR_UNKNOWN"
)

// CLIError is a uniform error payload for both human- and
// JSON-formatted CLI output, ported from the teacher's
// internal/core.CLIError.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e CLIError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// JSON renders e as a JSON payload, ported from the teacher's
// CLIError.JSON.
func (e CLIError) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// Wrap builds a CLIError carrying code/msg with inner's message
// attached as Detail, ported from the teacher's core.Wrap.
func Wrap(code, msg string, inner error) error {
	return CLIError{Code: code, Message: msg, Detail: inner.Error()}
}
