package service

import "github.com/apell0/managerspelet/internal/core"

// ErrorInfo is the structured error body a failed Result carries (spec §7:
// `{ok:false, error:{code, message}}`).
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result is the small result object every service operation returns (spec
// §4.7 step 4): an ok flag, optional data payload, optional error.
type Result struct {
	OK    bool      `json:"ok"`
	Data  any       `json:"data,omitempty"`
	Error *ErrorInfo `json:"error,omitempty"`
}

// Ok builds a successful result carrying data.
func Ok(data any) Result {
	return Result{OK: true, Data: data}
}

// Fail builds a failed result from err, using core.Code to resolve the
// stable error code (UNEXPECTED_ERROR for anything not in the domain
// taxonomy).
func Fail(err error) Result {
	return Result{
		OK: false,
		Error: &ErrorInfo{
			Code:    core.Code(err),
			Message: err.Error(),
		},
	}
}
