package llm

import "errors"

var (
	// ErrUnavailable indicates the model server is unreachable.
	ErrUnavailable = errors.New("llm server unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrAuthFailure indicates the model server rejected our credentials.
	ErrAuthFailure = errors.New("llm authentication failed")

	// ErrQuotaExceeded indicates the model server refused the request for
	// rate or quota reasons.
	ErrQuotaExceeded = errors.New("llm quota exceeded")

	// ErrInvalidOutput indicates the model response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
