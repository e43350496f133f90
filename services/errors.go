package services

// UpstreamError reports a failure of the external completion service: network
// errors, rejected credentials, rate limiting, or a malformed service envelope.
// The original error is preserved for logging; it is never retried here.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "completion service error: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports completion text that could not be decoded
// as the expected JSON object.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return "malformed evaluation response: " + e.Err.Error()
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// IncompleteResponseError reports a decoded evaluation that is missing one of
// the required fields. Field names the first missing field in check order.
type IncompleteResponseError struct {
	Field string
}

func (e *IncompleteResponseError) Error() string {
	return "missing required field: " + e.Field
}
