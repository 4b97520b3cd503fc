package provider

import "errors"

// Failure causes of a rate fetch. The rate service absorbs all of them
// through its fallback chain; they surface only in logs and metrics.
var (
	ErrNetworkFailure   = errors.New("network failure")
	ErrBadStatus        = errors.New("unexpected response status")
	ErrBadContentType   = errors.New("unexpected content type")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrMissingField     = errors.New("missing field")
)
