package derpi

import "fmt"

// TransportError reports a request that never produced an HTTP response:
// DNS failure, refused connection, timeout at the underlying transport.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UnexpectedStatusError reports a response status outside the accepted set
// (200 OK and 301 Moved Permanently; the API issues 301s for canonicalized
// slugs).
type UnexpectedStatusError struct {
	URL        string
	StatusCode int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.URL, e.StatusCode)
}

// DecodeError reports a response body that could not be decoded into the
// expected shape.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ResolutionExhaustedError reports that the id-to-slug probe ran out of
// attempts without the API returning an entity with the requested id. It
// indicates upstream data inconsistency rather than a client bug.
type ResolutionExhaustedError struct {
	Kind     string
	ID       int
	Attempts int
}

func (e *ResolutionExhaustedError) Error() string {
	return fmt.Sprintf("no %s slug found for id %d after %d attempts", e.Kind, e.ID, e.Attempts)
}

// InvalidArgumentError reports an invalid parameter combination. It is
// returned before any network traffic happens.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Reason
}
