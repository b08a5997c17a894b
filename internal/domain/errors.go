package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every InputError
	ErrInvalidInput = errors.New("invalid product URL")

	// ErrUpstream is matched by every LookupError from the catalog API
	ErrUpstream = errors.New("catalog API request failed")

	// ErrScrape is matched by every FetchError from the tracker page
	ErrScrape = errors.New("tracker page request failed")
)

// InputReason says why a product URL was rejected
type InputReason string

const (
	InputEmpty       InputReason = "empty"
	InputUnparseable InputReason = "unparseable"
	InputUnsupported InputReason = "unsupported_domain"
	InputNoID        InputReason = "no_identifier"
)

// InputError is a rejected product URL. Message is shown to the user verbatim.
type InputError struct {
	Reason  InputReason
	Message string
}

func (e *InputError) Error() string { return e.Message }

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

// FaultReason says why an outbound call failed
type FaultReason string

const (
	FaultTimeout         FaultReason = "timeout"
	FaultTransport       FaultReason = "transport"
	FaultBadStatus       FaultReason = "bad_status"
	FaultMalformedBody   FaultReason = "malformed_body"
	FaultUnexpectedShape FaultReason = "unexpected_shape"
)

// Unreachable reports whether the fault means the service could not be reached at all
func (r FaultReason) Unreachable() bool {
	return r == FaultTimeout || r == FaultTransport
}

// LookupError is a failed catalog API lookup
type LookupError struct {
	Reason     FaultReason
	StatusCode int
	Err        error
}

func (e *LookupError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("catalog lookup %s (status %d): %v", e.Reason, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("catalog lookup %s: %v", e.Reason, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

func (e *LookupError) Is(target error) bool { return target == ErrUpstream }

// FetchError is a failed tracker page download
type FetchError struct {
	Reason     FaultReason
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("tracker fetch %s (status %d): %v", e.Reason, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("tracker fetch %s: %v", e.Reason, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrScrape }
