// Copyright 2025 The Pincode Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrorType classifies lookup failures.
type ErrorType int

const (
	// ErrorTypeUnknown unclassified failure.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeNetworkError the request never got an answer.
	ErrorTypeNetworkError
	// ErrorTypeTimeout the request or the connection timed out.
	ErrorTypeTimeout
	// ErrorTypeInvalidResponse the body is not the expected JSON document.
	ErrorTypeInvalidResponse
	// ErrorTypeRateLimit the service throttled us.
	ErrorTypeRateLimit
	// ErrorTypeForbidden the service refused the client, usually a usage policy block.
	ErrorTypeForbidden
	// ErrorTypeInvalidRequest the service rejected the query parameters.
	ErrorTypeInvalidRequest
	// ErrorTypeUnavailable the service or a gateway in front of it is down.
	ErrorTypeUnavailable
)

var errorTypeNames = map[ErrorType]string{
	ErrorTypeUnknown:         "unknown error",
	ErrorTypeNetworkError:    "network error",
	ErrorTypeTimeout:         "timeout",
	ErrorTypeInvalidResponse: "invalid response",
	ErrorTypeRateLimit:       "rate limit reached",
	ErrorTypeForbidden:       "access denied",
	ErrorTypeInvalidRequest:  "invalid request",
	ErrorTypeUnavailable:     "service unavailable",
}

func (t ErrorType) String() string {
	if name, ok := errorTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("ErrorType(%d)", int(t))
}

// LookupError is returned for any failed reverse lookup.
type LookupError struct {
	Type ErrorType
	Lat  string
	Lon  string

	// StatusCode of the response, zero if there was none.
	StatusCode int
	Err        error
}

func (e *LookupError) Error() string {
	msg := fmt.Sprintf("looking up %s,%s: %s", e.Lat, e.Lon, e.Type)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (HTTP %d)", e.StatusCode)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// IsLookupError reports whether err is, or wraps, a *LookupError.
func IsLookupError(err error) bool {
	var lookupErr *LookupError

	return errors.As(err, &lookupErr)
}

// IsTimeoutError reports whether the lookup failed because of a timeout.
func IsTimeoutError(err error) bool {
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Type == ErrorTypeTimeout
	}

	return classifyTransportError(err) == ErrorTypeTimeout
}

// IsRateLimitError reports whether the service throttled the lookup.
func IsRateLimitError(err error) bool {
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Type == ErrorTypeRateLimit
	}

	return false
}

// ClassifyHTTPStatus maps the status of a response whose body could not be
// decoded into an ErrorType.
func ClassifyHTTPStatus(statusCode int) ErrorType {
	switch statusCode {
	case http.StatusOK:
		return ErrorTypeInvalidResponse
	case http.StatusTooManyRequests:
		return ErrorTypeRateLimit
	case http.StatusForbidden, http.StatusUnauthorized:
		return ErrorTypeForbidden
	case http.StatusBadRequest, http.StatusNotFound:
		return ErrorTypeInvalidRequest
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return ErrorTypeUnavailable
	default:
		return ErrorTypeUnknown
	}
}

func classifyTransportError(err error) ErrorType {
	if err == nil {
		return ErrorTypeUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorTypeTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrorTypeTimeout
	}

	return ErrorTypeNetworkError
}
