package middleware

import "errors"

// ErrInvalidMaxNumRequests signals that a provided number of requests is invalid
var ErrInvalidMaxNumRequests = errors.New("max number of requests value is invalid")

// ErrTooManyRequests signals that too many requests were simultaneously received
var ErrTooManyRequests = errors.New("too many requests")

// ErrInvalidMaxBodySize signals that a provided maximum request body size is invalid
var ErrInvalidMaxBodySize = errors.New("max request body size value is invalid")

// ErrRequestBodyTooLarge signals a request body above the configured size
var ErrRequestBodyTooLarge = errors.New("request body too large")
