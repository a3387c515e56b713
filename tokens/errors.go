package tokens

import "errors"

// ErrEmptyApiURL signals an empty tokens API URL
var ErrEmptyApiURL = errors.New("empty tokens API URL")

// ErrInvalidCacheSize signals an invalid decimals cache size
var ErrInvalidCacheSize = errors.New("invalid cache size")

// ErrInvalidTTL signals an invalid decimals cache time to live
var ErrInvalidTTL = errors.New("invalid cache TTL")

// ErrInvalidRequestTimeout signals an invalid request timeout
var ErrInvalidRequestTimeout = errors.New("invalid request timeout")

// ErrNilMarshaller signals that a nil marshaller was provided
var ErrNilMarshaller = errors.New("nil marshaller")

// ErrEmptyTokenIdentifier signals an empty token identifier
var ErrEmptyTokenIdentifier = errors.New("empty token identifier")

// ErrTokenNotFound signals that the API does not know the token
var ErrTokenNotFound = errors.New("token not found")

// ErrTokenRequest signals that the tokens API answered with an error
var ErrTokenRequest = errors.New("token request failed")
