package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCacheMiss is returned by cache tiers when a key is absent or expired.
	ErrCacheMiss = errors.New("cache miss")

	// ErrRemote matches every *RemoteError via errors.Is.
	ErrRemote = errors.New("remote content fetch failed")

	ErrUnknownKey = errors.New("unknown content key")

	ErrInvalidCredentials = errors.New("invalid credentials")
)

type RemoteErrorKind string

const (
	// KindNetwork is a transport failure before any response arrived.
	KindNetwork RemoteErrorKind = "network"
	// KindStatus is a non-2xx HTTP status.
	KindStatus RemoteErrorKind = "status"
	// KindProtocol is a malformed body or an explicit success:false.
	KindProtocol RemoteErrorKind = "protocol"
)

// RemoteError is a recoverable failure to fetch content from the remote
// endpoint. Message holds the endpoint's own error text when it sent one.
type RemoteError struct {
	Key        ContentKey
	Kind       RemoteErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("fetch %s (%s): %s", e.Key, e.Kind, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}
