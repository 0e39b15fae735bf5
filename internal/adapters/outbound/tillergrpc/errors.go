package tillergrpc

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrEmptyEndpoint    = errors.New("empty endpoint")
	ErrConnShutdown     = errors.New("connection shut down")
	ErrTransientFailure = errors.New("connection in transient failure")
	ErrEmptyRelease     = errors.New("response carries no release")
)

// RemoteError is a failed call carrying the release service's gRPC status.
type RemoteError struct {
	method string
	status *status.Status
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.method, e.status.Code(), e.status.Message())
}

func (e *RemoteError) Unwrap() error {
	return e.status.Err()
}

// Code returns the gRPC status code.
func (e *RemoteError) Code() codes.Code {
	return e.status.Code()
}

// RemoteDescription returns the most specific human-readable description:
// a localized message detail, then error info reason, then the status message.
func (e *RemoteError) RemoteDescription() string {
	var reason string

	for _, detail := range e.status.Details() {
		switch d := detail.(type) {
		case *errdetails.LocalizedMessage:
			if d.GetMessage() != "" {
				return d.GetMessage()
			}
		case *errdetails.ErrorInfo:
			if reason == "" {
				reason = d.GetReason()
			}
		}
	}

	if reason != "" {
		return reason
	}

	return e.status.Message()
}

// NotFoundError marks a release the service does not know.
type NotFoundError struct {
	*RemoteError
}

func (e *NotFoundError) IsNotFound() {}

func toRemoteError(method string, err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%s: %w", method, err)
	}

	remote := &RemoteError{method: method, status: st}
	if isNotFoundStatus(st) {
		return &NotFoundError{RemoteError: remote}
	}

	return remote
}

// isNotFoundStatus also accepts the release storage's Unknown-coded
// "release: <name> not found" errors.
func isNotFoundStatus(st *status.Status) bool {
	switch st.Code() {
	case codes.NotFound:
		return true
	case codes.Unknown:
		msg := st.Message()

		return strings.HasPrefix(msg, "release: ") && strings.HasSuffix(msg, "not found")
	default:
		return false
	}
}

// isCursorLost reports Tiller's answer to a listing offset naming a release
// that no longer exists.
func isCursorLost(err error) bool {
	var remote *RemoteError
	if !errors.As(err, &remote) || remote.Code() != codes.Unknown {
		return false
	}

	msg := remote.status.Message()

	return strings.HasPrefix(msg, "offset ") && strings.HasSuffix(msg, " not found")
}
