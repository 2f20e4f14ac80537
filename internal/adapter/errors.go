package adapter

import "errors"

// Sentinel errors returned by transport implementations.
var (
	// ErrNodeNotFound means the target node is not reachable right now.
	ErrNodeNotFound = errors.New("target node not found")

	// ErrTransportClosed means the transport was closed before the operation.
	ErrTransportClosed = errors.New("transport closed")

	// ErrInboxFull means the target node did not accept the message because
	// its inbound queue is full. The message is dropped.
	ErrInboxFull = errors.New("target node inbox full")

	// ErrUnauthorized means the companion rejected the node token.
	ErrUnauthorized = errors.New("node unauthorized")

	// ErrBadRequest means the companion rejected the request as malformed
	// (including a failed integrity check).
	ErrBadRequest = errors.New("bad request")

	// ErrInternal means the companion failed to process the request.
	ErrInternal = errors.New("companion internal error")
)
