package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTargetNodeID  = errors.New("target node id is required")
	ErrEmptySourceNodeID  = errors.New("source node id is required")
	ErrEmptyMessagePath   = errors.New("empty message path")
	ErrInvalidMessagePath = errors.New("message path must start with '/'")
	ErrPayloadTooLarge    = errors.New("message payload is too large")
)
