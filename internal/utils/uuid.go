package utils

import "github.com/google/uuid"

// NewNodeID returns a fresh time-ordered identifier for a node that was not
// given one in its configuration.
func NewNodeID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
