package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/watchface-sync/models"
)

const (
	FieldTargetNodeID = "target_node_id"
	FieldSourceNodeID = "source_node_id"
	FieldPath         = "path"
	FieldData         = "data"
)

// MaxPayloadBytes bounds Message.Data. Every protocol payload is a single
// byte, the limit only keeps unknown paths from carrying bulk data.
const MaxPayloadBytes = 1024

type MessageValidator struct {
}

func NewMessageValidator() Validator {
	return &MessageValidator{}
}

func (v *MessageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SendMessageRequest:
		return v.validateSendMessageRequest(ctx, value, fields...)
	case *models.SendMessageRequest:
		return v.validateSendMessageRequest(ctx, *value, fields...)

	case models.Message:
		return v.validateMessage(ctx, value, fields...)
	case *models.Message:
		return v.validateMessage(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MessageValidator) validateSendMessageRequest(ctx context.Context, request models.SendMessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTargetNodeID, FieldSourceNodeID, FieldPath, FieldData}
	}

	var messageFields []string
	for _, f := range fields {
		switch f {
		case FieldTargetNodeID:
			if strings.TrimSpace(request.TargetNodeID) == "" {
				return ErrEmptyTargetNodeID
			}
		case FieldSourceNodeID, FieldPath, FieldData:
			messageFields = append(messageFields, f)
		default:
			return ErrUnknownField
		}
	}

	if len(messageFields) == 0 {
		return nil
	}
	if err := v.validateMessage(ctx, request.Message, messageFields...); err != nil {
		return fmt.Errorf("invalid message: %w", err)
	}
	return nil
}

func (v *MessageValidator) validateMessage(ctx context.Context, msg models.Message, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSourceNodeID, FieldPath, FieldData}
	}

	for _, f := range fields {
		switch f {
		case FieldSourceNodeID:
			if strings.TrimSpace(msg.SourceNodeID) == "" {
				return ErrEmptySourceNodeID
			}
		case FieldPath:
			if msg.Path == "" {
				return ErrEmptyMessagePath
			}
			if !strings.HasPrefix(msg.Path, "/") {
				return ErrInvalidMessagePath
			}
		case FieldData:
			if len(msg.Data) > MaxPayloadBytes {
				return ErrPayloadTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
