package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldIntent is the structured log field key for the Lex intent name.
	FieldIntent = "intent"
	// FieldRequestID is the structured log field key for the Lambda request id.
	FieldRequestID = "aws_request_id"
	// FieldSessionID is the structured log field key for the Lex session id.
	FieldSessionID = "session_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger is replaced with a no-op one.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// WithInvocation attaches the request, session and intent fields of a single
// invocation. Empty values are skipped.
func WithInvocation(logger *zap.Logger, requestID, sessionID, intent string) *zap.Logger {
	return WithFields(logger, StringFields(
		StringField{Key: FieldRequestID, Value: requestID},
		StringField{Key: FieldSessionID, Value: sessionID},
		StringField{Key: FieldIntent, Value: intent},
	)...)
}
