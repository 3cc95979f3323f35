package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldVoice is the structured log field key for the brand voice name.
	FieldVoice = "brand_voice"
	// FieldOccasion is the structured log field key for the extracted occasion.
	FieldOccasion = "occasion"
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
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// PipelineFields returns standard zap fields describing the brand voice and
// occasion of the current recommendation. Empty values are ignored to keep
// log entries compact when information is missing.
func PipelineFields(voice, occasion string) []zap.Field {
	return StringFields(
		StringField{Key: FieldVoice, Value: voice},
		StringField{Key: FieldOccasion, Value: occasion},
	)
}

// WithPipelineFields attaches the common pipeline fields to the provided logger.
func WithPipelineFields(logger *zap.Logger, voice, occasion string) *zap.Logger {
	fields := PipelineFields(voice, occasion)
	return WithFields(logger, fields...)
}
