package observability

import (
	"time"

	"go.uber.org/zap"
)

// String constructs a string field.
func String(key, val string) zap.Field { return zap.String(key, val) }

// Int constructs an int field.
func Int(key string, val int) zap.Field { return zap.Int(key, val) }

// Float64 constructs a float64 field.
func Float64(key string, val float64) zap.Field { return zap.Float64(key, val) }

// Bool constructs a bool field.
func Bool(key string, val bool) zap.Field { return zap.Bool(key, val) }

// Duration constructs a duration field.
func Duration(key string, val time.Duration) zap.Field { return zap.Duration(key, val) }

// Error constructs an error field under the "error" key.
func Error(err error) zap.Field { return zap.Error(err) }

// Any constructs a field for an arbitrary value.
func Any(key string, val interface{}) zap.Field { return zap.Any(key, val) }
