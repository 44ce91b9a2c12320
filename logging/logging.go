package logging

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// previewLen is the number of public-key bytes shown in log fields.
const previewLen = 8

// LoggerHelper carries the structured fields shared by every log line emitted
// from one function of one package.
type LoggerHelper struct {
	function string
	pkg      string
	fields   logrus.Fields
}

// NewLogger creates a helper tagged with the package and function names.
func NewLogger(pkg, function string) *LoggerHelper {
	return &LoggerHelper{
		function: function,
		pkg:      pkg,
		fields: logrus.Fields{
			"function": function,
			"package":  pkg,
		},
	}
}

// WithCaller records the file, line and function of the immediate caller.
func (l *LoggerHelper) WithCaller() *LoggerHelper {
	pc, file, line, ok := runtime.Caller(1)
	if !ok {
		return l
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		name := fn.Name()
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		l.fields["caller"] = fmt.Sprintf("%s:%d", file, line)
		l.fields["caller_func"] = name
	}
	return l
}

// WithField adds one field.
func (l *LoggerHelper) WithField(key string, value interface{}) *LoggerHelper {
	l.fields[key] = value
	return l
}

// WithFields merges fields into the helper.
func (l *LoggerHelper) WithFields(fields logrus.Fields) *LoggerHelper {
	for k, v := range fields {
		l.fields[k] = v
	}
	return l
}

// WithError attaches err and the operation that produced it. A nil err only
// records the operation.
func (l *LoggerHelper) WithError(err error, operation string) *LoggerHelper {
	if err != nil {
		l.fields["error"] = err.Error()
	}
	l.fields["operation"] = operation
	return l
}

// Fields returns a copy of the accumulated fields.
func (l *LoggerHelper) Fields() logrus.Fields {
	out := make(logrus.Fields, len(l.fields))
	for k, v := range l.fields {
		out[k] = v
	}
	return out
}

func (l *LoggerHelper) entry() *logrus.Entry {
	return logrus.WithFields(l.fields)
}

// Entry logs function entry at debug level.
func (l *LoggerHelper) Entry(message string) {
	l.entry().Debug("Function entry: " + message)
}

// Exit logs function exit at debug level.
func (l *LoggerHelper) Exit() {
	l.entry().Debug("Function exit: " + l.function)
}

// Debug logs a debug message.
func (l *LoggerHelper) Debug(message string) { l.entry().Debug(message) }

// Info logs an info message.
func (l *LoggerHelper) Info(message string) { l.entry().Info(message) }

// Warn logs a warning message.
func (l *LoggerHelper) Warn(message string) { l.entry().Warn(message) }

// Error logs an error message.
func (l *LoggerHelper) Error(message string) { l.entry().Error(message) }

// PublicPreview returns log fields describing public data such as a public
// key or a signature: a hex prefix and the full length. It must never be
// given secret bytes.
func PublicPreview(name string, data []byte) logrus.Fields {
	preview := "nil"
	if len(data) > 0 {
		n := min(len(data), previewLen)
		preview = fmt.Sprintf("%x", data[:n])
		if len(data) > n {
			preview += "..."
		}
	}
	return logrus.Fields{
		name + "_preview": preview,
		name + "_size":    len(data),
	}
}

// SecretFields describes secret material by length only.
func SecretFields(name string, data []byte) logrus.Fields {
	return logrus.Fields{
		name + "_size": len(data),
	}
}

// OperationFields builds the operation/status pair used on result lines.
func OperationFields(operation, status string, additional ...logrus.Fields) logrus.Fields {
	fields := logrus.Fields{
		"operation": operation,
		"status":    status,
	}
	for _, extra := range additional {
		for k, v := range extra {
			fields[k] = v
		}
	}
	return fields
}

// SetLevel parses a logrus level name and applies it globally. An empty name
// leaves the current level untouched.
func SetLevel(name string) error {
	if name == "" {
		return nil
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", name, err)
	}
	logrus.SetLevel(level)
	return nil
}
