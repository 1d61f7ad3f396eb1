package logger

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func init() {
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// SetLevel parses a level name. Trace and panic are not exposed.
func SetLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug":
		Log.SetLevel(logrus.DebugLevel)
	case "info", "":
		Log.SetLevel(logrus.InfoLevel)
	case "warning", "warn":
		Log.SetLevel(logrus.WarnLevel)
	case "error":
		Log.SetLevel(logrus.ErrorLevel)
	case "fatal":
		Log.SetLevel(logrus.FatalLevel)
	default:
		return fmt.Errorf("bad log level %q", level)
	}
	return nil
}

// RetryLogger adapts a logrus logger to retryablehttp.LeveledLogger.
type RetryLogger struct {
	Log *logrus.Logger
}

func (l RetryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.entry(keysAndValues).Error(msg)
}

func (l RetryLogger) Info(msg string, keysAndValues ...interface{}) {
	// retryablehttp reports every request at info; that is request noise here.
	l.entry(keysAndValues).Debug(msg)
}

func (l RetryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.entry(keysAndValues).Debug(msg)
}

func (l RetryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.entry(keysAndValues).Warn(msg)
}

func (l RetryLogger) entry(keysAndValues []interface{}) *logrus.Entry {
	base := l.Log
	if base == nil {
		base = Log
	}
	return base.WithFields(Fields(keysAndValues...))
}

// Fields turns alternating key/value pairs into logrus fields. A trailing
// key without a value is kept under "extra".
func Fields(keysAndValues ...interface{}) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 >= len(keysAndValues) {
			fields["extra"] = keysAndValues[i]
			break
		}
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}
