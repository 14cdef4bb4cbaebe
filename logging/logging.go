// Package logging provides the leveled, structured logger used across kinematics2d. Every entry is
// a message plus key/value fields; appenders decide how entries are rendered.
package logging

// Logger logs structured entries. Key/value pairs alternate: keys are rendered with fmt.Sprint and
// values are encoded as JSON fields.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// With returns a logger that adds the given key/value pairs to every entry it writes. The
	// receiver is left unchanged.
	With(keysAndValues ...interface{}) Logger
	// Sublogger returns a logger named "<name>.<subname>" that shares this logger's appenders and
	// fields.
	Sublogger(subname string) Logger

	AddAppender(appender Appender)
	SetLevel(level Level)
	Level() Level
	Sync() error
}

// NewBlankLogger returns a logger at debug level, timestamped in UTC, with no appenders. Callers
// add the outputs they want.
func NewBlankLogger(name string) Logger {
	return newImpl(name, DEBUG, true)
}
