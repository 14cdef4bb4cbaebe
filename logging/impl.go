package logging

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// callerSkip is the number of frames between write and the code calling the logger.
const callerSkip = 2

var errUnpairedKey = errors.New("unpaired log key")

type impl struct {
	name  string
	level zap.AtomicLevel
	inUTC bool

	// fields are attached by With and written before the per-entry fields.
	fields    []zapcore.Field
	appenders []Appender
}

func newImpl(name string, level Level, inUTC bool, appenders ...Appender) *impl {
	return &impl{
		name:      name,
		level:     zap.NewAtomicLevelAt(level),
		inUTC:     inUTC,
		appenders: appenders,
	}
}

// derive copies the logger. The copy gets its own level, and its slices are clipped so that
// appending to them never writes into the parent's backing arrays.
func (imp *impl) derive() *impl {
	return &impl{
		name:      imp.name,
		level:     zap.NewAtomicLevelAt(imp.level.Level()),
		inUTC:     imp.inUTC,
		fields:    slices.Clip(imp.fields),
		appenders: slices.Clip(imp.appenders),
	}
}

func (imp *impl) With(keysAndValues ...interface{}) Logger {
	child := imp.derive()
	child.fields = append(child.fields, fieldsFromPairs(keysAndValues)...)
	return child
}

func (imp *impl) Sublogger(subname string) Logger {
	child := imp.derive()
	if imp.name != "" {
		child.name = imp.name + "." + subname
	} else {
		child.name = subname
	}
	return child
}

func (imp *impl) AddAppender(appender Appender) {
	imp.appenders = append(imp.appenders, appender)
}

func (imp *impl) SetLevel(level Level) {
	imp.level.SetLevel(level)
}

func (imp *impl) Level() Level {
	return imp.level.Level()
}

func (imp *impl) Sync() error {
	var err error
	for _, appender := range imp.appenders {
		multierr.AppendInto(&err, appender.Sync())
	}
	return err
}

func (imp *impl) Debugw(msg string, keysAndValues ...interface{}) {
	imp.write(DEBUG, msg, keysAndValues)
}

func (imp *impl) Infow(msg string, keysAndValues ...interface{}) {
	imp.write(INFO, msg, keysAndValues)
}

func (imp *impl) Warnw(msg string, keysAndValues ...interface{}) {
	imp.write(WARN, msg, keysAndValues)
}

func (imp *impl) Errorw(msg string, keysAndValues ...interface{}) {
	imp.write(ERROR, msg, keysAndValues)
}

func (imp *impl) enabled(level Level) bool {
	return GlobalLogLevel.Enabled(DEBUG) || imp.level.Enabled(level)
}

// write must be called directly from the exported level methods so callerSkip holds.
func (imp *impl) write(level Level, msg string, keysAndValues []interface{}) {
	if !imp.enabled(level) {
		return
	}
	entry := zapcore.Entry{
		Level:      level,
		Time:       time.Now(),
		LoggerName: imp.name,
		Message:    msg,
		Caller:     zapcore.NewEntryCaller(runtime.Caller(callerSkip)),
	}
	if imp.inUTC {
		entry.Time = entry.Time.UTC()
	}
	fields := append(slices.Clip(imp.fields), fieldsFromPairs(keysAndValues)...)

	for _, appender := range imp.appenders {
		if err := appender.Write(entry, fields); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// fieldsFromPairs turns alternating keys and values into fields. A trailing key with no value is
// kept, with an error standing in for the value.
func fieldsFromPairs(keysAndValues []interface{}) []zapcore.Field {
	fields := make([]zapcore.Field, 0, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 == len(keysAndValues) {
			fields = append(fields, zap.Any(key, errUnpairedKey))
			break
		}
		fields = append(fields, zap.Any(key, keysAndValues[i+1]))
	}
	return fields
}
