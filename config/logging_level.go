package config

import (
	"sync"

	"go.viam.com/kinematics2d/logging"
)

// debugRequests tracks the two places debug logging can be asked for: the --debug flag and the
// "debug" field of the config file. Debug logging is on while either asks for it.
type debugRequests struct {
	mu       sync.Mutex
	logger   logging.Logger
	cmdLine  bool
	fromFile bool
}

var debugLogging debugRequests

// InitLoggingSettings records the command line debug flag and resets the file flag. logger
// announces later level changes.
func InitLoggingSettings(logger logging.Logger, cmdLineDebugFlag bool) {
	debugLogging.mu.Lock()
	defer debugLogging.mu.Unlock()

	debugLogging.logger = logger
	debugLogging.cmdLine = cmdLineDebugFlag
	debugLogging.fromFile = false
	logging.GlobalLogLevel.SetLevel(debugLogging.levelInLock())
	logger.Debugw("log level initialized", "level", logging.GlobalLogLevel.Level().String())
}

// UpdateFileConfigDebug records the debug field of a freshly read config file.
func UpdateFileConfigDebug(fileDebug bool) {
	debugLogging.mu.Lock()
	defer debugLogging.mu.Unlock()

	debugLogging.fromFile = fileDebug
	level := debugLogging.levelInLock()
	if logging.GlobalLogLevel.Level() == level {
		return
	}
	logging.GlobalLogLevel.SetLevel(level)
	if debugLogging.logger != nil {
		debugLogging.logger.Infow("log level changed", "level", level.String(), "from_file", fileDebug)
	}
}

func (d *debugRequests) levelInLock() logging.Level {
	if d.cmdLine || d.fromFile {
		return logging.DEBUG
	}
	return logging.INFO
}
