package logger

import "log"

// A LoggerOptFn is a functional option configuring an ArborLogger when constructing a new one.
type LoggerOptFn func(*ArborLogger)

// WithEnv sets the environment ArborLogger is operating in.
func WithEnv(env string) func(*ArborLogger) {
	return func(l *ArborLogger) {
		l.env = env
	}
}

// WithLevel sets the log level ArborLogger uses.
func WithLevel(level LogLevel) func(*ArborLogger) {
	return func(l *ArborLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger ArborLogger uses.
func WithLogger(log *log.Logger) func(*ArborLogger) {
	return func(l *ArborLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) func(*ArborLogger) {
	return func(l *ArborLogger) {
		l.skip = skip
	}
}
