package logger

// Logger is the interface a consumer implements to receive log messages from
// the library. Only lenient bulk operations log; the core parse and compare
// paths stay silent.
type Logger interface {
	Errorf(format string, args ...interface{})
	Error(args ...interface{})
	Warnf(format string, args ...interface{})
	Warn(args ...interface{})
	Infof(format string, args ...interface{})
	Info(args ...interface{})
	Debugf(format string, args ...interface{})
	Debug(args ...interface{})
}
