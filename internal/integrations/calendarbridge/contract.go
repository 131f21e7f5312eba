package calendarbridge

// Logger describes the logging methods the client needs
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
