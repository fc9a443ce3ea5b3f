package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implement Logger interface trên logrus
type DefaultLogger struct {
	log *logrus.Logger
}

// NewDefaultLogger tạo một instance mới của DefaultLogger
func NewDefaultLogger(level Level) *DefaultLogger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	switch level {
	case DebugLevel:
		log.SetLevel(logrus.DebugLevel)
	case ErrorLevel:
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}

	return &DefaultLogger{log: log}
}

// Info log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.log.Infof(format, v...)
}

// Error log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.log.Errorf(format, v...)
}

// Debug log debug
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.log.Debugf(format, v...)
}
