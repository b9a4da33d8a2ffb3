package logger

import (
	"log"
	"os"
)

// Destination defaults to stderr so the CLI works without write access to a
// log directory; set this env var to append to a file instead.
const logFileEnv = "S3_SIGNER_LOG_FILE"
const logPrefix = "[S3 REQUEST SIGNER] "

type Logger struct {
	Logger *log.Logger
}

func NewLogger() (*Logger, error) {
	out := os.Stderr
	if location := os.Getenv(logFileEnv); location != "" {
		logFile, err := os.OpenFile(location, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		out = logFile
	}
	return &Logger{
		Logger: log.New(out, logPrefix, log.Ldate|log.Ltime|log.Lshortfile),
	}, nil
}

func (l *Logger) Info(message interface{}) {
	l.Logger.Println("[INFO] " + formatMessage(message))
}

func (l *Logger) Debug(message interface{}) {
	l.Logger.Println("[DEBUG] " + formatMessage(message))
}

func (l *Logger) Error(message interface{}) {
	l.Logger.Println("[ERROR] " + formatMessage(message))
}

func (l *Logger) Exit(message interface{}, code int) {
	l.Logger.Println("[EXIT] " + formatMessage(message))
	os.Exit(code)
}

func formatMessage(message interface{}) string {
	switch v := message.(type) {
	case string:
		return v
	case error:
		return v.Error()
	default:
		return "unknown message type"
	}
}
