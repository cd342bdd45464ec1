package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Logger struct to hold leveled loggers and configuration
type Logger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	level       LogLevel
	mutex       sync.Mutex
}

// LogLevel defines the logging levels
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	ERROR
)

// GlobalLogger starts out as an INFO logger on stdout until InitLogger replaces it.
var GlobalLogger = New(os.Stdout, INFO)

// ParseLevel maps a level name to a LogLevel, defaulting to INFO
func ParseLevel(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// New builds a standalone logger writing to output
func New(output io.Writer, level LogLevel) *Logger {
	if output == nil {
		output = os.Stdout
	}
	flags := log.Ldate | log.Ltime | log.Lshortfile
	return &Logger{
		infoLogger:  log.New(output, color.GreenString("INFO: "), flags),
		errorLogger: log.New(output, color.RedString("ERROR: "), flags),
		debugLogger: log.New(output, color.BlueString("DEBUG: "), flags),
		level:       level,
	}
}

// InitLogger replaces the global logger with one writing to output at level
func InitLogger(output io.Writer, level string) {
	GlobalLogger = New(output, ParseLevel(level))
}

// callDepth makes Lshortfile point at the caller of the public methods
const callDepth = 3

func (l *Logger) emit(level LogLevel, target *log.Logger, msg string) {
	if l.level > level {
		return
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	_ = target.Output(callDepth, msg)
}

// Println logs a message at the INFO level
func (l *Logger) Println(v ...interface{}) {
	l.emit(INFO, l.infoLogger, fmt.Sprintln(v...))
}

// Printf logs a formatted message at the INFO level
func (l *Logger) Printf(format string, v ...interface{}) {
	l.emit(INFO, l.infoLogger, fmt.Sprintf(format, v...))
}

// Error logs a message at the ERROR level
func (l *Logger) Error(v ...interface{}) {
	l.emit(ERROR, l.errorLogger, fmt.Sprintln(v...))
}

// Errorf logs a formatted message at the ERROR level
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.emit(ERROR, l.errorLogger, fmt.Sprintf(format, v...))
}

// Debugf logs a formatted message at the DEBUG level
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.emit(DEBUG, l.debugLogger, fmt.Sprintf(format, v...))
}

// Fatalf logs at the ERROR level and exits the process
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.emit(ERROR, l.errorLogger, fmt.Sprintf(format, v...))
	os.Exit(1)
}
