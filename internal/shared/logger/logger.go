package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "WARN":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

func levelString(l Level) string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ErrObj carries error details on ERROR entries.
type ErrObj struct {
	Msg   string `json:"msg"`
	Stack string `json:"stack,omitempty"`
}

// Entry is one log line. Timestamp, Level, Service and Hostname are filled
// in automatically when left empty.
type Entry struct {
	Timestamp  string         `json:"timestamp"`
	Level      string         `json:"level"`
	Service    string         `json:"service"`
	Action     string         `json:"action"`
	Message    string         `json:"message"`
	Hostname   string         `json:"hostname"`
	RequestID  string         `json:"request_id,omitempty"`
	TaxiID     string         `json:"taxi_id,omitempty"`
	Error      *ErrObj        `json:"error,omitempty"`
	Additional map[string]any `json:"additional,omitempty"`
}

type Logger struct {
	service  string
	minLevel Level
	hostname string

	outWriter io.Writer
	errWriter io.Writer
	mu        sync.Mutex
}

// NewLogger writes INFO+ to stdout and ERROR to stderr. LOG_LEVEL lowers or
// raises the threshold.
func NewLogger(service string) *Logger {
	h, _ := os.Hostname()
	return &Logger{
		service:   service,
		minLevel:  ParseLevel(os.Getenv("LOG_LEVEL")),
		hostname:  h,
		outWriter: os.Stdout,
		errWriter: os.Stderr,
	}
}

// NewLoggerWithWriter is used by tests to capture output.
func NewLoggerWithWriter(service string, w io.Writer) *Logger {
	h, _ := os.Hostname()
	return &Logger{
		service:   service,
		minLevel:  LevelDebug,
		hostname:  h,
		outWriter: w,
		errWriter: w,
	}
}

func (l *Logger) Debug(e Entry) { l.log(LevelDebug, e) }
func (l *Logger) Info(e Entry)  { l.log(LevelInfo, e) }
func (l *Logger) Warn(e Entry)  { l.log(LevelWarn, e) }
func (l *Logger) Error(e Entry) { l.log(LevelError, e) }

func (l *Logger) Fatal(e Entry) {
	if e.Error == nil {
		e.Error = &ErrObj{Msg: e.Message, Stack: string(debug.Stack())}
	} else if e.Error.Stack == "" {
		e.Error.Stack = string(debug.Stack())
	}
	l.log(LevelError, e)
	os.Exit(1)
}

func (l *Logger) log(level Level, e Entry) {
	if level < l.minLevel {
		return
	}

	if e.Timestamp == "" {
		e.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	if e.Level == "" {
		e.Level = levelString(level)
	}
	if e.Service == "" {
		e.Service = l.service
	}
	if e.Hostname == "" {
		e.Hostname = l.hostname
	}

	b, err := json.Marshal(e)
	if err != nil {
		fmt.Fprintf(l.errWriter, `{"timestamp":"%s","level":"ERROR","service":"%s","message":"failed to marshal log: %v"}`+"\n",
			time.Now().UTC().Format(time.RFC3339Nano), l.service, err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	writer := l.outWriter
	if level == LevelError {
		writer = l.errWriter
	}
	_, _ = writer.Write(b)
	_, _ = writer.Write([]byte("\n"))
}
