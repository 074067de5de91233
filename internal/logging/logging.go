// Package logging writes the service's one-object-per-line JSON logs.
package logging

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

// Logger emits JSON log lines stamped in a fixed time zone.
type Logger struct {
	mu  sync.Mutex
	enc *json.Encoder
	loc *time.Location
}

var std = New(os.Stdout, time.UTC)

// New returns a Logger writing to w. A nil loc means UTC.
func New(w io.Writer, loc *time.Location) *Logger {
	if loc == nil {
		loc = time.UTC
	}
	return &Logger{enc: json.NewEncoder(w), loc: loc}
}

// Default returns the process-wide logger.
func Default() *Logger { return std }

// SetDefault replaces the process-wide logger.
func SetDefault(l *Logger) { std = l }

// Log writes data as one JSON line. "ts" is always set; "level" defaults to "error" when
// status is "error" and to "info" otherwise.
func (l *Logger) Log(data map[string]any) {
	data["ts"] = time.Now().In(l.loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enc.Encode(data); err != nil {
		log.Printf("failed to encode log entry: %v", err)
	}
}

// Info logs msg with fields at info level.
func (l *Logger) Info(msg string, fields map[string]any) {
	l.Log(with(fields, "info", msg))
}

// Warn logs msg with fields at warn level.
func (l *Logger) Warn(msg string, fields map[string]any) {
	l.Log(with(fields, "warn", msg))
}

// Error logs msg and err with fields at error level.
func (l *Logger) Error(msg string, err error, fields map[string]any) {
	data := with(fields, "error", msg)
	if err != nil {
		data["error"] = err.Error()
	}
	l.Log(data)
}

func with(fields map[string]any, level, msg string) map[string]any {
	data := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		data[k] = v
	}
	data["level"] = level
	data["msg"] = msg
	return data
}
