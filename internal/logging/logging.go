// Package logging writes one JSON object per line, the format every component
// of the service logs in.
package logging

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Fields are the extra key/value pairs attached to an entry.
type Fields map[string]any

// Logger writes JSON lines with "ts", "level" and "msg" keys.
// It is safe for concurrent use.
type Logger struct {
	mu  sync.Mutex
	enc *json.Encoder
	loc *time.Location
}

// New creates a Logger writing to w with timestamps in loc.
func New(w io.Writer, loc *time.Location) *Logger {
	if loc == nil {
		loc = time.UTC
	}
	return &Logger{enc: json.NewEncoder(w), loc: loc}
}

func (l *Logger) Info(msg string, f Fields) {
	l.write("info", msg, f)
}

func (l *Logger) Error(msg string, err error, f Fields) {
	if f == nil {
		f = Fields{}
	}
	if err != nil {
		f["error"] = err.Error()
	}
	l.write("error", msg, f)
}

// Entry writes f as-is, adding "ts" and, when absent, "level".
func (l *Logger) Entry(f Fields) {
	level, _ := f["level"].(string)
	if level == "" {
		level = "info"
	}
	l.write(level, "", f)
}

func (l *Logger) write(level, msg string, f Fields) {
	entry := make(map[string]any, len(f)+3)
	for k, v := range f {
		entry[k] = v
	}
	entry["ts"] = time.Now().In(l.loc).Format(time.RFC3339Nano)
	entry["level"] = level
	if msg != "" {
		entry["msg"] = msg
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(entry)
}
