package toolgate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fermofou/llm-speak/pkg/uniqueid"

	"github.com/zeromicro/go-zero/core/logx"
)

// Audit event kinds, one per gate lifecycle transition.
const (
	EventProposed = "proposed"
	EventRejected = "rejected"
	EventExecuted = "executed"
	EventFailed   = "failed"
)

// Record is one append-only audit entry. Raw tool name and arguments are
// kept even for invalid candidates so rejected attempts stay auditable.
type Record struct {
	Id        int64          `json:"id"`
	Sn        string         `json:"sn"`
	Timestamp time.Time      `json:"timestamp"`
	Event     string         `json:"event"`
	Tool      string         `json:"tool"`
	Args      map[string]any `json:"args,omitempty"`
	Detail    string         `json:"detail,omitempty"`
	ElapsedMs int64          `json:"elapsed_ms,omitempty"`
}

// Sink receives records. Append is called under the recorder's lock, so a
// sink does not need its own serialization.
type Sink interface {
	Append(rec Record) error
}

// FileSink appends JSON lines to a log file.
type FileSink struct {
	f *os.File
}

func NewFileSink(path string) (*FileSink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileSink{f: f}, nil
}

func (s *FileSink) Append(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = s.f.Write(append(data, '\n'))
	return err
}

func (s *FileSink) Close() error {
	return s.f.Close()
}

// Recorder writes the audit trail for the gate. Recording is best-effort:
// a sink failure is logged and swallowed, it never changes the outcome of
// the invocation being recorded. A nil or disabled recorder is a no-op.
type Recorder struct {
	sink    Sink
	enabled bool
	secrets []string

	mu   sync.Mutex
	last time.Time
}

func NewRecorder(sink Sink, enabled bool, secrets []string) *Recorder {
	kept := make([]string, 0, len(secrets))
	for _, s := range secrets {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return &Recorder{sink: sink, enabled: enabled, secrets: kept}
}

// Redact removes every configured secret value from a detail string.
func (r *Recorder) Redact(s string) string {
	if r == nil {
		return s
	}
	for _, secret := range r.secrets {
		s = strings.ReplaceAll(s, secret, "[REDACTED]")
	}
	return s
}

// The sn correlates the records of one invocation's lifecycle; the gate
// generates it once per candidate via uniqueid.GenSn.

func (r *Recorder) RecordProposed(sn, tool string, args map[string]any) {
	r.append(Record{Sn: sn, Event: EventProposed, Tool: tool, Args: args})
}

func (r *Recorder) RecordRejected(sn, tool string, args map[string]any, reason *ValidationError) {
	r.append(Record{
		Sn:     sn,
		Event:  EventRejected,
		Tool:   tool,
		Args:   args,
		Detail: string(reason.Kind) + ": " + reason.Message,
	})
}

func (r *Recorder) RecordExecuted(sn, tool string, summary string, elapsed time.Duration) {
	r.append(Record{
		Sn:        sn,
		Event:     EventExecuted,
		Tool:      tool,
		Detail:    r.Redact(summary),
		ElapsedMs: elapsed.Milliseconds(),
	})
}

func (r *Recorder) RecordFailed(sn, tool string, errDetail string, elapsed time.Duration) {
	r.append(Record{
		Sn:        sn,
		Event:     EventFailed,
		Tool:      tool,
		Detail:    r.Redact(errDetail),
		ElapsedMs: elapsed.Milliseconds(),
	})
}

func (r *Recorder) append(rec Record) {
	if r == nil || !r.enabled || r.sink == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// timestamps never go backwards within the process, even if the wall
	// clock does
	now := time.Now().UTC()
	if now.Before(r.last) {
		now = r.last
	}
	r.last = now

	rec.Id = uniqueid.GenId()
	rec.Timestamp = now

	if err := r.sink.Append(rec); err != nil {
		logx.Errorf("audit append failed, event: %s, tool: %s, err: %v", rec.Event, rec.Tool, err)
	}
}
