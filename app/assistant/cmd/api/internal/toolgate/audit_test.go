package toolgate

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type memSink struct {
	mu   sync.Mutex
	recs []Record
}

func (s *memSink) Append(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs = append(s.recs, rec)
	return nil
}

func (s *memSink) records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.recs))
	copy(out, s.recs)
	return out
}

type failingSink struct{}

func (failingSink) Append(Record) error {
	return errors.New("sink unavailable")
}

func TestRecorderMonotonicTimestamps(t *testing.T) {
	sink := &memSink{}
	rec := NewRecorder(sink, true, nil)

	for i := 0; i < 200; i++ {
		rec.RecordProposed("sn", "check_weather", nil)
	}

	recs := sink.records()
	for i := 1; i < len(recs); i++ {
		if recs[i].Timestamp.Before(recs[i-1].Timestamp) {
			t.Fatalf("timestamp went backwards at record %d", i)
		}
	}
}

func TestRecorderConcurrentAppends(t *testing.T) {
	sink := &memSink{}
	rec := NewRecorder(sink, true, nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				rec.RecordExecuted("sn", "search_wiki", "ok", time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if got := len(sink.records()); got != 500 {
		t.Errorf("recorded %d entries, want 500", got)
	}
}

func TestRecorderDisabledIsNoop(t *testing.T) {
	sink := &memSink{}
	rec := NewRecorder(sink, false, nil)

	rec.RecordProposed("sn", "check_weather", nil)
	rec.RecordExecuted("sn", "check_weather", "ok", 0)

	if got := len(sink.records()); got != 0 {
		t.Errorf("disabled recorder wrote %d entries", got)
	}
}

func TestRecorderSwallowsSinkFailure(t *testing.T) {
	rec := NewRecorder(failingSink{}, true, nil)

	// must not panic or propagate
	rec.RecordProposed("sn", "check_weather", nil)
	rec.RecordFailed("sn", "check_weather", "boom", time.Second)
}

func TestRecorderRedactsSecrets(t *testing.T) {
	sink := &memSink{}
	rec := NewRecorder(sink, true, []string{"sk-supersecret", ""})

	rec.RecordFailed("sn", "check_weather", "request to api?key=sk-supersecret failed", time.Second)

	recs := sink.records()
	if len(recs) != 1 {
		t.Fatalf("recorded %d entries, want 1", len(recs))
	}
	if want := "request to api?key=[REDACTED] failed"; recs[0].Detail != want {
		t.Errorf("detail = %q, want %q", recs[0].Detail, want)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProposed("sn", "check_weather", nil)
	if got := rec.Redact("value"); got != "value" {
		t.Errorf("Redact on nil recorder = %q", got)
	}
}
