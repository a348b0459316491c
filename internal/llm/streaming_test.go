package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestMockProvider_StreamsScriptedChunks(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`"hello world"`),
			Chunks:  []string{"hel", "lo ", "world"},
		},
	)

	var got []string
	resp, err := mock.GenerateStream(context.Background(), Request{}, func(delta string) {
		got = append(got, delta)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `"hello world"` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 chunks, got %d: %v", len(got), got)
	}
	if strings.Join(got, "") != "hello world" {
		t.Fatalf("chunks don't reassemble: %v", got)
	}
}

func TestGenerateStream_FallsBackToSingleDelta(t *testing.T) {
	// A bare Provider without streaming support gets the whole response
	// as one delta.
	p := &staticProvider{content: `{"lesson":"..."}`}

	var got []string
	resp, err := GenerateStream(context.Background(), p, Request{}, func(delta string) {
		got = append(got, delta)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != `{"lesson":"..."}` {
		t.Fatalf("expected single full delta, got %v", got)
	}
	if string(resp.Content) != `{"lesson":"..."}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestRetryProvider_StreamRetriesBeforeFirstDelta(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: json.RawMessage(`"ok"`), Chunks: []string{"ok"}},
	)

	r := WithRetry(mock, RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     time.Millisecond,
		Multiplier:  2,
	}).(*RetryProvider)

	var got []string
	resp, err := r.GenerateStream(context.Background(), Request{}, func(delta string) {
		got = append(got, delta)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `"ok"` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if len(got) != 1 || got[0] != "ok" {
		t.Fatalf("unexpected deltas: %v", got)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 attempts, got %d", mock.CallCount())
	}
}

func TestRetryProvider_StreamDoesNotRetryAfterEmit(t *testing.T) {
	p := &partialStreamProvider{}

	r := WithRetry(p, RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     time.Millisecond,
		Multiplier:  2,
	}).(*RetryProvider)

	var got []string
	_, err := r.GenerateStream(context.Background(), Request{}, func(delta string) {
		got = append(got, delta)
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if p.calls != 1 {
		t.Fatalf("expected 1 attempt after partial emit, got %d", p.calls)
	}
	if len(got) != 1 || got[0] != "partial" {
		t.Fatalf("unexpected deltas: %v", got)
	}
}

// staticProvider is a minimal Provider without streaming support.
type staticProvider struct {
	content string
}

func (s *staticProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	return &Response{Content: json.RawMessage(s.content), StopReason: "end"}, nil
}

func (s *staticProvider) ModelID() string { return "static" }

// partialStreamProvider emits one delta and then fails, so retry
// decorators can be checked for mid-stream behavior.
type partialStreamProvider struct {
	calls int
}

func (p *partialStreamProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	return nil, errors.New("not used")
}

func (p *partialStreamProvider) GenerateStream(_ context.Context, _ Request, onDelta StreamFunc) (*Response, error) {
	p.calls++
	onDelta("partial")
	return nil, &ErrProviderUnavailable{Err: errors.New("connection reset")}
}

func (p *partialStreamProvider) ModelID() string { return "partial" }
