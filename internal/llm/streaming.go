package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	openai "github.com/sashabaranov/go-openai"
)

// StreamFunc receives incremental text deltas during a streaming generation.
type StreamFunc func(delta string)

// StreamProvider is implemented by providers with native token streaming.
// Streaming is for free-text generation (lessons, dialogue); requests that
// carry a Schema should use Generate instead.
type StreamProvider interface {
	Provider

	// GenerateStream sends the request and invokes onDelta for each text
	// chunk as it arrives. The returned Response carries the complete
	// content and usage, same as Generate.
	GenerateStream(ctx context.Context, req Request, onDelta StreamFunc) (*Response, error)
}

// GenerateStream streams from p when it supports streaming. Otherwise it
// falls back to a blocking Generate and emits the full content as a single
// delta, so callers can treat every provider as streaming-capable.
func GenerateStream(ctx context.Context, p Provider, req Request, onDelta StreamFunc) (*Response, error) {
	if sp, ok := p.(StreamProvider); ok {
		return sp.GenerateStream(ctx, req, onDelta)
	}

	resp, err := p.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	if onDelta != nil && len(resp.Content) > 0 {
		onDelta(string(resp.Content))
	}
	return resp, nil
}

func (p *AnthropicProvider) GenerateStream(ctx context.Context, req Request, onDelta StreamFunc) (*Response, error) {
	stream := p.client.Messages.NewStreaming(ctx, p.buildParams(req))

	msg := anthropic.Message{}
	for stream.Next() {
		event := stream.Current()
		if err := msg.Accumulate(event); err != nil {
			return nil, &ErrInvalidResponse{
				Err: fmt.Errorf("accumulate stream event: %w", err),
			}
		}

		switch eventVariant := event.AsAny().(type) {
		case anthropic.ContentBlockDeltaEvent:
			switch deltaVariant := eventVariant.Delta.AsAny().(type) {
			case anthropic.TextDelta:
				if onDelta != nil && deltaVariant.Text != "" {
					onDelta(deltaVariant.Text)
				}
			}
		}
	}
	if err := stream.Err(); err != nil {
		return nil, mapAnthropicError(err)
	}

	content, err := extractAnthropicContent(&msg)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:    content,
		Usage:      mapAnthropicUsage(msg.Usage),
		Model:      string(msg.Model),
		StopReason: mapAnthropicStopReason(msg.StopReason),
	}, nil
}

func (p *OpenAIProvider) GenerateStream(ctx context.Context, req Request, onDelta StreamFunc) (*Response, error) {
	chatReq, err := p.buildChatRequest(req)
	if err != nil {
		return nil, err
	}
	chatReq.Stream = true
	chatReq.StreamOptions = &openai.StreamOptions{IncludeUsage: true}

	stream, err := p.client.CreateChatCompletionStream(ctx, chatReq)
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	defer stream.Close()

	var content strings.Builder
	var usage Usage
	model := p.model
	stopReason := "end"

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, mapOpenAIError(err)
		}

		if chunk.Model != "" {
			model = chunk.Model
		}
		if chunk.Usage != nil {
			usage = Usage{
				InputTokens:  chunk.Usage.PromptTokens,
				OutputTokens: chunk.Usage.CompletionTokens,
				TotalTokens:  chunk.Usage.TotalTokens,
			}
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		if delta := chunk.Choices[0].Delta.Content; delta != "" {
			content.WriteString(delta)
			if onDelta != nil {
				onDelta(delta)
			}
		}
		if chunk.Choices[0].FinishReason == openai.FinishReasonLength {
			stopReason = "max_tokens"
		}
	}

	return &Response{
		Content:    json.RawMessage(content.String()),
		Usage:      usage,
		Model:      model,
		StopReason: stopReason,
	}, nil
}

// GenerateStream replays the canned response's Chunks (or the whole
// Content when no chunks are scripted) before returning it.
func (m *MockProvider) GenerateStream(ctx context.Context, req Request, onDelta StreamFunc) (*Response, error) {
	m.mu.Lock()
	var chunks []string
	if len(m.responses) > 0 {
		chunks = m.responses[0].Chunks
	}
	m.mu.Unlock()

	resp, err := m.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	if onDelta != nil {
		if len(chunks) > 0 {
			for _, c := range chunks {
				onDelta(c)
			}
		} else if len(resp.Content) > 0 {
			onDelta(string(resp.Content))
		}
	}
	return resp, nil
}
