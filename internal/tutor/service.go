package tutor

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/flashlingo/internal/llm"
)

// Service explains answered questions. Explanations authored on the record
// are returned directly; the rest are generated by the LLM and memoised for
// the life of the service.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu    sync.Mutex
	cache map[string]*Explanation
}

// NewService creates an explanation service. provider may be nil, in which
// case only authored explanations are available.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{
		provider: provider,
		cfg:      cfg,
		cache:    make(map[string]*Explanation),
	}
}

// LLMEnabled reports whether a provider is configured.
func (s *Service) LLMEnabled() bool {
	return s != nil && s.provider != nil
}

// Available reports whether an explanation can be produced for in.
func (s *Service) Available(in Input) bool {
	return s.provider != nil || authored(in) != ""
}

type explanationOutput struct {
	Explanation string `json:"explanation"`
	Mistake     string `json:"mistake"`
	Example     string `json:"example"`
}

// Explain returns an explanation for in. It blocks on the provider, so the
// TUI calls it from a command. Without a provider and without an authored
// explanation it returns llm.ErrNoProvider.
func (s *Service) Explain(ctx context.Context, in Input) (*Explanation, error) {
	if text := authored(in); text != "" {
		return &Explanation{
			RequestID: uuid.NewString(),
			Source:    SourceContent,
			Text:      text,
		}, nil
	}
	if s.provider == nil {
		return nil, llm.ErrNoProvider
	}

	key := in.key()
	s.mu.Lock()
	cached, ok := s.cache[key]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	id := uuid.NewString()
	ctx = llm.WithPurpose(ctx, "explanation")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt(in.Language),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(in)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("explanation %s: %w", id, err)
	}

	var out explanationOutput
	if err := resp.Decode(&out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	exp := &Explanation{
		RequestID: id,
		Source:    SourceLLM,
		Text:      strings.TrimSpace(out.Explanation),
		Mistake:   strings.TrimSpace(out.Mistake),
		Example:   strings.TrimSpace(out.Example),
	}

	s.mu.Lock()
	s.cache[key] = exp
	s.mu.Unlock()
	return exp, nil
}

func authored(in Input) string {
	return strings.TrimSpace(in.Question.Extra["explanation"])
}
