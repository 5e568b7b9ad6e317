package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	mock := NewMockProvider()
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "explanation")
	if p := PurposeFrom(ctx); p != "explanation" {
		t.Fatalf("expected 'question-gen', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "no provider",
			cfg:     Config{},
			wantErr: true,
		},
		{
			name:    "openrouter with key",
			cfg:     Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or"}},
			wantErr: false,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMockProvider_DelayHonoursCancellation(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`), Delay: time.Minute})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := mock.Generate(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got: %v", err)
	}
	if req, ok := mock.LastRequest(); !ok || req.System != "" {
		t.Fatalf("expected the request to be recorded, got %+v %v", req, ok)
	}
}

func TestSessionIDContext(t *testing.T) {
	if id := SessionIDFrom(context.Background()); id != "" {
		t.Fatalf("expected empty session id, got %q", id)
	}
	ctx := WithSessionID(context.Background(), "english:exam_01")
	if id := SessionIDFrom(ctx); id != "english:exam_01" {
		t.Fatalf("expected session id, got %q", id)
	}
}

func TestConfig_Enabled(t *testing.T) {
	if DefaultConfig().Enabled() {
		t.Fatal("default config should have the tutor disabled")
	}
	if !(Config{Provider: "mock"}).Enabled() {
		t.Fatal("mock provider should be enabled")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("FLASHLINGO_LLM_PROVIDER", "anthropic")
	t.Setenv("FLASHLINGO_ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("FLASHLINGO_ANTHROPIC_MODEL", "claude-sonnet")
	t.Setenv("FLASHLINGO_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" || cfg.Anthropic.APIKey != "sk-ant" || cfg.Anthropic.Model != "claude-sonnet" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %s", cfg.Timeout)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Fatalf("unset values should keep defaults, got %q", cfg.OpenAI.Model)
	}
}

func TestConfigFromEnv_BadTimeoutKeepsDefault(t *testing.T) {
	t.Setenv("FLASHLINGO_LLM_TIMEOUT", "soon")
	if got := ConfigFromEnv().Timeout; got != 30*time.Second {
		t.Fatalf("expected default timeout, got %s", got)
	}
}

func TestDiscoverConfig(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no provider without keys")
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENROUTER_API_KEY", "sk-or")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "anthropic" || cfg.Anthropic.APIKey != "sk-ant" {
		t.Fatalf("expected anthropic to win over openrouter, got %+v", cfg)
	}
}

func TestNewProvider_NoProvider(t *testing.T) {
	_, err := NewProvider(context.Background(), DefaultConfig(), nil)
	if !errors.Is(err, ErrNoProvider) {
		t.Fatalf("expected ErrNoProvider, got: %v", err)
	}
}

func TestNewProvider_MockIsWrapped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*RetryProvider); !ok {
		t.Fatalf("expected retry middleware outermost, got %T", p)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}

func TestResponse_Decode(t *testing.T) {
	resp := &Response{Content: json.RawMessage(`{"explanation":"Vowel sound."}`)}
	var out struct {
		Explanation string `json:"explanation"`
	}
	if err := resp.Decode(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Explanation != "Vowel sound." {
		t.Fatalf("unexpected explanation %q", out.Explanation)
	}

	bad := &Response{Content: json.RawMessage(`not json`)}
	var inv *ErrInvalidResponse
	if err := bad.Decode(&out); !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestFinalize(t *testing.T) {
	schema := explanationSchema("finalize-check")

	resp := &Response{Content: json.RawMessage(`plain text`), StopReason: "max_tokens"}
	if got, err := finalize(Request{}, resp); err != nil || got != resp {
		t.Fatalf("without a schema the response passes through, got %v", err)
	}

	var maxTok *ErrMaxTokensExceeded
	if _, err := finalize(Request{Schema: schema}, resp); !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %v", err)
	}

	ok := &Response{Content: json.RawMessage(`{"explanation":"fine"}`), StopReason: "end"}
	if _, err := finalize(Request{Schema: schema}, ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
