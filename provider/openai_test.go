package provider

import (
	"errors"
	"testing"

	"github.com/hanscan/hanscan"
)

func TestOpenAIProvider_ParseResponse_Object(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	content := `{"配置": "configuration", "结果": "result"}`
	got, err := p.parseResponse(content, []string{"配置", "结果"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got["配置"] != "configuration" || got["结果"] != "result" {
		t.Errorf("Unexpected result: %v", got)
	}
}

func TestOpenAIProvider_ParseResponse_NestedObject(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	content := `{"translations": {"配置": "configuration"}}`
	got, err := p.parseResponse(content, []string{"配置"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got["配置"] != "configuration" {
		t.Errorf("Unexpected result: %v", got)
	}
}

func TestOpenAIProvider_ParseResponse_Array(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	content := `["configuration", "result"]`
	got, err := p.parseResponse(content, []string{"配置", "结果"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got["配置"] != "configuration" || got["结果"] != "result" {
		t.Errorf("Unexpected result: %v", got)
	}
}

func TestOpenAIProvider_ParseResponse_CountMismatch(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	_, err := p.parseResponse(`["only one"]`, []string{"配置", "结果"})
	var cm *hanscan.CountMismatchError
	if !errors.As(err, &cm) {
		t.Fatalf("Expected CountMismatchError, got %v", err)
	}
	if cm.Expected != 2 || cm.Got != 1 {
		t.Errorf("Unexpected counts: %+v", cm)
	}
}

func TestOpenAIProvider_ParseResponse_Invalid(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	if _, err := p.parseResponse("not json at all", []string{"配置"}); err == nil {
		t.Error("Expected error for invalid response")
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("rate limit exceeded"), true},
		{errors.New("request timeout"), true},
		{errors.New("connection refused"), true},
		{errors.New("status code 429"), true},
		{errors.New("invalid api key"), false},
		{errors.New("bad request"), false},
	}

	for _, tt := range tests {
		if got := isRetryableError(tt.err); got != tt.want {
			t.Errorf("isRetryableError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestOpenAIProvider_Defaults(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	if p.model != "gpt-4o-mini" {
		t.Errorf("Expected default model, got %q", p.model)
	}
	if p.temperature != 0.3 {
		t.Errorf("Expected default temperature, got %v", p.temperature)
	}
}
