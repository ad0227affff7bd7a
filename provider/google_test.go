package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseGoogleResponse(t *testing.T) {
	body := `[[["configuration file","配置文件",null,null,1]],null,"zh-CN"]`

	got, err := parseGoogleResponse([]byte(body))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got != "configuration file" {
		t.Errorf("Expected %q, got %q", "configuration file", got)
	}
}

func TestParseGoogleResponse_MultipleSegments(t *testing.T) {
	body := `[[["load ","加载",null],["configuration","配置",null]],null,"zh-CN"]`

	got, err := parseGoogleResponse([]byte(body))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got != "load configuration" {
		t.Errorf("Expected segments concatenated, got %q", got)
	}
}

func TestParseGoogleResponse_Invalid(t *testing.T) {
	if _, err := parseGoogleResponse([]byte("<html>blocked</html>")); err == nil {
		t.Error("Expected error for non-JSON response")
	}
}

func TestGoogleProvider_TranslateBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		resp := [][]any{{[]any{"translated:" + q, q}}}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	p := NewGoogleProvider(GoogleConfig{Pause: time.Millisecond})
	p.endpoint = srv.URL

	got, err := p.TranslateBatch(context.Background(), []string{"配置", "结果"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got["配置"] != "translated:配置" || got["结果"] != "translated:结果" {
		t.Errorf("Unexpected results: %v", got)
	}
}

func TestGoogleProvider_ServerErrorIsPartial(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewGoogleProvider(GoogleConfig{Pause: time.Millisecond})
	p.endpoint = srv.URL

	if _, err := p.TranslateBatch(context.Background(), []string{"配置"}); err == nil {
		t.Error("Expected error when every phrase fails")
	}
}
