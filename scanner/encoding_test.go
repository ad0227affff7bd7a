package scanner

import (
	"strings"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestDecode_UTF8(t *testing.T) {
	text, name, err := Decode([]byte("加载配置"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if name != "utf-8" {
		t.Errorf("Expected utf-8, got %q", name)
	}
	if text != "加载配置" {
		t.Errorf("Unexpected text: %q", text)
	}
}

func TestDecode_StripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...)

	text, _, err := Decode(data)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if text != "hello" {
		t.Errorf("Expected BOM stripped, got %q", text)
	}
}

func TestDecode_GBK(t *testing.T) {
	original := "配置文件加载失败"
	encoded, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(original))
	if err != nil {
		t.Fatal(err)
	}

	text, name, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if text != original {
		t.Errorf("Expected %q, got %q", original, text)
	}
	if name != "gbk" {
		t.Errorf("Expected gbk, got %q", name)
	}
}

func TestDecode_SingleByteFallback(t *testing.T) {
	// 0xFF is not a valid lead byte in any of the multibyte candidates, so
	// decoding lands on the single-byte charsets.
	data := append([]byte("caf"), 0xFF)

	text, name, err := Decode(data)
	if err != nil {
		t.Fatalf("Expected single-byte fallback to succeed, got: %v", err)
	}
	if !strings.HasPrefix(text, "caf") {
		t.Errorf("Unexpected text: %q", text)
	}
	if name != "iso-8859-1" && name != "windows-1252" {
		t.Errorf("Expected a single-byte charset, got %q", name)
	}
}
