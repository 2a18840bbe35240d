package qrcode

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileGenerator_Generate(t *testing.T) {
	dir := t.TempDir()
	g, err := NewFileGenerator(dir, 128, "http://localhost:8080/")
	if err != nil {
		t.Fatalf("NewFileGenerator 失败: %v", err)
	}

	url, err := g.Generate("loc-code-abc123")
	if err != nil {
		t.Fatalf("Generate 失败: %v", err)
	}

	if url != "http://localhost:8080/static/qr/loc-code-abc123.png" {
		t.Errorf("URL 不符合预期: %s", url)
	}

	info, err := os.Stat(filepath.Join(dir, "loc-code-abc123.png"))
	if err != nil {
		t.Fatalf("PNG 文件应已落盘: %v", err)
	}
	if info.Size() == 0 {
		t.Error("PNG 文件不应为空")
	}
}

func TestFileGenerator_TrimsBaseURLSlash(t *testing.T) {
	g, err := NewFileGenerator(t.TempDir(), 128, "http://example.com///")
	if err != nil {
		t.Fatalf("NewFileGenerator 失败: %v", err)
	}

	url, err := g.Generate("c1")
	if err != nil {
		t.Fatalf("Generate 失败: %v", err)
	}
	if strings.Contains(url, "///") {
		t.Errorf("URL 不应包含多余斜杠: %s", url)
	}
}
