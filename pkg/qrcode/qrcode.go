package qrcode

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	qr "github.com/skip2/go-qrcode"
)

// Generator 地点二维码生成接口
// 输入地点编码，返回可访问的图片 URL；Service 层不关心落盘细节
type Generator interface {
	Generate(code string) (string, error)
}

// FileGenerator 将二维码 PNG 写入本地目录，通过静态路由对外暴露
type FileGenerator struct {
	dir     string
	size    int
	baseURL string
}

// NewFileGenerator 创建 FileGenerator，确保输出目录存在
func NewFileGenerator(dir string, size int, baseURL string) (*FileGenerator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建二维码目录失败: %w", err)
	}
	return &FileGenerator{
		dir:     dir,
		size:    size,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Generate 生成编码对应的二维码图片并返回 URL
// 二维码内容即地点编码本身，客户端扫码后原样提交
func (g *FileGenerator) Generate(code string) (string, error) {
	filename := code + ".png"
	path := filepath.Join(g.dir, filename)

	if err := qr.WriteFile(code, qr.Medium, g.size, path); err != nil {
		return "", fmt.Errorf("生成二维码失败: %w", err)
	}

	return g.baseURL + "/static/qr/" + filename, nil
}
