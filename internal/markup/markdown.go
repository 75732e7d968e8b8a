package markup

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// md keeps raw HTML in the output: tag helper elements inside markdown
// sources are raw HTML and must survive rendering to be bindable.
var md = goldmark.New(
	goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
)

// RenderMarkdown renders a markdown source to HTML for candidate extraction.
func RenderMarkdown(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return buf.Bytes(), nil
}
