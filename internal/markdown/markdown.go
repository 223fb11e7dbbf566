// Package markdown formats markdown text for terminal output.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

var (
	rendererMu sync.Mutex
	renderers  = map[int]*glamour.TermRenderer{}
)

// Render formats markdown for a terminal of the given width. Rendering
// failures fall back to the input text; empty input renders as "".
func Render(input string, width int) string {
	value := normalizeNewlines(input)
	value = strings.TrimRight(value, "\r\n")
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}

	renderer := termRenderer(width)
	if renderer == nil {
		return value
	}
	formatted, err := renderer.Render(value)
	if err != nil {
		return value
	}
	return strings.TrimRight(formatted, "\r\n")
}

// Renderers are cached per width; detail views re-render at each resize.
func termRenderer(width int) *glamour.TermRenderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}

func normalizeNewlines(value string) string {
	if value == "" {
		return value
	}
	value = strings.ReplaceAll(value, "\r\n", "\n")
	return strings.ReplaceAll(value, "\r", "\n")
}
