package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	rendererMu    sync.Mutex
	renderer      *glamour.TermRenderer
	rendererWidth int
)

// RenderMarkdown renders a settled assistant reply as terminal markdown.
// On any renderer failure the raw text is returned unchanged.
func RenderMarkdown(text string, width int) string {
	wrap := width - 8
	if wrap < 20 {
		wrap = 20
	}

	rendererMu.Lock()
	defer rendererMu.Unlock()

	if renderer == nil || rendererWidth != wrap {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return text
		}
		renderer = r
		rendererWidth = wrap
	}

	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
