package components

import (
	"strings"

	"github.com/quillan/threadline/ui/styles"
)

func RenderStatus(status string, threadID string, loading bool, loadingDots int, width int) string {
	statusStyle := styles.StatusStyle(width)

	statusContent := status
	if loading {
		statusContent += strings.Repeat(".", loadingDots)
	}
	if threadID != "" {
		statusContent += "  |  thread " + threadID
	}

	return statusStyle.Render(statusContent)
}
