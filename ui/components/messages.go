package components

import (
	"strings"

	"github.com/quillan/threadline/internal/models"
	"github.com/quillan/threadline/ui/styles"
)

const revealCursor = "▌"

func RenderMessages(messages []models.Display, width int) string {
	var b strings.Builder

	userStyle := styles.UserStyle()
	assistantStyle := styles.AssistantStyle()
	programStyle := styles.ProgramStyle()
	badgeStyle := styles.ToolBadgeStyle()
	cursorStyle := styles.CursorStyle()

	for _, msg := range messages {
		switch msg.Type {
		case models.User:
			b.WriteString(userStyle.Render("You: "+msg.Shown) + "\n\n")
		case models.Assistant:
			var body strings.Builder
			if msg.ToolName != "" {
				body.WriteString(badgeStyle.Render("tool: "+msg.ToolName) + "\n")
			}
			if msg.Revealing {
				body.WriteString(msg.Shown + cursorStyle.Render(revealCursor))
			} else {
				// Settled replies get full markdown treatment.
				body.WriteString(RenderMarkdown(msg.Shown, width))
			}
			b.WriteString(assistantStyle.Render(body.String()) + "\n\n")
		case models.Program:
			b.WriteString(programStyle.Render(msg.Shown) + "\n\n")
		}
	}

	return b.String()
}
