package update

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillan/threadline/internal/eventbus"
	"github.com/quillan/threadline/internal/models"
)

// HandleKeyMsg handles keyboard input. Sends are gated while a request is
// outstanding; whitespace-only input is ignored entirely.
func HandleKeyMsg(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return tea.Quit
	case "enter":
		if appModel.Loading {
			appModel.Status = "Waiting for reply"
			return nil
		}
		if strings.TrimSpace(appModel.Input) == "" {
			return nil
		}
		if err := eb.SendToCore(eventbus.SendMessageEvent{Message: appModel.Input}); err != nil {
			appModel.Status = "Error sending message: " + err.Error()
			return nil
		}

		// Only manage local UI state - clear input
		appModel.Input = ""
	case "backspace":
		if runes := []rune(appModel.Input); len(runes) > 0 {
			appModel.Input = string(runes[:len(runes)-1])
		}
	default:
		if keyMsg.Type == tea.KeyRunes || keyMsg.Type == tea.KeySpace {
			appModel.Input += string(keyMsg.Runes)
		}
	}
	return nil
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg, runner *RevealRunner) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		for _, msg := range event.Messages {
			display := models.Display{Message: msg}
			if msg.Type == models.Assistant {
				// New assistant replies reveal incrementally.
				display.Revealing = true
			} else {
				display.Shown = msg.Content
			}
			appModel.Messages = append(appModel.Messages, display)
			if msg.Type == models.Assistant {
				runner.Start(len(appModel.Messages)-1, msg.Content)
			}
		}

		appModel.Loading = event.IsProcessing
		appModel.ThreadID = event.ThreadID

		if event.Error != nil {
			appModel.Status = "Error: " + event.Error.Error()
		} else if event.IsProcessing {
			appModel.Status = "Processing"
		} else {
			appModel.Status = "Ready"
		}

	case eventbus.RevealFrameEvent:
		if event.Index >= 0 && event.Index < len(appModel.Messages) {
			appModel.Messages[event.Index].Shown = event.Text
			appModel.Messages[event.Index].Revealing = event.Revealing
		}
	}

	return nil
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

func HandleTickMsg(appModel *models.AppModel) tea.Cmd {
	// Only handle UI animations - loading dots
	if appModel.Loading {
		appModel.LoadingDots = (appModel.LoadingDots + 1) % 4
	}
	return TickCmd()
}
