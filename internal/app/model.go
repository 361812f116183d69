package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillan/threadline/internal/dispatcher"
	"github.com/quillan/threadline/internal/eventbus"
	"github.com/quillan/threadline/internal/models"
	"github.com/quillan/threadline/internal/update"
	"github.com/quillan/threadline/ui/components"
)

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
	eventBus   *eventbus.EventBus
	runner     *update.RevealRunner
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		m.dispatcher.ListenForUIEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent, m.runner)
		return m, tea.Batch(cmd, m.dispatcher.ListenForUIEvents())
	}

	cmd := update.HandleUpdate(&m.appModel, msg, m.eventBus, m.runner)
	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder

	b.WriteString(components.RenderMessages(m.appModel.Messages, m.appModel.Width))
	b.WriteString(components.RenderInput(m.appModel.Input, m.appModel.Loading, m.appModel.Width))
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(m.appModel.Status, m.appModel.ThreadID, m.appModel.Loading, m.appModel.LoadingDots, m.appModel.Width))

	return b.String()
}
