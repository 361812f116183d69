package update

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillan/threadline/internal/eventbus"
	"github.com/quillan/threadline/internal/models"
)

func TestEnterSendsToCore(t *testing.T) {
	eb := eventbus.NewEventBus()
	appModel := &models.AppModel{Input: "hello"}

	HandleKeyMsg(appModel, tea.KeyMsg{Type: tea.KeyEnter}, eb)

	assert.Empty(t, appModel.Input, "input cleared after send")
	select {
	case ev := <-eb.UIToCore():
		assert.Equal(t, eventbus.SendMessageEvent{Message: "hello"}, ev)
	default:
		t.Fatal("expected a send event")
	}
}

func TestEnterGatedWhileLoading(t *testing.T) {
	eb := eventbus.NewEventBus()
	appModel := &models.AppModel{Input: "hello", Loading: true}

	HandleKeyMsg(appModel, tea.KeyMsg{Type: tea.KeyEnter}, eb)

	assert.Equal(t, "hello", appModel.Input, "input kept while a send is outstanding")
	select {
	case <-eb.UIToCore():
		t.Fatal("no event may be sent while loading")
	default:
	}
}

func TestEnterIgnoresWhitespaceInput(t *testing.T) {
	eb := eventbus.NewEventBus()
	appModel := &models.AppModel{Input: "   "}

	HandleKeyMsg(appModel, tea.KeyMsg{Type: tea.KeyEnter}, eb)

	select {
	case <-eb.UIToCore():
		t.Fatal("whitespace input must not produce a send event")
	default:
	}
}

func TestTypingAndBackspace(t *testing.T) {
	eb := eventbus.NewEventBus()
	appModel := &models.AppModel{}

	HandleKeyMsg(appModel, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}, eb)
	HandleKeyMsg(appModel, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}}, eb)
	assert.Equal(t, "hi", appModel.Input)

	HandleKeyMsg(appModel, tea.KeyMsg{Type: tea.KeyBackspace}, eb)
	assert.Equal(t, "h", appModel.Input)
}

func TestTypingHandlesMultibyteRunes(t *testing.T) {
	eb := eventbus.NewEventBus()
	appModel := &models.AppModel{}

	HandleKeyMsg(appModel, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}}, eb)
	HandleKeyMsg(appModel, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, eb)
	HandleKeyMsg(appModel, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}}, eb)
	HandleKeyMsg(appModel, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'é'}}, eb)
	HandleKeyMsg(appModel, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, eb)
	HandleKeyMsg(appModel, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'日'}}, eb)
	assert.Equal(t, "café 日", appModel.Input)

	// Backspace removes whole characters, not single bytes.
	HandleKeyMsg(appModel, tea.KeyMsg{Type: tea.KeyBackspace}, eb)
	assert.Equal(t, "café ", appModel.Input)
	HandleKeyMsg(appModel, tea.KeyMsg{Type: tea.KeyBackspace}, eb)
	HandleKeyMsg(appModel, tea.KeyMsg{Type: tea.KeyBackspace}, eb)
	assert.Equal(t, "caf", appModel.Input)
}

func TestPastedRunesAppendTogether(t *testing.T) {
	eb := eventbus.NewEventBus()
	appModel := &models.AppModel{Input: "say "}

	HandleKeyMsg(appModel, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("héllo")}, eb)
	assert.Equal(t, "say héllo", appModel.Input)
}

func TestStateUpdateAppendsAndAnimates(t *testing.T) {
	eb := eventbus.NewEventBus()
	runner := NewRevealRunner(eb)
	defer runner.StopAll()
	appModel := &models.AppModel{}

	HandleCoreEvent(appModel, CoreEventMsg{Event: eventbus.StateUpdateEvent{
		Messages: []models.Message{
			{Content: "hi", Type: models.User},
		},
		IsProcessing: true,
	}}, runner)

	require.Len(t, appModel.Messages, 1)
	assert.Equal(t, "hi", appModel.Messages[0].Shown, "user messages show in full")
	assert.True(t, appModel.Loading)
	assert.Equal(t, "Processing", appModel.Status)

	HandleCoreEvent(appModel, CoreEventMsg{Event: eventbus.StateUpdateEvent{
		Messages: []models.Message{
			{Content: "hello there", Type: models.Assistant},
		},
		ThreadID: "T",
	}}, runner)

	require.Len(t, appModel.Messages, 2)
	assert.True(t, appModel.Messages[1].Revealing, "assistant messages reveal incrementally")
	assert.Empty(t, appModel.Messages[1].Shown)
	assert.Equal(t, "T", appModel.ThreadID)
	assert.Equal(t, "Ready", appModel.Status)

	// The runner posts frames for the new assistant message.
	select {
	case ev := <-eb.CoreToUI():
		frame, ok := ev.(eventbus.RevealFrameEvent)
		require.True(t, ok)
		assert.Equal(t, 1, frame.Index)
	case <-time.After(time.Second):
		t.Fatal("expected a reveal frame")
	}
}

func TestRevealFrameUpdatesDisplay(t *testing.T) {
	eb := eventbus.NewEventBus()
	runner := NewRevealRunner(eb)
	defer runner.StopAll()
	appModel := &models.AppModel{
		Messages: []models.Display{
			{Message: models.Message{Content: "hello", Type: models.Assistant}, Revealing: true},
		},
	}

	HandleCoreEvent(appModel, CoreEventMsg{Event: eventbus.RevealFrameEvent{
		Index: 0, Text: "he", Revealing: true,
	}}, runner)
	assert.Equal(t, "he", appModel.Messages[0].Shown)
	assert.True(t, appModel.Messages[0].Revealing)

	HandleCoreEvent(appModel, CoreEventMsg{Event: eventbus.RevealFrameEvent{
		Index: 0, Text: "hello", Revealing: false,
	}}, runner)
	assert.Equal(t, "hello", appModel.Messages[0].Shown)
	assert.False(t, appModel.Messages[0].Revealing)
}

func TestRevealFrameIgnoresOutOfRangeIndex(t *testing.T) {
	eb := eventbus.NewEventBus()
	runner := NewRevealRunner(eb)
	appModel := &models.AppModel{}

	HandleCoreEvent(appModel, CoreEventMsg{Event: eventbus.RevealFrameEvent{
		Index: 5, Text: "x", Revealing: true,
	}}, runner)

	assert.Empty(t, appModel.Messages)
}
