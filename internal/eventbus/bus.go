// Package eventbus carries typed events between the UI and the core service
// over buffered channels. Sends never block: a full channel is reported as an
// error instead of stalling either loop.
package eventbus

import (
	"errors"
	"time"

	"github.com/quillan/threadline/internal/models"
)

// UIEvent represents events sent from UI to Core
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from Core to UI
type CoreEvent interface {
	CoreEvent()
}

// SendMessageEvent - UI requests core to send a message
type SendMessageEvent struct {
	Message string
}

func (e SendMessageEvent) UIEvent() {}

// StateUpdateEvent - Core pushes state changes to UI. Messages holds only the
// entries appended since the previous push.
type StateUpdateEvent struct {
	Messages     []models.Message
	IsProcessing bool
	ThreadID     string
	Error        error
}

func (e StateUpdateEvent) CoreEvent() {}

// RevealFrameEvent - a reveal animation advanced for the message at Index.
type RevealFrameEvent struct {
	Index     int
	Text      string
	Revealing bool
}

func (e RevealFrameEvent) CoreEvent() {}

// BusError describes a failed event delivery.
type BusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e BusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

// EventBus handles communication between UI and Core
type EventBus struct {
	uiToCore      chan UIEvent
	coreToUI      chan CoreEvent
	errorCallback func(BusError)
}

func NewEventBus() *EventBus {
	return &EventBus{
		uiToCore: make(chan UIEvent, 100),
		coreToUI: make(chan CoreEvent, 100),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(BusError)) {
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(operation string, err error) {
	if eb.errorCallback != nil {
		eb.errorCallback(BusError{
			Operation: operation,
			Err:       err,
			Timestamp: time.Now(),
		})
	}
}

func (eb *EventBus) SendToCore(event UIEvent) error {
	select {
	case eb.uiToCore <- event:
		return nil
	default:
		err := errors.New("UI to Core channel is full")
		eb.reportError("SendToCore", err)
		return err
	}
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	select {
	case eb.coreToUI <- event:
		return nil
	default:
		err := errors.New("Core to UI channel is full")
		eb.reportError("SendToUI", err)
		return err
	}
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

func (eb *EventBus) Close() {
	close(eb.uiToCore)
	close(eb.coreToUI)
}
