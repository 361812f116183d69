package models

// Display is a transcript message plus its current on-screen reveal state.
// User and program messages are shown in full immediately; assistant messages
// start empty and grow as the reveal animation advances.
type Display struct {
	Message
	Shown     string // prefix of Content currently visible
	Revealing bool   // true while Shown is still growing
}

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Messages    []Display // Transcript as currently displayed
	Input       string    // User input field
	Status      string    // Status bar text
	Loading     bool      // A send is outstanding; input is gated
	LoadingDots int       // Animation counter for loading dots
	Width       int       // Terminal width
	Height      int       // Terminal height
	ThreadID    string    // Current conversation thread id ("" = new)
}
