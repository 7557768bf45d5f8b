package events

// Type identifies a pad event
type Type int

const (
	// TypeRune appends a typed character to the pad text
	// Trigger: printable key press | Consumer: render loop
	TypeRune Type = iota

	// TypeScrollUp moves the viewport up one line
	// Trigger: Up arrow | Consumer: render loop
	TypeScrollUp

	// TypeScrollDown moves the viewport down one line
	// Trigger: Down arrow | Consumer: render loop
	TypeScrollDown

	// TypeLineBreak ends the current line
	// Trigger: Enter | Consumer: render loop
	TypeLineBreak

	// TypeExit requests shutdown of both units
	// Trigger: 'q' | Consumer: render loop
	TypeExit
)

// Event is a single decoded pad instruction. Values are immutable once
// constructed. Rune is meaningful only for TypeRune.
type Event struct {
	Type Type
	Rune rune
}
