package session

import "time"

// Key identifies a command bound to a keyboard key. Unbound keys travel as
// KeyUnknown with the source key's name attached for diagnostics.
type Key struct {
	Command Command
	Name    string
}

// Command enumerates the keyboard commands the session understands.
type Command int

const (
	// CommandNone marks a key with no binding.
	CommandNone Command = iota
	// CommandToggleRun flips the running flag.
	CommandToggleRun
	// CommandReset stages a board reset for the next eligible tick.
	CommandReset
	// CommandToggleHUD shows or hides the status line.
	CommandToggleHUD
)

// KeyToggleRun is the run/pause command key.
var KeyToggleRun = Key{Command: CommandToggleRun, Name: "space"}

// KeyReset is the board reset command key.
var KeyReset = Key{Command: CommandReset, Name: "backspace"}

// KeyToggleHUD is the status line toggle key.
var KeyToggleHUD = Key{Command: CommandToggleHUD, Name: "tab"}

// KeyUnknown wraps an unbound key name.
func KeyUnknown(name string) Key { return Key{Command: CommandNone, Name: name} }

// Event is a discrete input delivered by the event loop. Exactly one of
// Tick, KeyPress or Click implements it.
type Event interface {
	isEvent()
}

// Tick carries the timestamp of a timer tick.
type Tick struct {
	Now time.Time
}

// KeyPress carries a pressed key.
type KeyPress struct {
	Key Key
}

// Click carries the screen coordinates of a mouse button press.
type Click struct {
	X float64
	Y float64
}

func (Tick) isEvent()     {}
func (KeyPress) isEvent() {}
func (Click) isEvent()    {}


