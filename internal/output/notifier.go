package output

import "fmt"

// Level classifies a notification for presentation.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// Notifier receives transient user-facing messages. Fire-and-forget: the
// core never consumes a return value, and a sink that fails must not break
// the interaction loop.
type Notifier interface {
	Notify(level Level, message string)
}

// Console prints notifications to stdout.
type Console struct{}

func NewConsole() *Console {
	return &Console{}
}

func (c *Console) Notify(level Level, message string) {
	tag := map[Level]string{
		LevelSuccess: "✓",
		LevelError:   "✗",
		LevelInfo:    "i",
		LevelWarning: "!",
	}[level]
	fmt.Printf("[%s] %s\n", tag, message)
}

// Multi fans a notification out to several sinks.
type Multi []Notifier

func (m Multi) Notify(level Level, message string) {
	for _, n := range m {
		n.Notify(level, message)
	}
}

// Discard drops every notification; useful for library embedding.
type Discard struct{}

func (Discard) Notify(Level, string) {}
