package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// ConsoleSink renders notifications to a terminal.
type ConsoleSink struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleSink writes to out.
func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

// Notify implements Notifier.
func (s *ConsoleSink) Notify(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var icon string
	switch n.Level {
	case LevelSuccess:
		icon = color.New(color.FgGreen).Sprint("✓")
	case LevelError:
		icon = color.New(color.FgRed).Sprint("✗")
	case LevelWarning:
		icon = color.New(color.FgYellow).Sprint("⚠")
	default:
		icon = color.New(color.FgCyan).Sprint("•")
	}

	if n.Category != "" {
		fmt.Fprintf(s.out, "%s [%s] %s\n", icon, n.Category, n.Message)
		return
	}
	fmt.Fprintf(s.out, "%s %s\n", icon, n.Message)
}
