package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/Veraticus/parceiro/internal/cli"
)

// Console prints notifications as styled lines.
type Console struct {
	w  io.Writer
	mu sync.Mutex
}

// NewConsole creates a console notifier writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Notify implements Notifier.
func (c *Console) Notify(n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	title := cli.SuccessStyle
	if n.Severity == SeverityDestructive {
		title = cli.ErrorStyle
	}

	if n.Description == "" {
		_, _ = fmt.Fprintln(c.w, title.Render(n.Title))
		return
	}
	_, _ = fmt.Fprintf(c.w, "%s %s\n", title.Render(n.Title), cli.SubtleStyle.Render(n.Description))
}
