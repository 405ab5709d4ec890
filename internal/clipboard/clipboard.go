// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/Veraticus/parceiro/internal/common"
	"github.com/atotto/clipboard"
)

// Clipboard copies text somewhere the user can paste it from.
type Clipboard interface {
	Write(ctx context.Context, text string) error
}

// System is the OS clipboard.
type System struct{}

// Write implements Clipboard.
func (System) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return common.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", common.ErrClipboardUnavailable, err)
	}
	return nil
}

// Memory is an in-process clipboard used by tests and headless sessions.
type Memory struct {
	// Err, when set, is returned by every Write.
	Err  error
	text string
	mu   sync.Mutex
}

// Write implements Clipboard.
func (m *Memory) Write(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	return nil
}

// Text returns the last written text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
