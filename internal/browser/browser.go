// Package browser opens URLs in the user's default browser.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"sync"
)

// Navigator opens a URL outside the application.
type Navigator interface {
	Open(rawURL string) error
}

// System opens URLs with the platform's opener command.
type System struct {
	// GOOS overrides runtime.GOOS.
	GOOS string
}

// Open implements Navigator. It does not wait for the browser to exit.
func (s System) Open(rawURL string) error {
	if err := Validate(rawURL); err != nil {
		return err
	}

	name, args := Command(s.goos(), rawURL)
	cmd := exec.Command(name, args...) //nolint:gosec // URL validated above
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func (s System) goos() string {
	if s.GOOS != "" {
		return s.GOOS
	}
	return runtime.GOOS
}

// Command returns the opener invocation for a platform.
func Command(goos, rawURL string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{rawURL}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}
	default:
		return "xdg-open", []string{rawURL}
	}
}

// Validate accepts absolute http and https URLs only.
func Validate(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid url %q: unsupported scheme", rawURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid url %q: missing host", rawURL)
	}
	return nil
}

// Recorder remembers opened URLs instead of opening them.
type Recorder struct {
	Err    error
	opened []string
	mu     sync.Mutex
}

// Open implements Navigator.
func (r *Recorder) Open(rawURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.opened = append(r.opened, rawURL)
	return nil
}

// Opened returns the URLs opened so far.
func (r *Recorder) Opened() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.opened...)
}
