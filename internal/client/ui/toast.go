package ui

import (
	"fmt"
	"io"
	"sync"
)

// Notifier shows transient messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// Toaster prints notifications to a writer. It is safe for concurrent use;
// list pipelines report from their fetch goroutines.
type Toaster struct {
	mu sync.Mutex
	w  io.Writer
	st Styles
}

func NewToaster(w io.Writer, st Styles) *Toaster {
	return &Toaster{w: w, st: st}
}

func (t *Toaster) Success(msg string) { t.print(t.st.Success.Render("✔ ") + msg) }
func (t *Toaster) Error(msg string)   { t.print(t.st.Error.Render("✖ ") + msg) }
func (t *Toaster) Info(msg string)    { t.print(t.st.Info.Render("ℹ ") + msg) }

func (t *Toaster) print(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.w, line)
}
