// Package handler provides the result type key handlers return and a
// chain that tries them in order.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result is the outcome of one handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled lets the next handler in the chain try.
var NotHandled = Result{}

// HandledNoCmd stops the chain without a command.
var HandledNoCmd = Result{Handled: true}

// Handled stops the chain with cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// If turns a "did something" flag into a Result.
func If(ok bool) Result {
	if ok {
		return HandledNoCmd
	}
	return NotHandled
}

// Handler attempts to handle the current input.
type Handler func() Result

// Chain runs handlers in order until one handles the input.
func Chain(handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
