// Package router keeps the stack of viewer screens.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lessonbook/internal/screen"
)

// PushScreenMsg opens a screen above the current one, such as a modal.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the top screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the top screen, e.g. loading -> lesson.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router manages a stack of screens. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
}

func New(initial screen.Screen) *Router {
	return &Router{stack: []screen.Screen{initial}}
}

// Push adds s on top and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen unless it is the last one.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack[len(r.stack)-1] = nil
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Replace swaps the top screen for s and returns its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Update handles navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// Broadcast delivers msg to every screen in the stack, bottom first, and
// batches their commands. Background results addressed to a covered
// screen use it.
func (r *Router) Broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.stack))
	for i, s := range r.stack {
		updated, cmd := s.Update(msg)
		r.stack[i] = updated
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
