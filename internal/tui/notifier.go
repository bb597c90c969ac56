package tui

import "sync"

// Toast is one user-facing notification raised by a crud controller.
type Toast struct {
	Text    string
	IsError bool
}

// toastNotifier buffers controller notifications so the screen can drain
// them after each synchronous controller call.
type toastNotifier struct {
	mu     sync.Mutex
	toasts []Toast
}

func (n *toastNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, Toast{Text: message})
}

func (n *toastNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, Toast{Text: message, IsError: true})
}

func (n *toastNotifier) Drain() []Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.toasts
	n.toasts = nil
	return out
}
