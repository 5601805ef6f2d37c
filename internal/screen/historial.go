package screen

// Historial is a bounded stack of previously visited screens. The oldest
// entry is dropped once the limit is reached.
type Historial struct {
	pila   []Screen
	limite int
}

func NewHistorial(limite int) *Historial {
	if limite < 1 {
		limite = 1
	}
	return &Historial{limite: limite}
}

// Push records a visited screen. Consecutive duplicates are collapsed so
// re-entering the current screen never grows the stack.
func (h *Historial) Push(s Screen) {
	if n := len(h.pila); n > 0 && h.pila[n-1] == s {
		return
	}
	h.pila = append(h.pila, s)
	if len(h.pila) > h.limite {
		h.pila = h.pila[1:]
	}
}

// Pop returns the most recently visited screen, or false when empty.
func (h *Historial) Pop() (Screen, bool) {
	n := len(h.pila)
	if n == 0 {
		return "", false
	}
	s := h.pila[n-1]
	h.pila = h.pila[:n-1]
	return s, true
}

func (h *Historial) Len() int { return len(h.pila) }
