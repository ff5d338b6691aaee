package sim

// EdgeDetector turns a level signal ("jump is down") into rising edges.
type EdgeDetector struct {
	held bool
}

// Rising reports whether pressed is true now and was false on the previous
// call.
func (e *EdgeDetector) Rising(pressed bool) bool {
	rising := pressed && !e.held
	e.held = pressed
	return rising
}

// InputGate admits a jump on a rising edge of the jump control while the
// session is still running.
type InputGate struct {
	edge EdgeDetector
}

// Admit reports whether a jump should be applied. The ended flag is checked
// first; an ended session does not consume the edge.
func (g *InputGate) Admit(pressed, ended bool) bool {
	if ended {
		return false
	}
	return g.edge.Rising(pressed)
}
