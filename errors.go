package anchor

import (
	"errors"
	"fmt"
)

var (
	// ErrStackMismatch reports a Push/Pop or Begin/End pair left unbalanced
	// at the end of a frame.
	ErrStackMismatch = errors.New("anchor: unbalanced stack")

	// ErrNotInFrame reports a widget or frame call made outside
	// NewFrame/EndFrame.
	ErrNotInFrame = errors.New("anchor: not in a frame")
)

// AssertionError is the panic value raised for contract violations when
// Config.DebugAsserts is set.
type AssertionError struct {
	Msg  string
	Args []any
}

func (e *AssertionError) Error() string {
	if len(e.Args) == 0 {
		return "anchor: assertion failed: " + e.Msg
	}
	return fmt.Sprintf("anchor: assertion failed: %s %v", e.Msg, e.Args)
}

// assert checks a caller contract. A failure panics in debug mode and is
// logged otherwise; the return value lets callers bail out.
func (ctx *Context) assert(cond bool, msg string, args ...any) bool {
	if cond {
		return true
	}
	if ctx.Config.DebugAsserts {
		panic(&AssertionError{Msg: msg, Args: args})
	}
	ctx.Logger.Error(msg, args...)
	return false
}

// recordStackError keeps err for StackErrors and routes it through the
// assertion policy.
func (ctx *Context) recordStackError(err error) {
	ctx.stackErrs = append(ctx.stackErrs, err)
	ctx.assert(false, err.Error())
}

// StackErrors returns every stack mismatch recorded by the last EndFrame,
// or nil.
func (ctx *Context) StackErrors() error {
	return errors.Join(ctx.stackErrs...)
}

// stackError wraps ErrStackMismatch for a pop with nothing to pop.
func stackError(op string, w *Window) error {
	return fmt.Errorf("%s in %q: %w", op, windowName(w), ErrStackMismatch)
}
