package imdx9

import "fmt"

// FailureKind classifies the unrecoverable errors of the program.
type FailureKind int

const (
	// StartupFailure means the graphics factory or the device could not be created.
	StartupFailure FailureKind = iota
	// FramePrepFailure means the input of the next frame could not be prepared.
	FramePrepFailure
	// RenderFailure means the draw commands could not be turned into native draw calls.
	RenderFailure
)

func (k FailureKind) String() string {
	switch k {
	case StartupFailure:
		return "startup failure"
	case FramePrepFailure:
		return "frame preparation failure"
	case RenderFailure:
		return "render failure"
	}
	return fmt.Sprintf("FailureKind(%d)", int(k))
}

// FatalError is returned for every error the frame loop cannot recover from.
// Op names the native call which failed.
type FatalError struct {
	Kind FailureKind
	Op   string
	Err  error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

func fatal(kind FailureKind, op string, err error) error {
	return &FatalError{Kind: kind, Op: op, Err: err}
}
