package imdx9

import "fmt"

// FrameState is the position of the frame loop within the current frame.
type FrameState int

const (
	Idle FrameState = iota
	FrameBegun
	SceneActive
	Presented
	Closing
)

func (s FrameState) String() string {
	switch s {
	case Idle:
		return "idle"
	case FrameBegun:
		return "frame begun"
	case SceneActive:
		return "scene active"
	case Presented:
		return "presented"
	case Closing:
		return "closing"
	}
	return fmt.Sprintf("FrameState(%d)", int(s))
}
