package core

// Direction is the single horizontal intent the game consumes per tick.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Sign returns -1, 0 or 1 for left, none and right.
func (d Direction) Sign() float64 {
	switch d {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	default:
		return 0
	}
}

// InputSnapshot is an immutable view of device state for one tick.
// The platform builds it from keyboard and mouse events; games never see raw events.
type InputSnapshot struct {
	Left     bool    // A left key is currently held
	Right    bool    // A right key is currently held
	Pointer  bool    // The pointer (mouse button / touch) is down
	PointerX float64 // Pointer position in world units, valid when Pointer is set
	Pause    bool    // Pause toggle requested this tick
}

// ResolveDirection reduces a snapshot to one direction.
// An active pointer wins over keys: the player moves toward it, and stops once
// its center is within deadZone of the pointer. Opposing keys cancel out.
func ResolveDirection(in InputSnapshot, playerCenterX, deadZone float64) Direction {
	if in.Pointer {
		dx := in.PointerX - playerCenterX
		switch {
		case dx > deadZone:
			return DirRight
		case dx < -deadZone:
			return DirLeft
		default:
			return DirNone
		}
	}

	switch {
	case in.Left && !in.Right:
		return DirLeft
	case in.Right && !in.Left:
		return DirRight
	default:
		return DirNone
	}
}
