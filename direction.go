package arbor

// MoveDirection is a four-way direction derived from a 2D vector.
type MoveDirection uint8

const (
	MoveNone MoveDirection = iota
	MoveLeft
	MoveUp
	MoveRight
	MoveDown
)

var moveDirectionNames = [...]string{
	MoveNone:  "none",
	MoveLeft:  "left",
	MoveUp:    "up",
	MoveRight: "right",
	MoveDown:  "down",
}

// String returns the lowercase direction name.
func (d MoveDirection) String() string {
	if int(d) < len(moveDirectionNames) {
		return moveDirectionNames[d]
	}
	return "unknown"
}

// Classify maps (x, y) to a direction, with y pointing up. Vectors shorter
// than deadzone give MoveNone. The horizontal axis wins only when |x| is
// strictly greater than |y|, so an exact diagonal classifies as vertical.
func Classify(x, y, deadzone float64) MoveDirection {
	if x*x+y*y < deadzone*deadzone {
		return MoveNone
	}
	if abs(x) > abs(y) {
		if x > 0 {
			return MoveRight
		}
		return MoveLeft
	}
	if y > 0 {
		return MoveUp
	}
	return MoveDown
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
