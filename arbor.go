package arbor

// Vec2 is a 2D vector used for positions, offsets and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Size returns the extent of r along axis.
func (r Rect) Size(axis Axis) float64 {
	if axis == AxisHorizontal {
		return r.Width
	}
	return r.Height
}

// Pos returns the origin of r along axis.
func (r Rect) Pos(axis Axis) float64 {
	if axis == AxisHorizontal {
		return r.X
	}
	return r.Y
}

// setAxis writes pos and size along axis.
func (r *Rect) setAxis(axis Axis, pos, size float64) {
	if axis == AxisHorizontal {
		r.X, r.Width = pos, size
		return
	}
	r.Y, r.Height = pos, size
}

// Axis selects the horizontal or vertical layout axis.
type Axis uint8

const (
	AxisHorizontal Axis = iota // x / width
	AxisVertical               // y / height
)

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	return 1 - a
}

// EventType identifies a kind of pointer event.
type EventType uint8

const (
	EventPointerDown  EventType = iota // fires when a pointer button is pressed
	EventPointerUp                     // fires when a pointer button is released
	EventPointerMove                   // fires when the pointer moves (hover, no button)
	EventClick                         // fires on press then release over the same node
	EventDragStart                     // fires when movement exceeds the drag dead zone
	EventDrag                          // fires each frame while dragging
	EventDragEnd                       // fires when the pointer is released after dragging
	EventPointerEnter                  // fires when a node joins the pointer's hovered set
	EventPointerExit                   // fires when a node leaves the pointer's hovered set
	eventTypeCount
)

var eventTypeNames = [...]string{
	EventPointerDown:  "down",
	EventPointerUp:    "up",
	EventPointerMove:  "move",
	EventClick:        "click",
	EventDragStart:    "dragstart",
	EventDrag:         "drag",
	EventDragEnd:      "dragend",
	EventPointerEnter: "enter",
	EventPointerExit:  "exit",
}

// String returns a short lowercase name such as "enter" or "dragstart".
func (e EventType) String() string {
	if int(e) < len(eventTypeNames) {
		return eventTypeNames[e]
	}
	return "unknown"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
