package world

// Door is a doorway between two rooms. Generation always places doors closed.
type Door struct {
	Open bool
}

// NewDoor creates a new closed door
func NewDoor() *Door {
	return &Door{}
}

// ConnectsToWall reports whether the door is drawn as part of the wall line.
// Only closed doors connect.
func (d *Door) ConnectsToWall() bool {
	return d != nil && !d.Open
}

// Symbol returns the dump symbol for the door.
func (d *Door) Symbol() rune {
	if d != nil && d.Open {
		return '/'
	}
	return '+'
}

// Toggle opens a closed door or closes an open one, returning the new state.
func (d *Door) Toggle() bool {
	d.Open = !d.Open
	return d.Open
}

// OpenDoor opens the door
func (d *Door) OpenDoor() {
	d.Open = true
}

// CloseDoor closes the door
func (d *Door) CloseDoor() {
	d.Open = false
}
