// @focus: #race { lane, wrap }
package race

import "fmt"

// Screen carries the terminal dimensions every component draws against
type Screen struct {
	Width  int
	Height int
}

// WrapThreshold is the leading-edge column at which a sprite of the given width starts wrapping
// At this offset the sprite has just left the right edge and reappears on the left
func (s Screen) WrapThreshold(spriteWidth int) int {
	return s.Width - spriteWidth + 2
}

// Segment is a horizontal slice of the sprite placed on the canvas
// Start and Len index into each sprite line, Col is the canvas column
type Segment struct {
	Col   int
	Start int
	Len   int
}

// Footprint is the set of segments drawn for one tick, identical for every sprite line
type Footprint []Segment

// Lane is the position state of one car within its row band
// It holds no terminal or timing state so stepping is deterministic
type Lane struct {
	Row      int // Top row of the band
	X        int // Leading offset within the current pass
	Overflow int // Column of the head segment while wrapping, 0 when not wrapping

	width       int
	spriteWidth int
	threshold   int
	prev        Footprint
}

// NewLane creates lane state for a sprite of spriteWidth on a screen width columns wide
func NewLane(row, width, spriteWidth int) (*Lane, error) {
	threshold := Screen{Width: width}.WrapThreshold(spriteWidth)
	if threshold <= 0 {
		return nil, fmt.Errorf("%w: terminal width %d too narrow for sprite width %d",
			ErrInvalidConfiguration, width, spriteWidth)
	}
	return &Lane{
		Row:         row,
		width:       width,
		spriteWidth: spriteWidth,
		threshold:   threshold,
	}, nil
}

// Threshold returns the wrap threshold for this lane
func (l *Lane) Threshold() int {
	return l.threshold
}

// Wrapping reports whether the sprite is currently split across both edges
func (l *Lane) Wrapping() bool {
	return l.Overflow > 0
}

// AtFinish reports whether the leading edge has reached the finish threshold
func (l *Lane) AtFinish() bool {
	return l.X >= l.threshold
}

// Step applies one tick of wrap bookkeeping
// Returns the footprint drawn last tick, to be erased, and the footprint to draw now
func (l *Lane) Step() (erase, draw Footprint) {
	if l.Overflow > 0 {
		if l.Overflow >= l.width {
			// Head segment has scrolled off, the tail is now the whole car
			l.Overflow = 0
			l.X = 0
		} else {
			l.Overflow++
		}
	}

	// On screens narrower than about twice the sprite, X passes the threshold
	// again mid-wrap; restarting the wrap there would never let it close
	if l.Overflow == 0 && l.X >= l.threshold {
		l.Overflow = l.X
		l.X = 0
	}

	erase = l.prev
	draw = l.footprint()
	l.prev = draw
	return erase, draw
}

// Advance moves the leading edge one column forward
func (l *Lane) Advance() {
	l.X++
}

// footprint describes where the sprite sits for the current X and Overflow
func (l *Lane) footprint() Footprint {
	if l.Overflow == 0 {
		return Footprint{{Col: l.X, Start: 0, Len: l.spriteWidth}}
	}

	// Split each line at spriteWidth-X: the last X columns (nose) come back at
	// the left edge while the rest keeps sliding off the right edge
	split := max(l.spriteWidth-l.X, 0)
	fp := make(Footprint, 0, 2)
	if tail := l.spriteWidth - split; tail > 0 {
		fp = append(fp, Segment{Col: 0, Start: split, Len: tail})
	}
	if split > 0 {
		fp = append(fp, Segment{Col: l.Overflow, Start: 0, Len: split})
	}
	return fp
}
