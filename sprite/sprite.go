// Package sprite holds the fixed vehicle glyph block drawn in every lane.
package sprite

import (
	"errors"
	"fmt"
)

const (
	// Width is the column count of every sprite line, including the leading blank column
	Width = 34
	// Height is the number of lines in the glyph block
	Height = 6

	// idLine and idColumn locate the identifier digit inside the template
	idLine   = 3
	idColumn = 20
)

// ErrInvalidID is returned for identifiers that do not fit the single digit slot
var ErrInvalidID = errors.New("sprite identifier must be a single digit")

// template is the car body; the digit slot on idLine holds a placeholder
var template = [Height]string{
	"    -           __                ",
	"  --          ~( @\\   \\           ",
	" ---   _________]_[__/_>________  ",
	"      /  ____ \\ <>  ?  |  ____  \\ ",
	"     =\\_/ __ \\_\\_______|_/ __ \\__D",
	"         (__)             (__)    ",
}

// Sprite is an immutable glyph block carrying its identifier digit
type Sprite struct {
	id    int
	lines [Height]string
}

// New builds the sprite for id, which must be in [0, 9]
func New(id int) (Sprite, error) {
	if id < 0 || id > 9 {
		return Sprite{}, fmt.Errorf("%w: got %d", ErrInvalidID, id)
	}

	s := Sprite{id: id, lines: template}
	line := []byte(s.lines[idLine])
	line[idColumn] = byte('0' + id)
	s.lines[idLine] = string(line)
	return s, nil
}

// ID returns the embedded identifier digit
func (s Sprite) ID() int {
	return s.id
}

// Line returns line i of the block
func (s Sprite) Line(i int) string {
	return s.lines[i]
}

// Lines returns a copy of all lines, top to bottom
func (s Sprite) Lines() []string {
	out := make([]string, Height)
	copy(out, s.lines[:])
	return out
}

// Width returns the block width in columns
func (s Sprite) Width() int {
	return Width
}

// Height returns the block height in rows
func (s Sprite) Height() int {
	return Height
}
