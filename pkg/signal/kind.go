// Package signal defines the data kinds carried between node ports.
package signal

import "fmt"

// Kind is the data kind a port carries. The set is closed.
type Kind uint8

const (
	// Midi carries note and controller events
	Midi Kind = iota
	// Audio carries sample streams
	Audio
)

// RGB is a display colour
type RGB struct {
	R, G, B uint8
}

// Hex returns the colour as #RRGGBB
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

type kindInfo struct {
	name  string
	color RGB
}

var kindTable = [...]kindInfo{
	Midi:  {name: "MIDI", color: RGB{R: 255, G: 215, B: 0}},  // gold
	Audio: {name: "Audio", color: RGB{R: 0, G: 191, B: 255}}, // deep sky blue
}

// Kinds returns every kind in declaration order
func Kinds() []Kind {
	return []Kind{Midi, Audio}
}

// Valid reports whether k is a member of the closed set
func (k Kind) Valid() bool {
	return int(k) < len(kindTable)
}

// Name returns the display name of the kind
func (k Kind) Name() string {
	if !k.Valid() {
		return "UNKNOWN"
	}
	return kindTable[k].name
}

// String implements fmt.Stringer
func (k Kind) String() string {
	return k.Name()
}

// Color returns the display colour used for ports and wires of this kind
func (k Kind) Color() RGB {
	if !k.Valid() {
		return RGB{R: 128, G: 128, B: 128}
	}
	return kindTable[k].color
}

// CompatibleWith reports whether a wire may join ports of kinds k and other.
// There is no implicit coercion between kinds.
func (k Kind) CompatibleWith(other Kind) bool {
	return k == other
}
