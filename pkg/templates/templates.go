// Package templates enumerates the node kinds an editor can create and the
// ports each one installs on a new node.
package templates

import (
	"fmt"
	"strings"

	"github.com/dd0wney/harmonia/pkg/signal"
)

// Template is a creatable node kind
type Template uint8

const (
	MidiSource Template = iota
	SoundSource
	Effect
	Mixer
)

// Direction of a port relative to its node
type Direction uint8

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Output {
		return "output"
	}
	return "input"
}

// InputPolicy governs whether an unconnected input accepts a locally set value
type InputPolicy uint8

const (
	ConnectionOnly InputPolicy = iota
	AllowConstant
)

// PortSpec declares one port of a node under construction
type PortSpec struct {
	Label     string
	Kind      signal.Kind
	Direction Direction
	Policy    InputPolicy
	Required  bool
}

// NodeData is the payload a template attaches to the nodes it creates
type NodeData struct {
	Template Template
	Title    string
}

type descriptor struct {
	name    string
	label   string
	menu    string
	inputs  []PortSpec
	outputs []PortSpec
}

func in(label string, kind signal.Kind) PortSpec {
	return PortSpec{Label: label, Kind: kind, Direction: Input, Policy: ConnectionOnly, Required: true}
}

func out(label string, kind signal.Kind) PortSpec {
	return PortSpec{Label: label, Kind: kind, Direction: Output}
}

// registry is the authoritative list. Adding a template means adding one
// constant above and one entry here.
var registry = [...]descriptor{
	MidiSource: {
		name:    "midi_source",
		label:   "MIDI Input",
		menu:    "MIDI Node",
		outputs: []PortSpec{out("MIDI Out", signal.Midi)},
	},
	SoundSource: {
		name:    "sound_source",
		label:   "Sound Source",
		menu:    "Sound Source",
		inputs:  []PortSpec{in("MIDI In", signal.Midi)},
		outputs: []PortSpec{out("Audio Out", signal.Audio)},
	},
	Effect: {
		name:    "effect",
		label:   "Audio Effect",
		menu:    "Effect",
		inputs:  []PortSpec{in("Audio In", signal.Audio)},
		outputs: []PortSpec{out("Audio Out", signal.Audio)},
	},
	Mixer: {
		name:  "mixer",
		label: "Audio Mixer",
		menu:  "Mixer",
		inputs: []PortSpec{
			in("In 1", signal.Audio),
			in("In 2", signal.Audio),
		},
		outputs: []PortSpec{out("Mix Out", signal.Audio)},
	},
}

// All returns every template in menu order
func All() []Template {
	all := make([]Template, len(registry))
	for i := range registry {
		all[i] = Template(i)
	}
	return all
}

// Valid reports whether t names a registered template
func (t Template) Valid() bool {
	return int(t) < len(registry)
}

// Label is the human-readable default node title
func (t Template) Label() string {
	if !t.Valid() {
		return fmt.Sprintf("Template(%d)", uint8(t))
	}
	return registry[t].label
}

// MenuLabel is the shorter name offered by the context menu
func (t Template) MenuLabel() string {
	if !t.Valid() {
		return t.Label()
	}
	return registry[t].menu
}

// Name is the stable identifier used in configuration files
func (t Template) Name() string {
	if !t.Valid() {
		return ""
	}
	return registry[t].name
}

func (t Template) String() string {
	return t.Label()
}

// DeclarePorts returns fresh copies of the template's input and output
// declarations. The result depends only on t.
func (t Template) DeclarePorts() (inputs, outputs []PortSpec) {
	if !t.Valid() {
		return nil, nil
	}
	d := registry[t]
	inputs = append([]PortSpec(nil), d.inputs...)
	outputs = append([]PortSpec(nil), d.outputs...)
	return inputs, outputs
}

// Payload returns the node data installed on creation
func (t Template) Payload() NodeData {
	return NodeData{Template: t, Title: t.Label()}
}

// Parse resolves a template by its Name, Label or MenuLabel, ignoring case
func Parse(s string) (Template, error) {
	s = strings.TrimSpace(s)
	for _, t := range All() {
		if strings.EqualFold(s, t.Name()) || strings.EqualFold(s, t.Label()) || strings.EqualFold(s, t.MenuLabel()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown node template %q", s)
}
