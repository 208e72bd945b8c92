package editor

import (
	"github.com/dd0wney/harmonia/pkg/storage"
	"github.com/dd0wney/harmonia/pkg/viewport"
)

// Response is an edit the drawing widget asks the editor to apply
type Response interface {
	response()
}

// ConnectPorts asks for a wire from Output to Input
type ConnectPorts struct {
	Output storage.PortID
	Input  storage.PortID
}

// DisconnectPort asks for the wire feeding Input to be removed
type DisconnectPort struct {
	Input storage.PortID
}

// DeleteNode asks for a node to be removed
type DeleteNode struct {
	Node storage.NodeID
}

// PanView asks for the canvas to scroll by Delta screen units
type PanView struct {
	Delta viewport.Vec2
}

func (ConnectPorts) response()   {}
func (DisconnectPort) response() {}
func (DeleteNode) response()     {}
func (PanView) response()        {}
