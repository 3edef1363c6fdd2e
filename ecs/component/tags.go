package component

type ExitTag struct{}

var ExitTagComponent = NewComponent[ExitTag]()

type DecorationTag struct{}

var DecorationTagComponent = NewComponent[DecorationTag]()

// Background is one parallax layer. Offset is the layer's horizontal shift in
// screen pixels.
type Background struct {
	Name   string
	Factor float64
	Offset float64
}

var BackgroundComponent = NewComponent[Background]()
