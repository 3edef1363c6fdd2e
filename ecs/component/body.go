package component

// Body is the vertical state of a kinematic body. Horizontal motion is
// supplied as an intent each frame.
type Body struct {
	VelY     float64
	Grounded bool
}

var BodyComponent = NewComponent[Body]()
