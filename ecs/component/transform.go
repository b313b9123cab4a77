package component

// Transform is an entity's pose in world units.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64 // radians
}

var TransformComponent = New[Transform]()
