package component

import "github.com/milk9111/shipwreck/common"

// Transform is an entity's world position (origin at screen center, +Y up).
type Transform struct {
	Position common.Vec2
}

var TransformComponent = NewComponent[Transform]()
