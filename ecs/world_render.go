package ecs

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shipwreck/common"
)

// RenderSystem draws ECS entities each frame.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image, view common.View)
}

// Draw calls all render-capable systems.
func (w *World) Draw(screen *ebiten.Image, view common.View) {
	if w == nil || screen == nil {
		return
	}
	for _, s := range w.systems {
		rs, ok := s.(RenderSystem)
		if !ok || rs == nil {
			continue
		}
		rs.Draw(w, screen, view)
	}
}
