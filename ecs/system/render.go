package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/shipwreck/common"
	"github.com/milk9111/shipwreck/ecs"
	"github.com/milk9111/shipwreck/ecs/component"
	"github.com/milk9111/shipwreck/ecs/entity"
	"golang.org/x/image/colornames"
)

// RenderSystem draws ship parts as boxes and projectiles as circles. Parts
// flash DamageColor while showing damage and vanish once destroyed.
type RenderSystem struct {
	DamageColor color.Color
	Debug       bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{DamageColor: colornames.Red}
}

// Update is a no-op; RenderSystem only draws.
func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image, view common.View) {
	if r == nil || w == nil {
		return
	}

	ecs.ForEach(w, entity.ShipComponent, func(_ ecs.Entity, ship *entity.Ship) {
		for _, shape := range ship.Model {
			pv, ok := ship.PartVisual(shape.Name)
			if !ok || !pv.Active {
				continue
			}
			clr := shape.Color.ColorOr(colornames.Grey)
			if pv.Damaged {
				clr = r.DamageColor
			}
			rect := shape.Rect()
			x, y := view.ToScreen(ship.Position.Add(common.Vec2{X: rect.X, Y: rect.Y + rect.Height}))
			vector.FillRect(screen, float32(x), float32(y), float32(rect.Width*view.PixelsPerUnit), float32(rect.Height*view.PixelsPerUnit), clr, false)
		}
		if r.Debug {
			cx, cy := view.ToScreen(ship.Position)
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(ship.Bounds.Radius*view.PixelsPerUnit), 1, colornames.Yellow, true)
		}
	})

	ecs.ForEach(w, component.ProjectileComponent, func(e ecs.Entity, p *component.Projectile) {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			return
		}
		x, y := view.ToScreen(t.Position)
		clr := p.Color
		if clr == nil {
			clr = colornames.White
		}
		vector.FillCircle(screen, float32(x), float32(y), float32(p.Radius*view.PixelsPerUnit), clr, true)
	})
}
