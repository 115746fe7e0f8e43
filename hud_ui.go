package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/shipwreck/ecs"
	"github.com/milk9111/shipwreck/ecs/entity"
	"golang.org/x/image/font/basicfont"
)

// HUD shows score, the active weapon, and the part health of every ship.
type HUD struct {
	g  *Game
	ui *ebitenui.UI

	status *widget.Text
	parts  *widget.Text
	pause  *widget.Container
	paused bool
}

func NewHUD(g *Game) *HUD {
	h := &HUD{g: g}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 160})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	h.status = widget.NewText(widget.TextOpts.Text("", &face, white))
	h.parts = widget.NewText(widget.TextOpts.Text("", &face, white))

	weaponBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Next weapon [Tab]", &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.cycleWeapon()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(h.status)
	panel.AddChild(h.parts)
	panel.AddChild(weaponBtn)

	resumeBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Resume", &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.paused = false
		}),
	)
	h.pause = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	h.pause.AddChild(widget.NewText(widget.TextOpts.Text("Paused", &face, white)))
	h.pause.AddChild(resumeBtn)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	h.ui = &ebitenui.UI{Container: root}
	return h
}

func (h *HUD) Update() {
	g := h.g
	h.status.Label = fmt.Sprintf("score %d  kills %d  weapon %s\n%s", g.score, g.kills, g.weapon, g.lastHit)
	h.parts.Label = partsSummary(g.world)
	h.setPaused(g.paused)
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}

func (h *HUD) setPaused(paused bool) {
	if paused == h.paused {
		return
	}
	h.paused = paused
	if paused {
		h.ui.Container.AddChild(h.pause)
		return
	}
	h.ui.Container.RemoveChild(h.pause)
}

func partsSummary(w *ecs.World) string {
	var b strings.Builder
	ecs.ForEach(w, entity.ShipComponent, func(_ ecs.Entity, ship *entity.Ship) {
		fmt.Fprintf(&b, "%s %s\n", ship.Name, ship.ID.String()[:8])
		for _, p := range ship.Registry.Parts() {
			state := fmt.Sprintf("%3.0f%%", p.Fraction()*100)
			if p.Destroyed() {
				state = "down"
			} else if name, blocked := ship.Damage.Protection.Protector(p); blocked {
				state += " (shielded by " + name + ")"
			}
			fmt.Fprintf(&b, "  %-9s %s\n", p.Name, state)
		}
	})
	return strings.TrimRight(b.String(), "\n")
}
