package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/shipwreck/common"
	shipcomp "github.com/milk9111/shipwreck/component"
	"github.com/milk9111/shipwreck/config"
	"github.com/milk9111/shipwreck/ecs"
	"github.com/milk9111/shipwreck/ecs/entity"
	"github.com/milk9111/shipwreck/ecs/system"
	"github.com/milk9111/shipwreck/prefabs"
	"golang.org/x/image/colornames"
)

type Game struct {
	cfg    *config.Config
	world  *ecs.World
	view   common.View
	screen entity.ScreenBounds

	ship    *prefabs.ShipSpec
	catalog *prefabs.WeaponCatalog
	weapon  shipcomp.ProjectileType
	watcher *prefabs.Watcher

	lastShot time.Duration
	fired    bool
	score    int
	kills    int
	lastHit  string
	paused   bool

	hud *HUD
}

func NewGame(cfg *config.Config) (*Game, error) {
	ship, err := prefabs.LoadShipSpec(cfg.Ship)
	if err != nil {
		return nil, err
	}
	catalog, err := prefabs.LoadWeaponCatalog(prefabs.WeaponsFile)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		view:    common.View{PixelsPerUnit: cfg.PixelsPerUnit(), Width: float64(cfg.WindowWidth), Height: float64(cfg.WindowHeight)},
		screen:  entity.ScreenBounds{CamWidth: cfg.CamWidth, CamHeight: cfg.CamHeight},
		ship:    ship,
		catalog: catalog,
		weapon:  shipcomp.ProjectileType(cfg.Weapon),
	}
	if len(catalog.Types()) == 0 {
		return nil, fmt.Errorf("game: %s defines no weapons", prefabs.WeaponsFile)
	}
	if _, ok := catalog.Definition(g.weapon); !ok {
		log.Printf("game: unknown weapon %q, using %q", g.weapon, catalog.Types()[0])
		g.weapon = catalog.Types()[0]
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	emitter := &shipcomp.CombatEventEmitter{}
	if cfg.Debug {
		emitter.Subscribe(func(evt shipcomp.CombatEvent) {
			log.Printf("combat: %s part=%s damage=%.1f health=%.1f at %v", evt.Type, evt.Part, evt.Damage, evt.Health, evt.Time)
		})
	}

	w := ecs.NewWorld()
	w.SetStep(cfg.Step())
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(w.Events()))

	deps := entity.ShipDeps{
		Catalog:  catalog,
		Notifier: shipcomp.NotifierFunc(g.onShipDestroyed),
		Emitter:  emitter,
		Screen:   g.screen,
		Rand:     rng,
	}

	combat := system.NewCombatSystem()
	combat.OnResult = g.onHit
	render := system.NewRenderSystem()
	render.Debug = cfg.Debug

	w.AddSystem(system.NewShipMotionSystem())
	w.AddSystem(system.NewPhysicsSystem())
	w.AddSystem(combat)
	w.AddSystem(system.NewProjectileSystem(g.screen))
	w.AddSystem(system.NewTTLSystem())
	w.AddSystem(system.NewSpawnSystem(func() *prefabs.ShipSpec { return g.ship }, deps, cfg.MaxShips, cfg.SpawnEvery))
	w.AddSystem(render)
	g.world = w

	if cfg.WatchPrefabs {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	g.hud = NewHUD(g)
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	g.hud.Update()
	if g.paused {
		return nil
	}

	g.applyReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.cycleWeapon()
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace) {
		g.fire()
	}

	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	g.world.Draw(screen, g.view)

	gx, gy := g.view.ToScreen(g.gunPosition())
	vector.FillRect(screen, float32(gx-8), float32(gy-4), 16, 8, colornames.Lightgreen, false)

	g.hud.Draw(screen)
	if g.cfg.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.1f  entities: %d", ebiten.ActualTPS(), len(ecs.Entities(g.world))), 10, g.cfg.WindowHeight-20)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.cfg.WindowWidth), float64(g.cfg.WindowHeight)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) gunPosition() common.Vec2 {
	return common.Vec2{Y: -g.screen.CamHeight + 1}
}

func (g *Game) fire() {
	def, ok := g.catalog.Definition(g.weapon)
	if !ok {
		return
	}
	now := g.world.Now()
	if g.fired && now-g.lastShot < def.Delay {
		return
	}
	from := g.gunPosition()
	target := g.view.ToWorld(float64Pair(ebiten.CursorPosition()))
	dir := target.Sub(from)
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		dir = common.Vec2{Y: 1}
	}
	if _, err := entity.BuildProjectile(g.world, def, true, from, dir); err != nil {
		log.Printf("game: fire: %v", err)
		return
	}
	g.lastShot = now
	g.fired = true
}

func (g *Game) cycleWeapon() {
	types := g.catalog.Types()
	for i, t := range types {
		if t == g.weapon {
			g.weapon = types[(i+1)%len(types)]
			return
		}
	}
	if len(types) > 0 {
		g.weapon = types[0]
	}
}

func (g *Game) onHit(ship *entity.Ship, res shipcomp.HitResult) {
	switch res.Outcome {
	case shipcomp.HitBlocked:
		g.lastHit = fmt.Sprintf("%s blocked by %s", res.Part, res.Protector)
	case shipcomp.HitDiscardedOffscreen:
		g.lastHit = "out of range"
	default:
		g.lastHit = fmt.Sprintf("%s %s", res.Part, res.Outcome)
	}
	if res.ShipDestroyed {
		g.score += ship.Score
	}
}

func (g *Game) onShipDestroyed(ref uuid.UUID) {
	g.kills++
	log.Printf("game: ship %s destroyed, %d down", ref, g.kills)
}

// applyReloads drains the watcher without blocking the tick.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(prefabs.BaseName(path))
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	switch name {
	case prefabs.WeaponsFile:
		next, err := prefabs.LoadWeaponCatalog(name)
		if err != nil {
			log.Printf("game: reload %s: %v", name, err)
			return
		}
		g.catalog.Replace(next)
	case g.cfg.Ship:
		next, err := prefabs.LoadShipSpec(name)
		if err != nil {
			log.Printf("game: reload %s: %v", name, err)
			return
		}
		g.ship = next
		log.Printf("game: %s reloaded, applies to new spawns", name)
	}
}

func float64Pair(x, y int) (float64, float64) {
	return float64(x), float64(y)
}
