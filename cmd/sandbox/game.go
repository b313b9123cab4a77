package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/lodestone2d/lodestone/ecs"
	"github.com/lodestone2d/lodestone/ecs/system"
	"github.com/lodestone2d/lodestone/physics"
	"github.com/lodestone2d/lodestone/scenario"
)

const (
	fixedDt   = 1.0 / 60.0
	rayGroup  = physics.CollisionGroup(2)
	pixelsPer = 48.0
)

type Game struct {
	log          *zap.Logger
	configPath   string
	scenarioPath string
	watcher      *scenario.Watcher

	world   *ecs.World
	phys    *physics.World
	driver  *system.Physics
	cam     system.DebugCamera
	lastRay rayResult
}

type rayResult struct {
	valid bool
	from  physics.Vec2
	to    physics.Vec2
	hits  []physics.RayHit
}

func newGame(configPath, scenarioPath string, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		log:          logger,
		configPath:   configPath,
		scenarioPath: scenarioPath,
		cam:          system.DebugCamera{Scale: pixelsPer, OriginX: 640, OriginY: 600},
	}
	if err := g.buildScene(); err != nil {
		return nil, err
	}
	return g, nil
}

// buildScene (re)creates the ecs world and physics world from the current
// files. Called at startup and on every hot reload. The previous scene is
// torn down only after the replacement is fully built, so a failed reload
// leaves the running scene intact.
func (g *Game) buildScene() error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	world := ecs.NewWorld()
	phys, err := physics.NewWorld(cfg, world.Events(), world, g.log)
	if err != nil {
		return err
	}
	world.AttachPhysics(phys)

	driver := system.NewPhysics(phys, fixedDt, g.log)
	world.AddSystem(driver)

	if g.scenarioPath != "" {
		if err := scenario.LoadFile(g.scenarioPath, world, g.log); err != nil {
			phys.Destroy()
			return err
		}
	} else if err := scenario.Run([]byte(defaultScenario), world, g.log); err != nil {
		phys.Destroy()
		return err
	}

	if g.phys != nil {
		g.phys.Destroy()
	}
	g.world = world
	g.phys = phys
	g.driver = driver
	g.lastRay = rayResult{}
	return nil
}

func (g *Game) loadConfig() (physics.Config, error) {
	data, err := os.ReadFile(g.configPath)
	if os.IsNotExist(err) {
		return physics.DefaultConfig(), nil
	}
	if err != nil {
		return physics.Config{}, fmt.Errorf("read config %q: %w", g.configPath, err)
	}
	return physics.DecodeConfig(data)
}

func (g *Game) Update() error {
	g.pollReload()

	g.world.Update()

	// Collision events are published during the step; log and drop them.
	for _, ev := range g.world.Events().Drain() {
		switch e := ev.(type) {
		case physics.CollisionBegan:
			g.log.Info("collision began", zap.Uint64("a", uint64(e.A)), zap.Uint64("b", uint64(e.B)))
		case physics.CollisionEnded:
			g.log.Info("collision ended", zap.Uint64("a", uint64(e.A)), zap.Uint64("b", uint64(e.B)))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.castRay()
	}
	return nil
}

func (g *Game) castRay() {
	mx, my := ebiten.CursorPosition()
	to := physics.Vec2{
		X: (float64(mx) - g.cam.OriginX) / g.cam.Scale,
		Y: (g.cam.OriginY - float64(my)) / g.cam.Scale,
	}
	from := physics.Vec2{X: to.X - 30, Y: to.Y}

	hits := g.phys.Raycast(from, to, physics.QueryAll, rayGroup)
	g.lastRay = rayResult{valid: true, from: from, to: to, hits: hits}

	g.log.Info("raycast", zap.Int("hits", len(hits)))
	for i, h := range hits {
		g.log.Info("hit",
			zap.Int("order", i),
			zap.Uint64("entity", uint64(h.Entity)),
			zap.Float64("x", h.Point.X),
			zap.Float64("y", h.Point.Y),
			zap.Float64("distance", h.Distance))
	}
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	select {
	case path := <-g.watcher.Events:
		g.log.Info("reloading scene", zap.String("path", path))
		if err := g.buildScene(); err != nil {
			g.log.Error("reload failed, keeping previous scene", zap.Error(err))
		}
	case err := <-g.watcher.Errors:
		g.log.Warn("watcher error", zap.Error(err))
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	system.DrawPhysicsDebug(g.world, screen, g.cam)
	if g.lastRay.valid {
		system.DrawRayDebug(screen, g.cam, g.lastRay.from, g.lastRay.to, g.lastRay.hits)
	}

	gravity := g.phys.Gravity()
	msg := fmt.Sprintf("bodies: %d  gravity: (%.2f, %.2f)\nclick: raycast  edit %s to reload",
		g.phys.BodyCount(), gravity.X, gravity.Y, g.configPath)
	ebitenutil.DebugPrintAt(screen, msg, 10, 10)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *Game) shutdown() {
	if g.phys != nil {
		g.phys.Destroy()
	}
}
