// The sandbox is a small ebiten harness around the physics layer: it loads
// world tunables from YAML, spawns a scene from a tengo scenario script,
// steps the simulation at a fixed rate, and hot-reloads both files on
// change. Left-click casts a ray from the left edge to the cursor and logs
// the ordered hits.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/lodestone2d/lodestone/scenario"
)

const defaultScenario = `
spawn({mode: "static", shape: "box", x: 0, y: -0.5, w: 24, h: 1, friction: 0.8, group: 2})
spawn({mode: "dynamic", shape: "box", x: -2, y: 6, w: 1, h: 1, density: 1, friction: 0.4, group: 2})
spawn({mode: "dynamic", shape: "circle", x: 0.5, y: 8, r: 0.5, density: 0.8, restitution: 0.4, group: 2})
spawn({mode: "dynamic", shape: "box", x: 2.2, y: 10, w: 0.8, h: 0.8, density: 1, bullet: true, vx: -1.5, group: 2})
`

func main() {
	configPath := flag.String("config", "physics.yaml", "world tunables file")
	scenarioPath := flag.String("scenario", "", "tengo scenario script (built-in scene when empty)")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	logger, err := buildLogger(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	game, err := newGame(*configPath, *scenarioPath, logger)
	if err != nil {
		logger.Fatal("sandbox setup failed", zap.Error(err))
	}
	defer game.shutdown()

	if dirs := watchDirs(*configPath, *scenarioPath); len(dirs) > 0 {
		watcher, err := scenario.NewWatcher(dirs...)
		if err != nil {
			logger.Warn("hot reload disabled", zap.Error(err))
		} else {
			game.watcher = watcher
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("lodestone sandbox")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("sandbox exited", zap.Error(err))
	}
}

func buildLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// watchDirs returns the parent directories of the files worth watching.
func watchDirs(paths ...string) []string {
	seen := map[string]bool{}
	var dirs []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			continue
		}
		dir := filepath.Dir(p)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
