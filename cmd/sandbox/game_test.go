package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lodestone2d/lodestone/physics"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewGameWithDefaults(t *testing.T) {
	g, err := newGame(filepath.Join(t.TempDir(), "missing.yaml"), "", nil)
	require.NoError(t, err)
	defer g.shutdown()

	g.world.Update()
	require.Equal(t, 4, g.phys.BodyCount())
}

func TestBuildSceneFailureKeepsPreviousScene(t *testing.T) {
	dir := t.TempDir()
	scene := writeFile(t, dir, "scene.tengo", `spawn({mode: "static", shape: "box", x: 0, y: 0, w: 10, h: 1, group: 2})`)

	g, err := newGame(filepath.Join(dir, "physics.yaml"), scene, nil)
	require.NoError(t, err)
	defer g.shutdown()

	g.world.Update()
	require.Equal(t, 1, g.phys.BodyCount())
	oldPhys := g.phys

	writeFile(t, dir, "scene.tengo", `spawn({`)
	require.Error(t, g.buildScene())

	// The old scene must still be the live one and remain usable.
	require.Same(t, oldPhys, g.phys)
	g.world.Update()
	require.Equal(t, 1, g.phys.BodyCount())
	hits := g.phys.Raycast(physics.Vec2{X: -8, Y: 0}, physics.Vec2{X: 8, Y: 0}, physics.QueryAll, rayGroup)
	require.Len(t, hits, 1)
}

func TestBuildSceneReloadReplacesWorld(t *testing.T) {
	dir := t.TempDir()
	scene := writeFile(t, dir, "scene.tengo", `spawn({mode: "static", w: 10, h: 1})`)

	g, err := newGame(filepath.Join(dir, "physics.yaml"), scene, nil)
	require.NoError(t, err)
	defer g.shutdown()

	g.world.Update()
	require.Equal(t, 1, g.phys.BodyCount())

	writeFile(t, dir, "scene.tengo", `
spawn({mode: "static", w: 10, h: 1})
spawn({mode: "dynamic", w: 1, h: 1, density: 1, y: 3})
`)
	require.NoError(t, g.buildScene())
	g.world.Update()
	require.Equal(t, 2, g.phys.BodyCount())
}
