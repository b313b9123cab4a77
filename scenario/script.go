// Package scenario loads tengo scene scripts for the sandbox. A script
// calls spawn(...) once per body; the host turns each call into an entity
// with Transform and RigidBody components. The physics system creates the
// native bodies on the next tick.
package scenario

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"

	"github.com/lodestone2d/lodestone/ecs"
	"github.com/lodestone2d/lodestone/ecs/component"
	"github.com/lodestone2d/lodestone/physics"
)

// LoadFile reads and runs a scenario script against the world.
func LoadFile(path string, w *ecs.World, logger *zap.Logger) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scenario %q: %w", path, err)
	}
	return Run(src, w, logger)
}

// Run executes scenario source against the world.
func Run(src []byte, w *ecs.World, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	spawned := 0
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	err := script.Add("spawn", &tengo.UserFunction{
		Name: "spawn",
		Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			spec, ok := mapValue(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "spec", Expected: "map", Found: args[0].TypeName()}
			}
			if err := spawnEntity(w, spec); err != nil {
				return nil, err
			}
			spawned++
			return tengo.UndefinedValue, nil
		},
	})
	if err != nil {
		return fmt.Errorf("bind scenario host functions: %w", err)
	}

	if _, err := script.Run(); err != nil {
		return fmt.Errorf("run scenario: %w", err)
	}
	logger.Info("scenario loaded", zap.Int("spawned", spawned))
	return nil
}

func spawnEntity(w *ecs.World, spec map[string]tengo.Object) error {
	mode, err := bodyMode(str(spec, "mode", "static"))
	if err != nil {
		return err
	}

	rb := component.RigidBody{
		Mode:           mode,
		Width:          num(spec, "w", 1),
		Height:         num(spec, "h", 1),
		Radius:         num(spec, "r", 0),
		Density:        num(spec, "density", 1),
		Friction:       num(spec, "friction", 0.5),
		Restitution:    num(spec, "restitution", 0),
		Sensor:         boolean(spec, "sensor"),
		Group:          physics.CollisionGroup(num(spec, "group", 1)),
		GravityScale:   num(spec, "gravity_scale", 0),
		FixedRotation:  boolean(spec, "fixed_rotation"),
		Bullet:         boolean(spec, "bullet"),
		LinearDamping:  num(spec, "linear_damping", 0),
		AngularDamping: num(spec, "angular_damping", 0),
		VelocityX:      num(spec, "vx", 0),
		VelocityY:      num(spec, "vy", 0),
	}
	if str(spec, "shape", "box") == "circle" {
		rb.Shape = component.ShapeCircle
		if rb.Radius <= 0 {
			rb.Radius = 0.5
		}
	}

	e := w.CreateEntity()
	tf := &component.Transform{
		X:        num(spec, "x", 0),
		Y:        num(spec, "y", 0),
		Rotation: num(spec, "angle", 0),
	}
	if err := ecs.Add(w, e, component.TransformComponent, tf); err != nil {
		return err
	}
	return ecs.Add(w, e, component.RigidBodyComponent, &rb)
}

func bodyMode(name string) (physics.BodyMode, error) {
	switch name {
	case "static":
		return physics.BodyStatic, nil
	case "kinematic":
		return physics.BodyKinematic, nil
	case "dynamic":
		return physics.BodyDynamic, nil
	}
	return 0, fmt.Errorf("scenario: unknown body mode %q", name)
}

func mapValue(o tengo.Object) (map[string]tengo.Object, bool) {
	switch m := o.(type) {
	case *tengo.Map:
		return m.Value, true
	case *tengo.ImmutableMap:
		return m.Value, true
	}
	return nil, false
}

func num(m map[string]tengo.Object, key string, def float64) float64 {
	o, ok := m[key]
	if !ok {
		return def
	}
	if f, ok := tengo.ToFloat64(o); ok {
		return f
	}
	return def
}

func str(m map[string]tengo.Object, key, def string) string {
	o, ok := m[key]
	if !ok {
		return def
	}
	if s, ok := tengo.ToString(o); ok {
		return s
	}
	return def
}

func boolean(m map[string]tengo.Object, key string) bool {
	o, ok := m[key]
	if !ok {
		return false
	}
	return !o.IsFalsy()
}
