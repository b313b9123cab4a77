package physics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// collectSink records every published event in order.
type collectSink struct {
	events []any
}

func (s *collectSink) Send(event any) {
	s.events = append(s.events, event)
}

func (s *collectSink) beganCount(a, b Entity) int {
	n := 0
	for _, ev := range s.events {
		if began, ok := ev.(CollisionBegan); ok && samePair(began.A, began.B, a, b) {
			n++
		}
	}
	return n
}

func (s *collectSink) endedCount(a, b Entity) int {
	n := 0
	for _, ev := range s.events {
		if ended, ok := ev.(CollisionEnded); ok && samePair(ended.A, ended.B, a, b) {
			n++
		}
	}
	return n
}

func samePair(x, y, a, b Entity) bool {
	return (x == a && y == b) || (x == b && y == a)
}

func dropScene(t *testing.T, sink EventSink, resolver EntityResolver) (*World, *Body, *Body) {
	t.Helper()
	cfg := Config{Gravity: Vec2{X: 0, Y: -9.81}, VelocityIterations: 8, PositionIterations: 3}
	w, err := NewWorld(cfg, sink, resolver, nil)
	require.NoError(t, err)
	t.Cleanup(w.Destroy)

	floor := w.CreateBody(NewBodyDef(BodyStatic, Vec2{X: 0, Y: 0}), Entity(1))
	floor.AddBoxFixture(20, 1, FixtureDef{Friction: 0.8})

	crate := w.CreateBody(NewBodyDef(BodyDynamic, Vec2{X: 0, Y: 1.2}), Entity(2))
	crate.AddBoxFixture(1, 1, FixtureDef{Density: 1, Friction: 0.8})
	return w, floor, crate
}

func TestRestContactPublishesBeganOnce(t *testing.T) {
	sink := &collectSink{}
	w, floor, _ := dropScene(t, sink, nil)

	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60.0)
	}
	require.Equal(t, 1, sink.beganCount(1, 2))

	// Contact persists at rest; no repeat Began.
	for i := 0; i < 60; i++ {
		w.Step(1.0 / 60.0)
	}
	require.Equal(t, 1, sink.beganCount(1, 2))
	require.Equal(t, 0, sink.endedCount(1, 2))

	w.DestroyBody(floor)
	require.Equal(t, 1, sink.endedCount(1, 2))
}

func TestBeganImpulseReportedAsZero(t *testing.T) {
	sink := &collectSink{}
	w, _, _ := dropScene(t, sink, nil)

	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60.0)
	}

	found := false
	for _, ev := range sink.events {
		if began, ok := ev.(CollisionBegan); ok {
			found = true
			require.Zero(t, began.Impulse)
		}
	}
	require.True(t, found)
}

func TestContactDroppedWhenEntityUnresolved(t *testing.T) {
	sink := &collectSink{}
	resolver := deadSetResolver{Entity(2): true}
	w, _, _ := dropScene(t, sink, resolver)

	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60.0)
	}
	require.Equal(t, 0, sink.beganCount(1, 2))
	require.Equal(t, 0, sink.endedCount(1, 2))
}

func TestNoEventsWithoutSink(t *testing.T) {
	w, _, _ := dropScene(t, nil, nil)
	for i := 0; i < 60; i++ {
		w.Step(1.0 / 60.0)
	}
}
