package physics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigRoundTripStable(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"default", DefaultConfig()},
		{"zero_gravity", Config{Gravity: Vec2{}, VelocityIterations: 1, PositionIterations: 1}},
		{"odd_floats", Config{Gravity: Vec2{X: 0.30000000000000004, Y: -9.80665}, VelocityIterations: 12, PositionIterations: 4}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data, err := c.cfg.Encode()
			require.NoError(t, err)

			decoded, err := DecodeConfig(data)
			require.NoError(t, err)
			require.Equal(t, c.cfg, decoded)

			again, err := decoded.Encode()
			require.NoError(t, err)
			require.Equal(t, data, again)
		})
	}
}

func TestDecodeConfigDocument(t *testing.T) {
	doc := []byte(`gravity:
  x: 0
  y: -9.81
velocity_iterations: 8
position_iterations: 3
`)
	cfg, err := DecodeConfig(doc)
	require.NoError(t, err)
	require.Equal(t, Config{Gravity: Vec2{X: 0, Y: -9.81}, VelocityIterations: 8, PositionIterations: 3}, cfg)
}

func TestDecodeConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"malformed_yaml", "gravity: [1, 2\n"},
		{"wrong_gravity_type", "gravity: down\nvelocity_iterations: 8\nposition_iterations: 3\n"},
		{"unknown_field", "gravity: {x: 0, y: -1}\nbodies: []\n"},
		{"negative_velocity_iterations", "gravity: {x: 0, y: -1}\nvelocity_iterations: -1\nposition_iterations: 3\n"},
		{"negative_position_iterations", "gravity: {x: 0, y: -1}\nvelocity_iterations: 8\nposition_iterations: -3\n"},
		{"string_iterations", "gravity: {x: 0, y: -1}\nvelocity_iterations: lots\nposition_iterations: 3\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeConfig([]byte(c.doc))
			require.Error(t, err)
		})
	}
}
