package powerup

import (
	"errors"
	"testing"
)

func TestParseCatalog(t *testing.T) {
	data := []byte(`
powerups:
  - kind: speed_boost
    name: Speed Boost
    duration: 4
    intensity: 1.8
    glow_color: "#ff8800"
  - kind: ghost_ball
`)
	c, err := ParseCatalog(data)
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("len = %d, want 2", c.Len())
	}
	sb, ok := c.ByKind(SpeedBoost)
	if !ok || sb.Duration != 4 || sb.Intensity != 1.8 || sb.GlowColor != "#ff8800" {
		t.Fatalf("speed boost = %+v", sb)
	}
	g, _ := c.ByKind(GhostBall)
	if g.Duration != defaultDuration || g.Intensity != defaultIntensity || g.Name != "ghost_ball" {
		t.Fatalf("defaults not applied: %+v", g)
	}
}

func TestParseCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown kind", "powerups:\n  - kind: teleport\n", ErrUnknownKind},
		{"missing kind", "powerups:\n  - name: Mystery\n    duration: 4\n", ErrUnknownKind},
		{"negative duration", "powerups:\n  - kind: freeze\n    duration: -1\n", ErrInvalidDefinition},
		{"negative intensity", "powerups:\n  - kind: slow_motion\n    intensity: -0.5\n", ErrInvalidDefinition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCatalog_RandomEmpty(t *testing.T) {
	var c *Catalog
	if _, err := c.Random(testRand()); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("err = %v, want ErrEmptyCatalog", err)
	}
}

func TestKind_RoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
}
