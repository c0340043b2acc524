package glyph

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsdice/emojisummary/internal/model"
)

// script replays fixed draws, cycling when exhausted.
type script struct {
	vals []int
	i    int
}

func (s *script) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func deterministic(vals ...int) *Selector {
	return NewSelector(WithRandomizer(&script{vals: vals}))
}

func chaosLevel(v float64) *float64 { return &v }

func TestSelect_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		cfg  map[string]any
		want []string
	}{
		{
			name: "dark theme with gravity and twinkle",
			cfg:  map[string]any{"theme": "dark", "gravity": true, "twinkle": true, "chaosLevel": 7.0},
			want: []string{Sparkles, Moon, Earth},
		},
		{
			name: "light theme with links and rotation",
			cfg:  map[string]any{"theme": "light", "links": true, "rotate": true, "shape": "star"},
			want: []string{Link, Cyclone, Sun},
		},
		{
			name: "high chaos with collisions",
			cfg:  map[string]any{"chaosLevel": 10.0, "collisionMode": "destroy", "trail": true},
			want: []string{Dizzy, Collision, Tornado},
		},
		{
			name: "rainbow colors with wobble",
			cfg:  map[string]any{"color": "random", "wobble": true, "shape": "circle"},
			want: []string{WavyDash, Rainbow, WhiteCircle},
		},
		{
			name: "character particles",
			cfg:  map[string]any{"isCharacter": true, "characterValue": "🔥", "speed": 20.0, "theme": "dark"},
			want: []string{Moon, "🔥", Dash},
		},
		{
			name: "calm minimal config",
			cfg:  map[string]any{"chaosLevel": 1.0, "particleCount": 20.0, "theme": "light"},
			want: []string{Sun, RelievedFace, DirectHit},
		},
		{
			name: "usage example",
			cfg: map[string]any{
				"theme": "dark", "gravity": true, "twinkle": true,
				"chaosLevel": 8.0, "shape": "star", "color": "random",
			},
			want: []string{Sparkles, Moon, Earth},
		},
		{
			name: "every effect keeps the first three",
			cfg: map[string]any{
				"twinkle": true, "trail": true, "links": true, "collisionMode": "destroy",
				"rotate": true, "wobble": true, "linksTriangles": true, "theme": "dark",
			},
			want: []string{Sparkles, Dizzy, Link},
		},
		{
			name: "shape and character both append",
			cfg:  map[string]any{"shape": "star", "isCharacter": true, "characterValue": "A"},
			want: []string{Star, "A", DirectHit},
		},
		{
			name: "character ignored without isCharacter",
			cfg:  map[string]any{"characterValue": "A", "chaosLevel": 9.0, "walls": true, "particleCount": 300.0},
			want: []string{Brick, Tornado, Sparkles},
		},
		{
			name: "wind and magnet both append past the cap",
			cfg:  map[string]any{"twinkle": true, "trail": true, "speed": 20.0, "attract": true},
			want: []string{Sparkles, Dizzy, Dash},
		},
		{
			name: "hover then click",
			cfg:  map[string]any{"hoverMode": "grab", "clickMode": "push"},
			want: []string{Pinch, PointUp, DirectHit},
		},
		{
			name: "click skipped once full",
			cfg:  map[string]any{"twinkle": true, "trail": true, "hoverMode": "bubble", "clickMode": "remove"},
			want: []string{Sparkles, Dizzy, Bubbles},
		},
		{
			name: "direction after magnet",
			cfg:  map[string]any{"attract": true, "direction": "bottom-left", "particleCount": 10.0},
			want: []string{Magnet, ArrowDownLeft, DirectHit},
		},
		{
			name: "hover duplicate of an effect is skipped",
			cfg:  map[string]any{"links": true, "hoverMode": "connect", "clickMode": "absorb", "chaosLevel": 2.0},
			want: []string{Link, Cyclone, RelievedFace},
		},
		{
			name: "tornado already present falls through to explosion",
			cfg:  map[string]any{"isCharacter": true, "characterValue": Tornado, "chaosLevel": 10.0},
			want: []string{Tornado, Collision, DirectHit},
		},
		{
			name: "gravity and walls re-check the cap",
			cfg:  map[string]any{"twinkle": true, "theme": "dark", "gravity": true, "walls": true},
			want: []string{Sparkles, Moon, Earth},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A fallback draw would fail the comparison, so the script points
			// at glyphs no scenario expects.
			got := deterministic(4, 5).Select(model.FromMap(tt.cfg))
			if diff := cmp.Diff(tt.want, got.Glyphs()); diff != "" {
				t.Fatalf("glyphs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelect_Colors(t *testing.T) {
	tests := []struct {
		color string
		want  string
	}{
		{"random", Rainbow},
		{"RANDOM", Rainbow},
		{"#FF00AA", RedHeart},
		{"dark red", RedHeart},
		{"#00ff00", BlueHeart},
		{"Navy Blue", BlueHeart},
		{"green", GreenHeart},
		{"darkviolet", PurpleHeart},
		{"purple", PurpleHeart},
		{"goldenrod", YellowHeart},
		{"yellow", YellowHeart},
	}
	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			cfg := model.ParticleConfig{Color: tt.color, ParticleCount: 100}
			got := deterministic(0, 1, 2).Select(cfg)
			require.Len(t, got.Picks, Size)
			assert.Equal(t, tt.want, got.Picks[0].Glyph)
			assert.Equal(t, StageColor, got.Picks[0].Stage)
		})
	}

	t.Run("unmatched", func(t *testing.T) {
		got := deterministic(0, 1, 2).Select(model.ParticleConfig{Color: "orange", ParticleCount: 100})
		assert.Equal(t, 3, got.FromFallback())
	})

	t.Run("numeric color", func(t *testing.T) {
		got := deterministic(0, 1, 2).Select(model.FromMap(map[string]any{"color": 100.0, "particleCount": 100.0}))
		assert.Equal(t, 3, got.FromFallback())
	})
}

func TestSelect_ChaosThresholds(t *testing.T) {
	tests := []struct {
		level float64
		want  string
	}{
		{10, Tornado},
		{9, Tornado},
		{8.9, Collision},
		{7, Collision},
		{6.99, ""},
		{5, ""},
		{3, ""},
		{2, RelievedFace},
		{0, RelievedFace},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.level), func(t *testing.T) {
			cfg := model.ParticleConfig{ChaosLevel: chaosLevel(tt.level), ParticleCount: 100}
			got := deterministic(0, 1, 2).Select(cfg)
			first := got.Picks[0]
			if tt.want == "" {
				assert.Equal(t, StageFallback, first.Stage)
				return
			}
			assert.Equal(t, tt.want, first.Glyph)
			assert.Equal(t, StageChaos, first.Stage)
		})
	}
}

func TestSelect_CountAndSpeedBoundaries(t *testing.T) {
	sel := deterministic(0, 1, 2)

	assert.Equal(t, Sparkles, sel.Select(model.ParticleConfig{ParticleCount: 201}).Picks[0].Glyph)
	assert.Equal(t, StageFallback, sel.Select(model.ParticleConfig{ParticleCount: 200}).Picks[0].Stage)
	assert.Equal(t, StageFallback, sel.Select(model.ParticleConfig{ParticleCount: 30}).Picks[0].Stage)
	assert.Equal(t, DirectHit, sel.Select(model.ParticleConfig{ParticleCount: 29}).Picks[0].Glyph)

	slow := sel.Select(model.ParticleConfig{Speed: 15, ParticleCount: 100})
	assert.Equal(t, StageFallback, slow.Picks[0].Stage)
	fast := sel.Select(model.ParticleConfig{Speed: 15.5, ParticleCount: 100})
	assert.Equal(t, Dash, fast.Picks[0].Glyph)
}

func TestSelect_CountSkipsSparklesAlreadyPresent(t *testing.T) {
	// twinkle claims ✨, so a big particle count adds nothing and the
	// remaining slots come from the pool.
	got := deterministic(0, 1).Select(model.ParticleConfig{Twinkle: true, ParticleCount: 500})
	assert.Equal(t, []string{Sparkles, FallbackPool[0], FallbackPool[1]}, got.Glyphs())
	assert.Equal(t, 2, got.FromFallback())
}

func TestSelect_FallbackSkipsDuplicates(t *testing.T) {
	got := deterministic(0, 0, 1, 0, 1, 2).Select(model.ParticleConfig{ParticleCount: 100})
	assert.Equal(t, "🎨🎭🎪", got.String())
	for _, p := range got.Picks {
		assert.Equal(t, StageFallback, p.Stage)
		assert.Equal(t, "random", p.Rule)
	}
}

func TestSelect_EmptyConfig(t *testing.T) {
	// particleCount defaults to 0, which already claims 🎯.
	got := deterministic(3, 0, 1).Select(model.ParticleConfig{})
	assert.Equal(t, []string{DirectHit, "🎨", "🎭"}, got.Glyphs())

	for i := 0; i < 200; i++ {
		sel := NewSelector().Select(model.ParticleConfig{})
		require.Len(t, sel.Picks, Size)
		assertDistinct(t, sel.Glyphs())
		for _, g := range sel.Glyphs() {
			assert.Contains(t, FallbackPool, g)
		}
	}
}

func TestSelect_DegenerateRandomizerStillFills(t *testing.T) {
	got := NewSelector(WithRandomizer(RandomizerFunc(func(int) int { return 0 }))).Select(model.ParticleConfig{})
	assert.Equal(t, []string{DirectHit, "🎨", "🎭"}, got.Glyphs())
	assert.Equal(t, "pool", got.Picks[2].Rule)
}

func TestSelect_TraceRecordsRules(t *testing.T) {
	got := deterministic(0).Select(model.FromMap(map[string]any{
		"theme": "dark", "gravity": true, "twinkle": true,
	}))
	want := []Pick{
		{Glyph: Sparkles, Stage: StageEffects, Rule: "twinkle"},
		{Glyph: Moon, Stage: StageTheme, Rule: "theme=dark"},
		{Glyph: Earth, Stage: StageTheme, Rule: "gravity"},
	}
	if diff := cmp.Diff(want, got.Picks); diff != "" {
		t.Fatalf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestSelect_AlwaysThreeDistinct(t *testing.T) {
	gen := Seeded(42)
	themes := []string{"", "dark", "light", "sepia"}
	colors := []string{"", "random", "#ff0000", "#0000ff", "green", "violet", "gold", "orange"}
	shapes := []string{"", "star", "circle", "square", "triangle", "polygon", "heart"}
	hovers := []string{"", "grab", "repulse", "bubble", "connect", "slow", "attract"}
	clicks := []string{"", "push", "remove", "absorb"}
	dirs := []string{"", "top", "bottom", "left", "right", "top-right", "top-left", "bottom-right", "bottom-left", "none"}
	coin := func() bool { return gen.IntN(3) == 0 }
	pick := func(xs []string) string { return xs[gen.IntN(len(xs))] }

	sel := NewSelector(WithRandomizer(Seeded(7)))
	for i := 0; i < 2000; i++ {
		cfg := model.ParticleConfig{
			Twinkle: coin(), Trail: coin(), Links: coin(), Rotate: coin(), Wobble: coin(), LinksTriangles: coin(),
			Theme: pick(themes), Gravity: coin(), Walls: coin(),
			Color: pick(colors), Shape: pick(shapes),
			IsCharacter: coin(), CharacterValue: pick([]string{"", "🔥", Sparkles, "x"}),
			HoverMode: pick(hovers), ClickMode: pick(clicks),
			ChaosLevel: chaosLevel(float64(gen.IntN(12))),
			Speed:      float64(gen.IntN(30)), Attract: coin(), Direction: pick(dirs),
			ParticleCount: float64(gen.IntN(400)),
		}
		if coin() {
			cfg.CollisionMode = "destroy"
		}
		got := sel.Select(cfg)
		require.Len(t, got.Picks, Size, "config %+v", cfg)
		assertDistinct(t, got.Glyphs())
		assertStageOrder(t, got.Picks)
	}
}

func TestFinalize(t *testing.T) {
	in := []string{"a", "b", "a", "c", "d", "b"}
	once := Finalize(in)
	assert.Equal(t, []string{"a", "b", "c"}, once)
	assert.Equal(t, once, Finalize(once))
	assert.Equal(t, []string{"x"}, Finalize([]string{"x", "x"}))
	assert.Empty(t, Finalize(nil))
}

func TestFinalizePicks(t *testing.T) {
	in := []Pick{
		{Glyph: Sparkles, Stage: StageEffects, Rule: "twinkle"},
		{Glyph: Dizzy, Stage: StageEffects, Rule: "trail"},
		{Glyph: Sparkles, Stage: StageCount, Rule: "particleCount>200"},
		{Glyph: Link, Stage: StageEffects, Rule: "links"},
		{Glyph: Cyclone, Stage: StageEffects, Rule: "rotate"},
	}
	once := finalizePicks(in)
	require.Len(t, once, Size)
	assert.Equal(t, "twinkle", once[0].Rule)
	assert.Equal(t, []string{Sparkles, Dizzy, Link}, Selection{Picks: once}.Glyphs())
	assert.Equal(t, once, finalizePicks(once))
}

func TestSelect_OutputIsFinalized(t *testing.T) {
	// every effect fires, so the cascade collects more than Size before finalize
	cfg := model.ParticleConfig{
		Twinkle: true, Trail: true, Links: true, CollisionMode: "destroy",
		Rotate: true, Wobble: true, LinksTriangles: true,
	}
	got := NewSelector().Select(cfg)
	assert.Equal(t, Finalize(got.Glyphs()), got.Glyphs())
	assert.Equal(t, got.Picks, finalizePicks(got.Picks))
	assert.Equal(t, Sparkles+Dizzy+Link, got.String())
}

func TestSelectString(t *testing.T) {
	out := SelectString(model.ParticleConfig{Twinkle: true, Trail: true, Links: true})
	assert.Equal(t, Sparkles+Dizzy+Link, out)

	sel := SelectMap(map[string]any{"theme": "light", "walls": true, "color": "blue"})
	assert.Equal(t, Sun+Brick+BlueHeart, sel.String())
}

func assertDistinct(t *testing.T, glyphs []string) {
	t.Helper()
	seen := map[string]bool{}
	for _, g := range glyphs {
		assert.False(t, seen[g], "duplicate glyph %q in %v", g, glyphs)
		seen[g] = true
	}
}

func assertStageOrder(t *testing.T, picks []Pick) {
	t.Helper()
	rank := map[Stage]int{}
	for i, s := range Stages {
		rank[s] = i
	}
	for i := 1; i < len(picks); i++ {
		assert.LessOrEqual(t, rank[picks[i-1].Stage], rank[picks[i].Stage], "picks out of stage order: %+v", picks)
	}
}
