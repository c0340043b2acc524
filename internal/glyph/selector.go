package glyph

import (
	"strings"

	"github.com/tsdice/emojisummary/internal/model"
)

// Selector runs the priority cascade. It is safe for concurrent use as long
// as its Randomizer is.
type Selector struct {
	rand Randomizer
}

// Option configures a Selector.
type Option func(*Selector)

// WithRandomizer replaces the source used by the fallback stage.
func WithRandomizer(r Randomizer) Option {
	return func(s *Selector) {
		if r != nil {
			s.rand = r
		}
	}
}

// NewSelector returns a Selector drawing fallbacks from GlobalRandom unless
// configured otherwise.
func NewSelector(opts ...Option) *Selector {
	s := &Selector{rand: GlobalRandom}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSelector = NewSelector()

// SelectString runs the default selector and returns the three glyphs.
func SelectString(cfg model.ParticleConfig) string {
	return defaultSelector.Select(cfg).String()
}

// SelectMap adapts an untyped configuration and runs the default selector.
func SelectMap(m map[string]any) Selection {
	return defaultSelector.Select(model.FromMap(m))
}

// Select summarizes cfg as exactly Size distinct glyphs.
//
// Effects are appended unconditionally; every later stage only runs while
// fewer than Size glyphs are collected. Anything beyond Size is cut at
// finalize, so the earliest picks win.
func (s *Selector) Select(cfg model.ParticleConfig) Selection {
	p := &picker{}

	effects(p, cfg)
	themeAndPhysics(p, cfg)
	color(p, cfg)
	shape(p, cfg)
	interaction(p, cfg)
	chaos(p, cfg)
	movement(p, cfg)
	particleCount(p, cfg)
	s.fill(p)

	return Selection{Picks: finalizePicks(p.picks)}
}

type picker struct {
	picks []Pick
}

func (p *picker) full() bool {
	return len(p.picks) >= Size
}

func (p *picker) has(glyph string) bool {
	for _, pk := range p.picks {
		if pk.Glyph == glyph {
			return true
		}
	}
	return false
}

func (p *picker) add(glyph string, stage Stage, rule string) bool {
	if p.has(glyph) {
		return false
	}
	p.picks = append(p.picks, Pick{Glyph: glyph, Stage: stage, Rule: rule})
	return true
}

type branch struct {
	ok    bool
	glyph string
	rule  string
}

// firstOf appends the first branch whose condition holds and whose glyph is
// not yet present. A matching branch with a duplicate glyph does not stop the
// chain.
func (p *picker) firstOf(stage Stage, branches ...branch) {
	for _, b := range branches {
		if b.ok && !p.has(b.glyph) {
			p.add(b.glyph, stage, b.rule)
			return
		}
	}
}

func effects(p *picker, cfg model.ParticleConfig) {
	flags := []branch{
		{cfg.Twinkle, Sparkles, "twinkle"},
		{cfg.Trail, Dizzy, "trail"},
		{cfg.Links, Link, "links"},
		{cfg.CollisionMode == "destroy", Collision, "collisionMode=destroy"},
		{cfg.Rotate, Cyclone, "rotate"},
		{cfg.Wobble, WavyDash, "wobble"},
		{cfg.LinksTriangles, RedTri, "linksTriangles"},
	}
	for _, f := range flags {
		if f.ok {
			p.add(f.glyph, StageEffects, f.rule)
		}
	}
}

func themeAndPhysics(p *picker, cfg model.ParticleConfig) {
	if !p.full() {
		p.firstOf(StageTheme,
			branch{cfg.Theme == "dark", Moon, "theme=dark"},
			branch{cfg.Theme == "light", Sun, "theme=light"},
		)
	}
	if !p.full() && cfg.Gravity {
		p.add(Earth, StageTheme, "gravity")
	}
	if !p.full() && cfg.Walls {
		p.add(Brick, StageTheme, "walls")
	}
}

func color(p *picker, cfg model.ParticleConfig) {
	if p.full() {
		return
	}
	c := strings.ToLower(cfg.Color)
	has := func(subs ...string) bool {
		for _, sub := range subs {
			if strings.Contains(c, sub) {
				return true
			}
		}
		return false
	}
	p.firstOf(StageColor,
		branch{c == "random", Rainbow, "color=random"},
		branch{has("#ff", "red"), RedHeart, "color~red"},
		branch{has("#00", "blue"), BlueHeart, "color~blue"},
		branch{has("green"), GreenHeart, "color~green"},
		branch{has("purple", "violet"), PurpleHeart, "color~purple"},
		branch{has("yellow", "gold"), YellowHeart, "color~yellow"},
	)
}

func shape(p *picker, cfg model.ParticleConfig) {
	if p.full() {
		return
	}
	if g, ok := ShapeGlyphs[cfg.Shape]; ok {
		p.add(g, StageShape, "shape="+cfg.Shape)
	}
	// The character is used verbatim, emoji or not.
	if cfg.IsCharacter && cfg.CharacterValue != "" {
		p.add(cfg.CharacterValue, StageShape, "characterValue")
	}
}

func interaction(p *picker, cfg model.ParticleConfig) {
	if p.full() {
		return
	}
	if g, ok := HoverGlyphs[cfg.HoverMode]; ok {
		p.add(g, StageInteraction, "hoverMode="+cfg.HoverMode)
	}
	if g, ok := ClickGlyphs[cfg.ClickMode]; ok && !p.full() {
		p.add(g, StageInteraction, "clickMode="+cfg.ClickMode)
	}
}

func chaos(p *picker, cfg model.ParticleConfig) {
	if p.full() {
		return
	}
	level := cfg.Chaos()
	p.firstOf(StageChaos,
		branch{level >= 9, Tornado, "chaosLevel>=9"},
		branch{level >= 7, Collision, "chaosLevel>=7"},
		branch{level <= 2, RelievedFace, "chaosLevel<=2"},
	)
}

func movement(p *picker, cfg model.ParticleConfig) {
	if p.full() {
		return
	}
	if cfg.Speed > 15 {
		p.add(Dash, StageMovement, "speed>15")
	}
	if cfg.Attract {
		p.add(Magnet, StageMovement, "attract")
	}
	if g, ok := DirectionGlyphs[cfg.Direction]; ok && !p.full() {
		p.add(g, StageMovement, "direction="+cfg.Direction)
	}
}

func particleCount(p *picker, cfg model.ParticleConfig) {
	if p.full() {
		return
	}
	p.firstOf(StageCount,
		branch{cfg.ParticleCount > 200, Sparkles, "particleCount>200"},
		branch{cfg.ParticleCount < 30, DirectHit, "particleCount<30"},
	)
}

// maxDraws bounds the random draws before fill walks the pool in order, so a
// degenerate Randomizer cannot stall selection.
const maxDraws = 64 * Size

func (s *Selector) fill(p *picker) {
	for i := 0; !p.full() && i < maxDraws; i++ {
		p.add(FallbackPool[s.rand.IntN(len(FallbackPool))], StageFallback, "random")
	}
	for _, g := range FallbackPool {
		if p.full() {
			return
		}
		p.add(g, StageFallback, "pool")
	}
}
