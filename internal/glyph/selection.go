package glyph

import "strings"

// Size is the number of glyphs in every selection.
const Size = 3

// Stage names a step of the priority cascade.
type Stage string

const (
	StageEffects     Stage = "effects"
	StageTheme       Stage = "theme"
	StageColor       Stage = "color"
	StageShape       Stage = "shape"
	StageInteraction Stage = "interaction"
	StageChaos       Stage = "chaos"
	StageMovement    Stage = "movement"
	StageCount       Stage = "count"
	StageFallback    Stage = "fallback"
)

// Stages lists the cascade in evaluation order.
var Stages = []Stage{
	StageEffects, StageTheme, StageColor, StageShape, StageInteraction,
	StageChaos, StageMovement, StageCount, StageFallback,
}

// Pick is one selected glyph and the rule that produced it.
type Pick struct {
	Glyph string `json:"glyph"`
	Stage Stage  `json:"stage"`
	Rule  string `json:"rule"`
}

// Selection is the finalized result of a cascade run.
type Selection struct {
	Picks []Pick `json:"picks"`
}

// Glyphs returns the selected glyphs in order.
func (s Selection) Glyphs() []string {
	out := make([]string, len(s.Picks))
	for i, p := range s.Picks {
		out[i] = p.Glyph
	}
	return out
}

// String concatenates the glyphs with no separator.
func (s Selection) String() string {
	return strings.Join(s.Glyphs(), "")
}

// FromFallback reports how many glyphs were drawn at random.
func (s Selection) FromFallback() int {
	n := 0
	for _, p := range s.Picks {
		if p.Stage == StageFallback {
			n++
		}
	}
	return n
}

// Finalize drops repeated glyphs, keeping the first occurrence, and
// truncates to Size. Finalize(Finalize(x)) == Finalize(x).
func Finalize(glyphs []string) []string {
	return firstUnique(glyphs, func(g string) string { return g })
}

func finalizePicks(picks []Pick) []Pick {
	return firstUnique(picks, func(p Pick) string { return p.Glyph })
}

// firstUnique keeps the first item per glyph, up to Size items.
func firstUnique[T any](items []T, glyph func(T) string) []T {
	out := make([]T, 0, Size)
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		g := glyph(it)
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, it)
		if len(out) == Size {
			break
		}
	}
	return out
}
