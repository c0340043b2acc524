package model

import (
	"strconv"
)

// DefaultChaosLevel is used when a configuration carries no usable chaosLevel.
const DefaultChaosLevel = 5

// ParticleConfig is the typed view of a tsDice particle configuration.
// Every field is optional; the zero value of each field is its default, except
// ChaosLevel which is nil when absent (see Chaos).
type ParticleConfig struct {
	// Effects
	Twinkle        bool
	Trail          bool
	Links          bool
	CollisionMode  string
	Rotate         bool
	Wobble         bool
	LinksTriangles bool

	// Theme and physics
	Theme   string
	Gravity bool
	Walls   bool

	Color string

	Shape          string
	IsCharacter    bool
	CharacterValue string

	HoverMode string
	ClickMode string

	ChaosLevel *float64

	Speed     float64
	Attract   bool
	Direction string

	ParticleCount float64
}

// Chaos returns the chaos level, or DefaultChaosLevel when none was supplied.
func (c ParticleConfig) Chaos() float64 {
	if c.ChaosLevel == nil {
		return DefaultChaosLevel
	}
	return *c.ChaosLevel
}

// FromMap adapts an untyped key/value configuration into a ParticleConfig.
// Unknown keys are ignored and values of an unexpected type fall back to the
// field default, so FromMap never fails. A nil map yields the empty config.
//
// Flags follow truthiness: true, non-zero numbers and non-empty strings,
// lists or objects all count as set.
func FromMap(m map[string]any) ParticleConfig {
	var c ParticleConfig
	if len(m) == 0 {
		return c
	}

	c.Twinkle = truthy(m["twinkle"])
	c.Trail = truthy(m["trail"])
	c.Links = truthy(m["links"])
	c.CollisionMode = stringValue(m["collisionMode"])
	c.Rotate = truthy(m["rotate"])
	c.Wobble = truthy(m["wobble"])
	c.LinksTriangles = truthy(m["linksTriangles"])

	c.Theme = stringValue(m["theme"])
	c.Gravity = truthy(m["gravity"])
	c.Walls = truthy(m["walls"])

	c.Color = textValue(m["color"])

	c.Shape = stringValue(m["shape"])
	c.IsCharacter = truthy(m["isCharacter"])
	c.CharacterValue = stringValue(m["characterValue"])

	c.HoverMode = stringValue(m["hoverMode"])
	c.ClickMode = stringValue(m["clickMode"])

	if v, ok := numberValue(m["chaosLevel"]); ok {
		c.ChaosLevel = &v
	}
	c.Speed, _ = numberValue(m["speed"])
	c.Attract = truthy(m["attract"])
	c.Direction = stringValue(m["direction"])

	c.ParticleCount, _ = numberValue(m["particleCount"])
	return c
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	if f, ok := numberValue(v); ok {
		return f != 0
	}
	return true
}

// stringValue only accepts strings; anything else reads as absent.
func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// textValue renders scalars as text so that numeric or boolean colors still
// take part in substring matching.
func textValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	}
	if f, ok := numberValue(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}

// numberValue accepts every Go numeric kind plus booleans (as 1 and 0).
func numberValue(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}
