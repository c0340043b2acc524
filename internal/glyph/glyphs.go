package glyph

// Glyphs that carry U+FE0F are written with escapes so the variation
// selector stays visible in review.
const (
	Sparkles  = "✨"
	Dizzy     = "💫"
	Link      = "🔗"
	Collision = "💥"
	Cyclone   = "🌀"
	WavyDash  = "\u3030\ufe0f" // 〰️
	RedTri    = "🔺"

	Moon  = "🌙"
	Sun   = "\u2600\ufe0f" // ☀️
	Earth = "🌍"
	Brick = "🧱"

	Rainbow      = "🌈"
	RedHeart     = "\u2764\ufe0f" // ❤️
	BlueHeart    = "💙"
	GreenHeart   = "💚"
	PurpleHeart  = "💜"
	YellowHeart  = "💛"
	Star         = "⭐"
	WhiteCircle  = "⚪"
	BlueSquare   = "🟦"
	BlueDiamond  = "🔷"
	Pinch        = "🤏"
	Dash         = "💨"
	Bubbles      = "🫧"
	Snail        = "🐌"
	Magnet       = "🧲"
	PointUp      = "👆"
	Wastebasket  = "\U0001f5d1\ufe0f" // 🗑️
	Tornado      = "\U0001f32a\ufe0f" // 🌪️
	RelievedFace = "😌"
	DirectHit    = "🎯"

	ArrowUp        = "\u2b06\ufe0f" // ⬆️
	ArrowDown      = "\u2b07\ufe0f" // ⬇️
	ArrowLeft      = "\u2b05\ufe0f" // ⬅️
	ArrowRight     = "\u27a1\ufe0f" // ➡️
	ArrowUpRight   = "\u2197\ufe0f" // ↗️
	ArrowUpLeft    = "\u2196\ufe0f" // ↖️
	ArrowDownRight = "\u2198\ufe0f" // ↘️
	ArrowDownLeft  = "\u2199\ufe0f" // ↙️
)

// ShapeGlyphs maps the shape key to its glyph.
var ShapeGlyphs = map[string]string{
	"star":     Star,
	"circle":   WhiteCircle,
	"square":   BlueSquare,
	"triangle": RedTri,
	"polygon":  BlueDiamond,
}

var HoverGlyphs = map[string]string{
	"grab":    Pinch,
	"repulse": Dash,
	"bubble":  Bubbles,
	"connect": Link,
	"slow":    Snail,
	"attract": Magnet,
}

var ClickGlyphs = map[string]string{
	"push":   PointUp,
	"remove": Wastebasket,
	"absorb": Cyclone,
}

var DirectionGlyphs = map[string]string{
	"top":          ArrowUp,
	"bottom":       ArrowDown,
	"left":         ArrowLeft,
	"right":        ArrowRight,
	"top-right":    ArrowUpRight,
	"top-left":     ArrowUpLeft,
	"bottom-right": ArrowDownRight,
	"bottom-left":  ArrowDownLeft,
}

// FallbackPool fills whatever slots the rules leave empty.
var FallbackPool = []string{
	"🎨", "🎭", "🎪", "🎯", "🎲", "🎰",
	"🌟", "💫", "🔮", "🎉", "🎈", "🎆",
}
