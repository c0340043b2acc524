package model

// FieldInfo describes one recognized configuration key.
// Exposed via GET /api/v1/fields and the `fields` command.
type FieldInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "bool", "string", "number"
	Default     string `json:"default"`
	Stage       string `json:"stage"`
	Description string `json:"description"`
	Example     string `json:"example,omitempty"`
}

// Fields lists every key the selector reads, in cascade order.
var Fields = []FieldInfo{
	{Name: "twinkle", Type: "bool", Default: "false", Stage: "effects", Description: "Particles twinkle", Example: "true"},
	{Name: "trail", Type: "bool", Default: "false", Stage: "effects", Description: "Particles leave a trail", Example: "true"},
	{Name: "links", Type: "bool", Default: "false", Stage: "effects", Description: "Nearby particles are linked", Example: "true"},
	{Name: "collisionMode", Type: "string", Default: `""`, Stage: "effects", Description: "Collision behaviour; only \"destroy\" is recognized", Example: "destroy"},
	{Name: "rotate", Type: "bool", Default: "false", Stage: "effects", Description: "Particles rotate", Example: "true"},
	{Name: "wobble", Type: "bool", Default: "false", Stage: "effects", Description: "Particles wobble", Example: "true"},
	{Name: "linksTriangles", Type: "bool", Default: "false", Stage: "effects", Description: "Links are filled into triangles", Example: "true"},
	{Name: "theme", Type: "string", Default: `""`, Stage: "theme", Description: "Page theme: dark or light", Example: "dark"},
	{Name: "gravity", Type: "bool", Default: "false", Stage: "theme", Description: "Gravity is enabled", Example: "true"},
	{Name: "walls", Type: "bool", Default: "false", Stage: "theme", Description: "Particles bounce off the walls", Example: "true"},
	{Name: "color", Type: "string", Default: `""`, Stage: "color", Description: "Particle colour, a name, hex value or \"random\"", Example: "#ff0000"},
	{Name: "shape", Type: "string", Default: `""`, Stage: "shape", Description: "Particle shape: star, circle, square, triangle or polygon", Example: "star"},
	{Name: "isCharacter", Type: "bool", Default: "false", Stage: "shape", Description: "Particles are drawn as a character", Example: "true"},
	{Name: "characterValue", Type: "string", Default: `""`, Stage: "shape", Description: "Character used verbatim as a glyph when isCharacter is set", Example: "🔥"},
	{Name: "hoverMode", Type: "string", Default: `""`, Stage: "interaction", Description: "Hover interaction: grab, repulse, bubble, connect, slow or attract", Example: "repulse"},
	{Name: "clickMode", Type: "string", Default: `""`, Stage: "interaction", Description: "Click interaction: push, remove or absorb", Example: "push"},
	{Name: "chaosLevel", Type: "number", Default: "5", Stage: "chaos", Description: "Chaos level, 1 to 10", Example: "9"},
	{Name: "speed", Type: "number", Default: "0", Stage: "movement", Description: "Particle speed", Example: "20"},
	{Name: "attract", Type: "bool", Default: "false", Stage: "movement", Description: "Particles attract each other", Example: "true"},
	{Name: "direction", Type: "string", Default: `""`, Stage: "movement", Description: "Move direction: top, bottom, left, right or a diagonal such as top-right", Example: "top-right"},
	{Name: "particleCount", Type: "number", Default: "0", Stage: "count", Description: "Number of particles", Example: "250"},
}

// FieldByName returns the catalogue entry for name.
func FieldByName(name string) (FieldInfo, bool) {
	for _, f := range Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldInfo{}, false
}
