package jsonsource

import (
	"bytes"

	json "github.com/json-iterator/go"

	"github.com/tsdice/emojisummary/internal/infrastructure/sources"
	"github.com/tsdice/emojisummary/internal/model"
)

// Name is the registry key of the JSON decoder.
const Name = "json"

func init() {
	sources.GlobalRegistry.Register(&Decoder{})
}

// Decoder reads a JSON object such as the config tsDice exports.
type Decoder struct{}

func (d *Decoder) Name() string {
	return Name
}

func (d *Decoder) Info() sources.SourceInfo {
	return sources.SourceInfo{
		Name:        Name,
		Description: "JSON object of particle settings. Invalid JSON, or JSON that is not an object, reads as an empty config.",
		ContentType: []string{"application/json", "text/json", "text/plain"},
		Example:     `{"theme":"dark","gravity":true,"twinkle":true,"chaosLevel":7}`,
	}
}

func (d *Decoder) Decode(data []byte) model.ParticleConfig {
	return model.FromMap(Parse(data))
}

// Parse returns the top-level object in data, or nil when data is not a
// JSON object.
func Parse(data []byte) map[string]any {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}
