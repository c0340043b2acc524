package formsource

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/tsdice/emojisummary/internal/infrastructure/sources"
	"github.com/tsdice/emojisummary/internal/model"
)

// Name is the registry key of the form decoder.
const Name = "form"

func init() {
	sources.GlobalRegistry.Register(&Decoder{})
}

// Decoder reads URL-encoded key=value pairs, as found in share-link query
// strings. Only the first value of a repeated key is used.
type Decoder struct{}

func (d *Decoder) Name() string {
	return Name
}

func (d *Decoder) Info() sources.SourceInfo {
	return sources.SourceInfo{
		Name:        Name,
		Description: "URL-encoded pairs. Flag and numeric keys are parsed, other keys keep their text. A malformed string reads as an empty config.",
		ContentType: []string{"application/x-www-form-urlencoded"},
		Example:     "theme=light&chaosLevel=1&particleCount=20",
	}
}

func (d *Decoder) Decode(data []byte) model.ParticleConfig {
	values, err := url.ParseQuery(strings.TrimPrefix(strings.TrimSpace(string(data)), "?"))
	if err != nil {
		return model.ParticleConfig{}
	}
	return model.FromMap(FromValues(values))
}

// FromValues converts form values into the untyped map model.FromMap expects.
// Values are typed by the catalogue entry of their key: bool and number
// fields are parsed, everything else stays text, so characterValue=7 is the
// glyph "7".
func FromValues(values url.Values) map[string]any {
	m := make(map[string]any, len(values))
	for key, vs := range values {
		if len(vs) == 0 {
			continue
		}
		m[key] = typed(key, vs[0])
	}
	return m
}

func typed(key, s string) any {
	field, ok := model.FieldByName(key)
	if !ok {
		return s
	}
	switch field.Type {
	case "bool":
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
		return s
	case "number":
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return s
	}
	return s
}
