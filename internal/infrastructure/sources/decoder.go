package sources

import "github.com/tsdice/emojisummary/internal/model"

// Decoder turns serialized configuration text into a ParticleConfig.
// Each format (json, form, ...) implements and registers a Decoder.
//
// Decode never fails: text the decoder cannot parse yields the empty
// configuration.
type Decoder interface {
	Name() string
	Info() SourceInfo
	Decode(data []byte) model.ParticleConfig
}
