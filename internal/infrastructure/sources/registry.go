package sources

import (
	"fmt"
	"mime"
	"sort"
	"sync"

	"github.com/tsdice/emojisummary/internal/model"
)

// GlobalRegistry holds the built-in decoders. Format packages (jsonsource,
// formsource) register themselves in init().
var GlobalRegistry = NewRegistry()

// ErrUnknownSource is returned for a name no decoder is registered under.
type ErrUnknownSource struct {
	Name string
}

func (e *ErrUnknownSource) Error() string {
	return fmt.Sprintf("unknown config source: %s", e.Name)
}

// Registry holds registered decoders by name.
type Registry struct {
	mu       sync.RWMutex
	decoders map[string]Decoder
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]Decoder),
	}
}

// Register adds a decoder, replacing any previous one with the same name.
func (r *Registry) Register(d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoders[d.Name()] = d
}

// Decode parses data with the named decoder. The only error is an unknown
// name; unparsable data decodes to the empty configuration.
func (r *Registry) Decode(name string, data []byte) (model.ParticleConfig, error) {
	r.mu.RLock()
	d, ok := r.decoders[name]
	r.mu.RUnlock()
	if !ok {
		return model.ParticleConfig{}, &ErrUnknownSource{Name: name}
	}
	return d.Decode(data), nil
}

// ForContentType returns the name of the decoder that declares the media
// type of contentType, or fallback when none does.
func (r *Registry) ForContentType(contentType, fallback string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fallback
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, name := range r.sortedNamesLocked() {
		for _, ct := range r.decoders[name].Info().ContentType {
			if ct == mediaType {
				return name
			}
		}
	}
	return fallback
}

// ListRegistered returns all registered decoder names, sorted.
func (r *Registry) ListRegistered() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNamesLocked()
}

// GetInfo returns the description of one decoder. ok is false if the name is
// not registered.
func (r *Registry) GetInfo(name string) (info SourceInfo, ok bool) {
	r.mu.RLock()
	d, ok := r.decoders[name]
	r.mu.RUnlock()
	if !ok {
		return SourceInfo{}, false
	}
	return d.Info(), true
}

// AllInfo returns descriptions of every registered decoder, sorted by name.
func (r *Registry) AllInfo() []SourceInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := r.sortedNamesLocked()
	out := make([]SourceInfo, 0, len(names))
	for _, name := range names {
		out = append(out, r.decoders[name].Info())
	}
	return out
}

func (r *Registry) sortedNamesLocked() []string {
	names := make([]string, 0, len(r.decoders))
	for name := range r.decoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
