package sources

// SourceInfo describes a registered decoder.
// Returned by Decoder.Info() and exposed via GET /api/v1/sources.
type SourceInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ContentType []string `json:"content_types"`
	Example     string   `json:"example,omitempty"`
}
