package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/tsdice/emojisummary/internal/glyph"
	"github.com/tsdice/emojisummary/internal/infrastructure/sources"
	"github.com/tsdice/emojisummary/internal/infrastructure/sources/jsonsource"
	"github.com/tsdice/emojisummary/internal/model"
	"github.com/tsdice/emojisummary/internal/observability"
	"github.com/tsdice/emojisummary/internal/response"
)

// EmojiHandler serves /api/v1/emojis, /api/v1/fields and /api/v1/sources.
// It depends on echo only through echo.Context.
type EmojiHandler struct {
	Selector *glyph.Selector
	Sources  *sources.Registry
	Metrics  *observability.Metrics
	NewRelic *newrelic.Application
	Logger   zerolog.Logger
}

type selectionResponse struct {
	Emojis string       `json:"emojis"`
	Glyphs []string     `json:"glyphs"`
	Source string       `json:"source"`
	Trace  []glyph.Pick `json:"trace,omitempty"`
}

// Select picks glyphs for the configuration in the request body
// (POST /api/v1/emojis). An unparsable body selects from the empty config.
func (h *EmojiHandler) Select(c echo.Context) error {
	source := c.QueryParam("source")
	if source == "" {
		source = h.Sources.ForContentType(c.Request().Header.Get(echo.HeaderContentType), jsonsource.Name)
	}
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		// echo's body limit surfaces as a 413 HTTPError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return response.BadRequest(c, "could not read body", err.Error())
	}
	return h.respond(c, source, body)
}

// SelectFromQuery picks glyphs for the JSON in ?config=
// (GET /api/v1/emojis), the shape share links use.
func (h *EmojiHandler) SelectFromQuery(c echo.Context) error {
	source := c.QueryParam("source")
	if source == "" {
		source = jsonsource.Name
	}
	return h.respond(c, source, []byte(c.QueryParam("config")))
}

func (h *EmojiHandler) respond(c echo.Context, source string, data []byte) error {
	cfg, err := h.Sources.Decode(source, data)
	if err != nil {
		var unknown *sources.ErrUnknownSource
		if errors.As(err, &unknown) {
			return response.BadRequest(c, "unknown config source", err.Error())
		}
		return response.InternalError(c, "decode config failed", err.Error())
	}

	sel := h.Selector.Select(cfg)
	h.Metrics.ObserveSelection(source, sel)
	observability.RecordSelection(h.NewRelic, source, sel)
	h.Logger.Debug().
		Str("source", source).
		Str("emojis", sel.String()).
		Int("fallback", sel.FromFallback()).
		Msg("selected emojis")

	out := selectionResponse{
		Emojis: sel.String(),
		Glyphs: sel.Glyphs(),
		Source: source,
	}
	if explain, _ := strconv.ParseBool(c.QueryParam("explain")); explain {
		out.Trace = sel.Picks
	}
	return response.OK(c, out, "")
}

// ListFields returns the recognized configuration keys (GET /api/v1/fields).
func (h *EmojiHandler) ListFields(c echo.Context) error {
	return response.OK(c, map[string]any{"fields": model.Fields}, "")
}

// GetField returns one catalogue entry (GET /api/v1/fields/:name).
func (h *EmojiHandler) GetField(c echo.Context) error {
	name := c.Param("name")
	f, ok := model.FieldByName(name)
	if !ok {
		return response.NotFound(c, "unknown config field", "no field named "+name)
	}
	return response.OK(c, f, "")
}

// ListSources returns every registered decoder (GET /api/v1/sources).
func (h *EmojiHandler) ListSources(c echo.Context) error {
	return response.OK(c, map[string]any{"sources": h.Sources.AllInfo()}, "")
}

// GetSource returns one decoder (GET /api/v1/sources/:name).
func (h *EmojiHandler) GetSource(c echo.Context) error {
	name := c.Param("name")
	info, ok := h.Sources.GetInfo(name)
	if !ok {
		return response.NotFound(c, "unknown config source", "no source named "+name)
	}
	return response.OK(c, info, "")
}
