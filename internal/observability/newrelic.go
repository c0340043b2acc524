package observability

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/tsdice/emojisummary/internal/config"
	"github.com/tsdice/emojisummary/internal/glyph"
)

// NewNewRelic returns nil, nil when no license key is configured.
func NewNewRelic(cfg *config.ObservabilityConfig) (*newrelic.Application, error) {
	if cfg == nil || cfg.NewRelic.LicenseKey == "" {
		return nil, nil
	}
	return newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.ServiceName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(cfg.NewRelic.AppLogForwardingEnabled),
		func(c *newrelic.Config) {
			c.Labels = map[string]string{"env": cfg.Environment}
		},
	)
}

// NewRelicMiddleware wraps every request in a web transaction named after
// the matched route.
func NewRelicMiddleware(app *newrelic.Application) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			txn := app.StartTransaction(req.Method + " " + c.Path())
			defer txn.End()

			txn.SetWebRequestHTTP(req)
			c.Response().Writer = txn.SetWebResponse(c.Response().Writer)
			c.SetRequest(req.WithContext(newrelic.NewContext(req.Context(), txn)))

			err := next(c)
			if err != nil {
				txn.NoticeError(err)
			}
			return err
		}
	}
}

// RecordSelection sends an EmojiSelection custom event. A nil app is a no-op.
func RecordSelection(app *newrelic.Application, source string, sel glyph.Selection) {
	if app == nil {
		return
	}
	app.RecordCustomEvent("EmojiSelection", map[string]any{
		"source":   source,
		"emojis":   sel.String(),
		"fallback": sel.FromFallback(),
	})
}

// ShutdownNewRelic flushes pending data. A nil app is a no-op.
func ShutdownNewRelic(app *newrelic.Application, timeout time.Duration) {
	if app == nil {
		return
	}
	app.Shutdown(timeout)
}
