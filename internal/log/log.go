package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/gofiber/fiber/v2"
	"github.com/lmittmann/tint"
)

type sink struct {
	logger *slog.Logger
	fluent *fluent.Fluent
}

var current atomic.Pointer[sink]

func init() {
	current.Store(&sink{logger: slog.New(slog.NewJSONHandler(os.Stdout, nil))})
}

// Options configures the process logger.
type Options struct {
	Env    string // "dev"/"local" get colored tint output, anything else JSON
	Level  string
	Out    io.Writer
	Fluent *fluent.Fluent // optional mirror
}

// Setup replaces the process logger and returns it for non-request use.
func Setup(o Options) *slog.Logger {
	if o.Out == nil {
		o.Out = os.Stdout
	}
	level := parseLevel(o.Level)
	var h slog.Handler
	if o.Env == "dev" || o.Env == "local" {
		h = tint.NewHandler(o.Out, &tint.Options{Level: level, TimeFormat: time.RFC3339})
	} else {
		h = slog.NewJSONHandler(o.Out, &slog.HandlerOptions{Level: level})
	}
	l := slog.New(h)
	current.Store(&sink{logger: l, fluent: o.Fluent})
	return l
}

// NewFluent connects the optional Fluent Bit mirror. Posting is async so a
// missing collector never blocks a request.
func NewFluent(host string, port int) (*fluent.Fluent, error) {
	return fluent.New(fluent.Config{
		FluentHost: host,
		FluentPort: port,
		TagPrefix:  "timebank",
		Async:      true,
	})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func write(level slog.Level, kind string, c *fiber.Ctx, action string, err error, fields map[string]any) {
	s := current.Load()
	attrs := []slog.Attr{slog.String("kind", kind)}
	record := map[string]any{"action": action, "kind": kind}
	if c != nil {
		attrs = append(attrs,
			slog.String("ip", c.IP()),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", c.Response().StatusCode()),
		)
		record["ip"], record["method"], record["path"] = c.IP(), c.Method(), c.Path()
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			attrs = append(attrs, slog.String("req_id", rid))
			record["req_id"] = rid
		}
	}
	if err != nil {
		attrs = append(attrs, slog.String("err", err.Error()))
		record["err"] = err.Error()
	}
	if len(fields) > 0 {
		attrs = append(attrs, slog.Any("fields", fields))
		record["fields"] = fields
	}
	s.logger.LogAttrs(context.Background(), level, action, attrs...)

	if s.fluent != nil && s.logger.Enabled(context.Background(), level) {
		_ = s.fluent.Post(kind, record)
	}
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	write(slog.LevelInfo, "info", c, action, nil, fields)
}
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write(slog.LevelInfo, "audit", c, action, nil, fields)
}
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write(slog.LevelWarn, "security", c, action, nil, fields)
}
func Warn(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write(slog.LevelWarn, "warn", c, action, err, fields)
}
func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write(slog.LevelError, "error", c, action, err, fields)
}
