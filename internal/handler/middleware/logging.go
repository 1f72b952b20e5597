package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"consult-booking/internal/handler/httperr"
	"consult-booking/internal/pkg/config"
	"consult-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const ctxRequestIDKey = "request_id"

type Logger struct {
	logger   *slog.Logger
	timezone *time.Location
}

// NewLogger builds the process logger and installs it as the slog default.
// Release mode logs JSON, every other gin mode logs text.
func NewLogger(cfg config.LogConfig) *Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.Level))); err != nil {
		level = slog.LevelInfo
	}

	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.TimeKey {
				return a
			}
			if t, ok := a.Value.Any().(time.Time); ok {
				a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	var h slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if gin.Mode() == gin.ReleaseMode {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return &Logger{logger: logger, timezone: timezone}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// LoggingMiddleware logs each request twice, on arrival and on completion.
// Only the path is logged; tokens travel in query strings and bodies.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := l.newRequestID(start)
		c.Set(ctxRequestIDKey, requestID)

		base := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		l.logger.LogAttrs(c.Request.Context(), slog.LevelInfo, "Request started", base...)

		c.Next()

		status := c.Writer.Status()
		attrs := append(base,
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
		)
		if route := c.FullPath(); route != "" {
			attrs = append(attrs, slog.String("route", route))
		}
		// auth runs inside the admin group, so the counselor is only known now
		if counselorID, ok := GetCounselorID(c); ok {
			attrs = append(attrs, slog.String("counselor_id", counselorID.String()))
		}
		if code := errorCode(c); code != "" {
			attrs = append(attrs, slog.String("error_code", code))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		l.logger.LogAttrs(c.Request.Context(), completionLevel(c, status), "Request completed", attrs...)
	}
}

// completionLevel keeps contention outcomes such as SLOT_FULL at Info.
func completionLevel(c *gin.Context, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status < 400:
		return slog.LevelInfo
	}
	for _, e := range c.Errors {
		if errs.HasCategory(e.Err, errs.ErrBusinessRejection) {
			return slog.LevelInfo
		}
	}
	return slog.LevelWarn
}

func errorCode(c *gin.Context) string {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && resp.Code != "" {
			return resp.Code
		}
	}
	return ""
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

// newRequestID returns yyyymmddhhmmss-<8 hex>.
func (l *Logger) newRequestID(at time.Time) string {
	stamp := at.In(l.timezone).Format("20060102150405")

	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return stamp + "-" + strconv.FormatInt(at.UnixNano()%100000000, 16)
	}
	return stamp + "-" + hex.EncodeToString(b[:])
}
