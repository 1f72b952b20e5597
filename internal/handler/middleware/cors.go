package middleware

import (
	"log/slog"

	"consult-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware serves the booking front end. Credentials stay enabled so
// the counselor access_token cookie crosses origins.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	c := cors.DefaultConfig()
	c.AllowOrigins = cfg.AllowOrigins
	c.AllowMethods = cfg.AllowMethods
	c.AllowHeaders = cfg.AllowHeaders
	c.ExposeHeaders = append(append([]string{}, cfg.ExposeHeaders...), "Location")
	c.AllowCredentials = cfg.AllowCredentials
	c.MaxAge = cfg.MaxAge

	if err := c.Validate(); err != nil {
		slog.Error("invalid CORS configuration, falling back to same-origin only", "error", err.Error())
		return func(ctx *gin.Context) { ctx.Next() }
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins)
	return cors.New(c)
}
