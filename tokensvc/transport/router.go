package transport

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/roomgate/roomgate/internal/errors"
	"github.com/roomgate/roomgate/internal/log"
	"github.com/roomgate/roomgate/tokensvc"
	"github.com/roomgate/roomgate/tokensvc/issuer"
)

const missingParamsMessage = "Missing required parameters: room and username"

type Router struct {
	tokenIssuer tokensvc.TokenIssuer
	engine      *gin.Engine
	logger      *log.Logger
}

func NewRouter(tokenIssuer tokensvc.TokenIssuer, allowedOrigins []string, logger *log.Logger) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	// Add OpenTelemetry middleware for automatic HTTP tracing
	engine.Use(otelgin.Middleware("token-service"))

	// browser clients call the endpoint cross-origin
	corsCfg := cors.DefaultConfig()
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowedOrigins
	}
	engine.Use(cors.New(corsCfg))

	r := &Router{
		tokenIssuer: tokenIssuer,
		engine:      engine,
		logger:      logger,
	}

	r.setupRoutes()
	return r
}

func (r *Router) Handler() http.Handler {
	return r.engine
}

func (r *Router) setupRoutes() {
	r.engine.GET("/api/token", r.getToken)

	// Health check
	r.engine.GET("/health", r.healthCheck)
}

func (r *Router) getToken(c *gin.Context) {
	var q TokenQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": missingParamsMessage,
		})
		return
	}

	ctx := c.Request.Context()
	resp, err := r.tokenIssuer.Issue(ctx, q.Room, q.Username)
	if err != nil {
		r.writeIssueError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (r *Router) writeIssueError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, issuer.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": missingParamsMessage,
		})

	case errors.Is(err, issuer.ErrConfiguration):
		debug := tokensvc.ConfigCheck{}
		if ce, ok := errors.As[*issuer.ConfigError](err); ok {
			debug = (*ce).Check
		}
		r.logger.Error("Token request failed: incomplete configuration")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Server configuration error",
			"debug": debug,
		})

	default:
		r.logger.Error("Token generation failed", log.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate token",
			"details": err.Error(),
		})
	}
}

func (r *Router) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}
