package router // package router defines how HTTP routes are registered for the web presence

import (
	"github.com/labstack/echo/v4"            // import the Echo web framework to handle routing
	echomw "github.com/labstack/echo/v4/middleware" // Echo's built-in middleware (CORS, static)
	"github.com/redis/go-redis/v9"           // Redis client shared by cache and rate limiter

	"github.com/stackpoker/stackweb/internal/config"     // cache/rate-limit configuration
	"github.com/stackpoker/stackweb/internal/handler"    // import the handlers that implement business logic
	"github.com/stackpoker/stackweb/internal/middleware" // response cache, rate limiting, optional identity
)

// RegisterRoutes registers the health check, the replay page and the static
// marketing assets on the provided Echo instance. The replay page sits
// behind the Redis response cache so repeat opens of a shared link do not
// touch the document store; the cache is a no-op when rdb is nil.
func RegisterRoutes(e *echo.Echo, h *handler.HandHandler, rdb *redis.Client, staticDir string) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)

	e.GET("/hands/:id", h.GetSharedHand, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	// Everything else (landing page, images, wasm_exec.js, replay.wasm) is
	// served straight from the public directory.
	e.Use(echomw.StaticWithConfig(echomw.StaticConfig{
		Root:  staticDir,
		HTML5: false,
	}))
}

// RegisterInvites registers the referral endpoints. The app's WebView and
// the installed app both call these cross-origin, so the group carries a
// permissive CORS policy for POST and its preflight. Every invite endpoint,
// the HTML landing page included, runs the token-bucket rate limiter; the
// POST group additionally runs the optional-identity middleware, which only
// refines the rate-limit key and never gates access.
func RegisterInvites(e *echo.Echo, inv *handler.InviteHandler, rdb *redis.Client, jwtSecret string) {
	g := e.Group("/v1/invites")
	g.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	g.Use(middleware.OptionalIdentity(jwtSecret))
	g.Use(limiter)

	// Register a POST endpoint to mint an app-sourced invite token at /v1/invites.
	g.POST("", inv.CreatePendingInvite)
	// Register a POST endpoint for the freshly installed app to claim the
	// newest web-sourced invite at /v1/invites/claim-latest.
	g.POST("/claim-latest", inv.ClaimLatestInvite)
	// Register a POST endpoint to record a referral redemption at /v1/invites/redeem.
	g.POST("/redeem", inv.RedeemInvite)

	// The landing page lives outside the group: it is a top-level HTML page,
	// not a CORS API. It still takes the token bucket: every anonymous GET
	// writes a pending_invites row, so this route is IP-throttled like the
	// POST endpoints.
	e.GET("/invite/:inviter", inv.InviteLandingPage, limiter)
}
