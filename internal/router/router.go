package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/immerseindia/backend/api/handler"
)

type Handlers struct {
	Auth       *apiHandler.AuthHandler
	Experience *apiHandler.ExperienceHandler
	Itinerary  *apiHandler.ItineraryHandler
	Image      *apiHandler.ImageHandler
	Update     *apiHandler.UpdateHandler
	Search     *apiHandler.SearchHandler
	Dashboard  *apiHandler.DashboardHandler
	Health     *apiHandler.HealthHandler
}

type Middleware = func(fasthttp.RequestHandler) fasthttp.RequestHandler

// New wires the route table. Reads require a session; mutations additionally
// require the admin role.
func New(handlers Handlers, sessionAuth, requireAdmin Middleware) *router.Router {
	r := router.New()

	admin := func(h fasthttp.RequestHandler) fasthttp.RequestHandler {
		return sessionAuth(requireAdmin(h))
	}

	r.GET("/health", handlers.Health.Health)

	// Auth routes
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/logout", sessionAuth(handlers.Auth.Logout))

	// Content routes
	r.GET("/api/v1/experiences", sessionAuth(handlers.Experience.List))
	r.POST("/api/v1/experiences", admin(handlers.Experience.Create))
	r.PUT("/api/v1/experiences/{id}", admin(handlers.Experience.Update))
	r.DELETE("/api/v1/experiences/{id}", admin(handlers.Experience.Delete))

	r.GET("/api/v1/itineraries", sessionAuth(handlers.Itinerary.List))
	r.POST("/api/v1/itineraries", admin(handlers.Itinerary.Create))
	r.PUT("/api/v1/itineraries/{id}", admin(handlers.Itinerary.Update))
	r.DELETE("/api/v1/itineraries/{id}", admin(handlers.Itinerary.Delete))

	r.GET("/api/v1/images", sessionAuth(handlers.Image.List))
	r.POST("/api/v1/images", admin(handlers.Image.Create))
	r.PUT("/api/v1/images/{id}", admin(handlers.Image.Update))
	r.DELETE("/api/v1/images/{id}", admin(handlers.Image.Delete))
	r.GET("/api/v1/images/{id}/download", sessionAuth(handlers.Image.Download))

	r.GET("/api/v1/updates", sessionAuth(handlers.Update.List))
	r.POST("/api/v1/updates", admin(handlers.Update.Create))
	r.PUT("/api/v1/updates/{id}", admin(handlers.Update.Update))
	r.DELETE("/api/v1/updates/{id}", admin(handlers.Update.Delete))

	// Search over the full catalog
	r.GET("/api/v1/search", sessionAuth(handlers.Search.Search))

	// Dashboard shell
	r.GET("/api/v1/dashboard", sessionAuth(handlers.Dashboard.State))
	r.PUT("/api/v1/dashboard/section", sessionAuth(handlers.Dashboard.SetSection))
	r.PUT("/api/v1/dashboard/region", sessionAuth(handlers.Dashboard.SetRegion))
	r.POST("/api/v1/dashboard/search", sessionAuth(handlers.Dashboard.SubmitSearch))

	return r
}
