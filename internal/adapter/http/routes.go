package http

import (
	"github.com/gin-gonic/gin"

	"github.com/GNaves/Tasks-API/internal/adapter/http/handlers"
	"github.com/GNaves/Tasks-API/internal/adapter/http/middleware"
	"github.com/GNaves/Tasks-API/internal/auth"
	"github.com/GNaves/Tasks-API/internal/core/domain"
	"github.com/GNaves/Tasks-API/internal/ratelimit"
)

type RouterDeps struct {
	Health   *handlers.HealthHandler
	Users    *handlers.UserHandler
	Sessions *handlers.SessionHandler
	Teams    *handlers.TeamHandler
	Tasks    *handlers.TaskHandler
	Tokens   *auth.TokenManager
	Limiter  *ratelimit.RateLimiter
}

// RegisterRoutes wires every endpoint. Role allow-lists are declared here,
// next to the route they guard, and enforced by a single middleware.
func RegisterRoutes(r *gin.Engine, deps RouterDeps) {
	r.Use(middleware.LanguageMiddleware())

	api := r.Group("/api")
	{
		api.GET("/health", deps.Health.CheckHealth)
		api.GET("/health/report", deps.Health.CheckHealthReport)
	}

	r.POST("/users", middleware.AuthRateLimit(deps.Limiter), deps.Users.Create)
	r.POST("/sessions", middleware.AuthRateLimit(deps.Limiter), deps.Sessions.Create)

	task := r.Group("/task")
	{
		task.GET("", deps.Tasks.List)
		task.POST("", deps.Tasks.Create)
		task.DELETE("/:id", deps.Tasks.Delete)

		task.PATCH("/:id/status",
			middleware.RequireAuth(deps.Tokens),
			middleware.RequireRole(domain.RoleAdmin),
			deps.Tasks.UpdateStatus)
		task.PATCH("/:id/priority",
			middleware.RequireAuth(deps.Tokens),
			middleware.RequireRole(domain.RoleAdmin),
			deps.Tasks.UpdatePriority)
		task.PATCH("/:id/updateByUser",
			middleware.RequireAuth(deps.Tokens),
			deps.Tasks.UpdateByUser)
	}

	team := r.Group("/team")
	team.Use(middleware.RequireAuth(deps.Tokens))
	{
		team.GET("", middleware.RequireRole(domain.RoleAdmin, domain.RoleMember), deps.Teams.List)
		team.POST("", middleware.RequireRole(domain.RoleAdmin), deps.Teams.Create)
		team.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), deps.Teams.Delete)
		team.POST("/:teamId/members", middleware.RequireRole(domain.RoleAdmin), deps.Teams.AddMember)
	}
}
