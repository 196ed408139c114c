package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estateoffice/internal/handlers"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	clientHandler *handlers.ClientHandler,
	realEstateHandler *handlers.RealEstateHandler,
	ownershipTypeHandler *handlers.OwnershipTypeHandler,
	restrictionTypeHandler *handlers.RestrictionTypeHandler,
	ownershipHandler *handlers.OwnershipHandler,
	restrictionHandler *handlers.RestrictionHandler,
	dealHandler *handlers.DealHandler,
	dashboardHandler *handlers.DashboardHandler,
) *gin.Engine {

	// ---- liveness
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Real estate office API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ---- auth
	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// USERS
	users := r.Group("/users")
	{
		users.POST("/", userHandler.Create)
		users.GET("/", userHandler.List)
		users.GET("/:id", userHandler.GetByID)
		users.PATCH("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}

	// CLIENTS
	clients := r.Group("/clients")
	{
		clients.POST("/", clientHandler.Create)
		clients.GET("/", clientHandler.List)
		clients.GET("/:id", clientHandler.GetByID)
		clients.PATCH("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
	}

	// REAL ESTATE
	estate := r.Group("/real_estate")
	{
		estate.POST("/", realEstateHandler.Create)
		estate.GET("/", realEstateHandler.List)
		estate.GET("/:id", realEstateHandler.GetByID)
		estate.PATCH("/:id", realEstateHandler.Update)
		estate.DELETE("/:id", realEstateHandler.Delete)
	}

	// OWNERSHIP TYPES (identity: code)
	ownershipTypes := r.Group("/ownership_types")
	{
		ownershipTypes.POST("/", ownershipTypeHandler.Create)
		ownershipTypes.GET("/", ownershipTypeHandler.List)
		ownershipTypes.GET("/:code", ownershipTypeHandler.GetByCode)
		ownershipTypes.PATCH("/:code", ownershipTypeHandler.Update)
		ownershipTypes.DELETE("/:code", ownershipTypeHandler.Delete)
	}

	// RESTRICTION TYPES (identity: code)
	restrictionTypes := r.Group("/restriction_types")
	{
		restrictionTypes.POST("/", restrictionTypeHandler.Create)
		restrictionTypes.GET("/", restrictionTypeHandler.List)
		restrictionTypes.GET("/:code", restrictionTypeHandler.GetByCode)
		restrictionTypes.PATCH("/:code", restrictionTypeHandler.Update)
		restrictionTypes.DELETE("/:code", restrictionTypeHandler.Delete)
	}

	// OWNERSHIP RECORDS
	ownership := r.Group("/ownership")
	{
		ownership.POST("/", ownershipHandler.Create)
		ownership.GET("/", ownershipHandler.List)
		ownership.GET("/:id", ownershipHandler.GetByID)
		ownership.PATCH("/:id", ownershipHandler.Update)
		ownership.DELETE("/:id", ownershipHandler.Delete)
	}

	// RESTRICTIONS
	restrictions := r.Group("/restrictions")
	{
		restrictions.POST("/", restrictionHandler.Create)
		restrictions.GET("/", restrictionHandler.List)
		restrictions.GET("/:id", restrictionHandler.GetByID)
		restrictions.PATCH("/:id", restrictionHandler.Update)
		restrictions.DELETE("/:id", restrictionHandler.Delete)
	}

	// DEALS
	deals := r.Group("/deals")
	{
		deals.POST("/", dealHandler.Create)
		deals.GET("/", dealHandler.List)
		deals.GET("/:id", dealHandler.GetByID)
		deals.PATCH("/:id", dealHandler.Update)
		deals.DELETE("/:id", dealHandler.Delete)
		deals.GET("/:id/summary", dealHandler.DownloadSummary)
	}

	// DASHBOARD
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/", dashboardHandler.Get)
	}

	return r
}
