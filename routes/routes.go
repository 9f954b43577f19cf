package routes

import (
	"net/http"
	"strings"

	"belalbarber-backend/config"
	"belalbarber-backend/controllers"
	"belalbarber-backend/models"
	"belalbarber-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(site *config.SiteContent) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://belalbarber.com",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.HandleMethodNotAllowed = true
	r.NoMethod(methodNotAllowed(r))

	// Public site
	r.GET("/services", controllers.GetPublicServices)
	r.POST("/contacts", controllers.CreateContact)
	r.POST("/reservations", controllers.CreateReservation)
	r.GET("/availability", controllers.GetAvailability(site))
	r.GET("/site", controllers.GetSiteContent(site))

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Admin panel: every route behind the role gate
	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(), utils.RequireRole(models.RoleAdmin))
	{
		api.GET("/services", controllers.GetAllServices)
		api.POST("/services", controllers.CreateService)
		api.PUT("/services", controllers.UpdateService)
		api.DELETE("/services", controllers.DeleteService)

		api.GET("/contacts", controllers.GetContacts)

		api.GET("/reservations", controllers.GetReservations)
		api.PUT("/reservations", controllers.UpdateReservationStatus)

		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}

// methodNotAllowed replies 405 with an Allow header listing the methods
// registered for the requested path. All routes use literal paths, so an
// exact match against the route table is enough.
func methodNotAllowed(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var allowed []string
		for _, route := range r.Routes() {
			if route.Path == c.Request.URL.Path {
				allowed = append(allowed, route.Method)
			}
		}
		c.Header("Allow", strings.Join(allowed, ", "))
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": "Method " + c.Request.Method + " not allowed",
		})
	}
}
