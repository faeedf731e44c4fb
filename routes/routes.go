package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"villa-backend/controllers"
	"villa-backend/middleware"
	"villa-backend/utils"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires middleware and route groups around the controllers.
func SetupRouter(
	bc *controllers.BookingController,
	mc *controllers.MessageController,
	store middleware.RateStore,
	log *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
		// preflight answers 200 with an empty body, not the package's
		// default 204
		OptionsResponseStatusCode: http.StatusOK,
	}))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		utils.JSONError(c, http.StatusMethodNotAllowed, "Method not allowed")
	})
	r.NoRoute(func(c *gin.Context) {
		utils.JSONError(c, http.StatusNotFound, "Not found")
	})

	generalLimit := middleware.RateLimitConfig{Window: 15 * time.Minute, MaxRequests: 100}
	submitLimit := middleware.RateLimitConfig{
		Name:        "submit",
		Window:      15 * time.Minute,
		MaxRequests: 5,
		Message:     "Too many submissions, please try again later.",
	}
	authLimit := middleware.RateLimitConfig{
		Name:        "auth",
		Window:      15 * time.Minute,
		MaxRequests: 10,
		Message:     "Too many login attempts, please try again later.",
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimit(store, generalLimit))
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", controllers.GetRooms)
			rooms.GET("/:id", controllers.GetRoom) // id or slug
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("",
				middleware.RateLimit(store, submitLimit),
				middleware.ValidateBody(utils.ValidateBooking),
				bc.Create,
			)
			bookings.GET("/:id", bc.Get)
		}

		api.POST("/contact",
			middleware.RateLimit(store, submitLimit),
			middleware.ValidateBody(utils.ValidateContact),
			mc.Create,
		)

		blog := api.Group("/blog")
		{
			// static segment must be registered alongside /:id
			blog.GET("/categories", controllers.GetBlogCategories)
			blog.GET("", controllers.GetBlogPosts)
			blog.GET("/:id", controllers.GetBlogPost) // id or slug
		}

		attractions := api.Group("/attractions")
		{
			attractions.GET("", controllers.GetAttractions)
			attractions.GET("/:id", controllers.GetAttraction)
		}

		api.GET("/gallery", controllers.GetGalleryImages)
		api.GET("/testimonials", controllers.GetTestimonials)

		tours := api.Group("/tours")
		{
			tours.GET("", controllers.GetVirtualTours)
			tours.GET("/:id", controllers.GetVirtualTour)
		}

		api.GET("/settings", controllers.GetSiteSettings)

		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(store, authLimit), controllers.Login)
			auth.POST("/register", middleware.RateLimit(store, authLimit), controllers.Register)
			auth.GET("/me", middleware.RequireAuth(), controllers.Me)
		}
	}

	admin := r.Group("/api/admin")
	admin.Use(middleware.RateLimit(store, generalLimit), middleware.RequireAdmin())
	{
		rooms := admin.Group("/rooms")
		{
			rooms.POST("", middleware.ValidateBody(utils.ValidateRoom), controllers.CreateRoom)
			rooms.PUT("/:id", middleware.ValidateBody(nil), controllers.UpdateRoom)
			rooms.DELETE("/:id", controllers.DeleteRoom)
		}

		bookings := admin.Group("/bookings")
		{
			bookings.GET("", bc.List)
			bookings.GET("/export", bc.Export)
			bookings.PUT("/:id/status", bc.UpdateStatus)
			bookings.DELETE("/:id", bc.Delete)
		}

		messages := admin.Group("/messages")
		{
			messages.GET("", mc.List)
			messages.GET("/:id", mc.Get)
			messages.PUT("/:id/read", mc.MarkRead)
			messages.DELETE("/:id", mc.Delete)
		}

		blog := admin.Group("/blog")
		{
			blog.GET("", controllers.GetBlogPosts)
			blog.POST("/categories", middleware.ValidateBody(nil), controllers.CreateBlogCategory)
			blog.PUT("/categories/:id", middleware.ValidateBody(nil), controllers.UpdateBlogCategory)
			blog.DELETE("/categories/:id", controllers.DeleteBlogCategory)
			blog.POST("", middleware.ValidateBody(utils.ValidateBlogPost), controllers.CreateBlogPost)
			blog.PUT("/:id", middleware.ValidateBody(nil), controllers.UpdateBlogPost)
			blog.DELETE("/:id", controllers.DeleteBlogPost)
		}

		attractions := admin.Group("/attractions")
		{
			attractions.POST("", middleware.ValidateBody(nil), controllers.CreateAttraction)
			attractions.PUT("/:id", middleware.ValidateBody(nil), controllers.UpdateAttraction)
			attractions.DELETE("/:id", controllers.DeleteAttraction)
		}

		gallery := admin.Group("/gallery")
		{
			gallery.POST("", middleware.ValidateBody(nil), controllers.CreateGalleryImage)
			gallery.PUT("/:id", middleware.ValidateBody(nil), controllers.UpdateGalleryImage)
			gallery.DELETE("/:id", controllers.DeleteGalleryImage)
		}

		testimonials := admin.Group("/testimonials")
		{
			testimonials.POST("", middleware.ValidateBody(utils.ValidateTestimonial), controllers.CreateTestimonial)
			testimonials.PUT("/:id", middleware.ValidateBody(nil), controllers.UpdateTestimonial)
			testimonials.DELETE("/:id", controllers.DeleteTestimonial)
		}

		tours := admin.Group("/tours")
		{
			tours.POST("", middleware.ValidateBody(nil), controllers.CreateVirtualTour)
			tours.PUT("/:id", middleware.ValidateBody(nil), controllers.UpdateVirtualTour)
			tours.DELETE("/:id", controllers.DeleteVirtualTour)
		}

		admin.PUT("/settings", middleware.ValidateBody(nil), controllers.UpdateSiteSettings)
	}

	return r
}
