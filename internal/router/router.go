// Package router assembles the HTTP surface: diner session routes, staff
// menu and bill routes, and auth.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rinisriranganathan/RestBot/internal/auth"
	"github.com/rinisriranganathan/RestBot/internal/bill"
	"github.com/rinisriranganathan/RestBot/internal/catalog"
	"github.com/rinisriranganathan/RestBot/internal/middleware"
	"github.com/rinisriranganathan/RestBot/internal/session"
)

// Handlers carries everything the router mounts.
type Handlers struct {
	Auth     *auth.Handler
	Catalog  *catalog.Handler
	Bills    *bill.Handler
	Sessions *session.Handler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	// Diner routes: opening a session is public; everything after rides the
	// session token it returns.
	r.POST("/sessions", h.Sessions.Create)

	sessions := r.Group("/sessions/:id")
	sessions.Use(middleware.SessionAuthMiddleware())
	{
		sessions.POST("/messages", h.Sessions.Message)
		sessions.GET("/order", h.Sessions.Order)
		sessions.POST("/checkout", h.Sessions.Checkout)
		sessions.POST("/bill/confirm", h.Sessions.ConfirmBill)
	}

	// Staff routes
	menus := r.Group("/menus")
	menus.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleStaff),
	)
	{
		menus.POST("/upload", h.Catalog.Upload)
		menus.GET("/status", h.Catalog.GetStatus)
		menus.POST("/retry", h.Catalog.Retry)
	}

	bills := r.Group("/bills")
	bills.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleStaff),
	)
	{
		bills.GET("/latest", h.Bills.GetLatest)
	}

	return r
}
