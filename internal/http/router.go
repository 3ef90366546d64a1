package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/LeHoanggggedu/RentAI-backend/internal/http/handlers"
	"github.com/LeHoanggggedu/RentAI-backend/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, adm *handlers.AdminHandlers, jwtmw *middleware.AuthMW, cb *middleware.CasbinMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "healthy"}) })

	api := r.Group("/api")
	api.POST("/register/step1", ah.Register)
	api.POST("/register/verify-otp", ah.VerifyOTP)
	api.POST("/register/resend-otp", ah.ResendOTP)
	api.POST("/login", ah.Login)

	authed := api.Group("/").Use(jwtmw.WithJWT())
	authed.GET("/me", ah.Me)

	admin := api.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	admin.GET("/users", adm.ListUsers)
	admin.GET("/policies", adm.ListPolicies)
	admin.POST("/policies", adm.AddPolicy)
	admin.DELETE("/policies", adm.RemovePolicy)

	return r
}
