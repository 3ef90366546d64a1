package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeHoanggggedu/RentAI-backend/internal/config"
	httpx "github.com/LeHoanggggedu/RentAI-backend/internal/http"
	"github.com/LeHoanggggedu/RentAI-backend/internal/http/handlers"
	"github.com/LeHoanggggedu/RentAI-backend/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	authH := handlers.NewAuthHandlers(c.RegSvc)
	admH := handlers.NewAdminHandlers(c.UserRepo, c.PolicySvc)

	jwtMW := middleware.NewAuthMW(c.TokenSvc)
	casbinMW := middleware.NewCasbinMW(c.Casbin.E)

	r := httpx.BuildRouter(authH, admH, jwtMW, casbinMW)

	if len(c.PolicySvc.GetPolicies()) == 0 {
		if err := c.PolicySvc.AddPolicy("admin", "/api/admin/*", "(GET|POST|PUT|DELETE)"); err != nil {
			return err
		}
		c.Logger.Infow("casbin: seeded default policies")
	}

	addr := ":" + cfg.Port
	c.Logger.Infow("server listening", "addr", addr)
	return http.ListenAndServe(addr, r)
}
