package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/LeHoanggggedu/RentAI-backend/domain"
	"github.com/LeHoanggggedu/RentAI-backend/internal/config"
	"github.com/LeHoanggggedu/RentAI-backend/internal/infrastructure/auth"
	"github.com/LeHoanggggedu/RentAI-backend/internal/infrastructure/database"
	"github.com/LeHoanggggedu/RentAI-backend/internal/infrastructure/notifications"
	"github.com/LeHoanggggedu/RentAI-backend/internal/infrastructure/repositories"
	"github.com/LeHoanggggedu/RentAI-backend/internal/logging"
	"github.com/LeHoanggggedu/RentAI-backend/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config
	Logger *zap.SugaredLogger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	// Repositories
	UserRepo domain.UserRepository
	OTPStore domain.OTPStore

	// Services
	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	NotifySvc   domain.NotificationService
	RegSvc      domain.RegistrationService
	PolicySvc   domain.PolicyService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logging.New(),
	}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(); err != nil {
		return nil, err
	}

	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}

	c.DB = db
	c.Casbin = cas
	return nil
}

func (c *Container) initRedis() error {
	rdb := database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
	if err := rdb.Ping(context.Background()); err != nil {
		return err
	}
	c.RedisClient = rdb.Client
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.OTPStore = repositories.NewOTPStore(c.RedisClient)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.AccessTTL)
	c.NotifySvc = c.buildNotifier()
	c.PolicySvc = services.NewPolicyService(c.Casbin.E)

	c.RegSvc = services.NewRegistrationService(
		c.UserRepo,
		c.OTPStore,
		c.PasswordSvc,
		c.TokenSvc,
		c.NotifySvc,
		services.NewCodeGenerator(c.Config.OTPLength),
		services.RegistrationConfig{
			OTPTTL:    c.Config.OTPTTL,
			AccessTTL: c.Config.AccessTTL,
		},
		c.Logger,
	)
}

func (c *Container) buildNotifier() domain.NotificationService {
	if c.Config.Notifier == "sms" {
		return notifications.NewTwilioService(
			c.Config.TwilioSID,
			c.Config.TwilioToken,
			c.Config.TwilioFrom,
		)
	}
	return notifications.NewSMTPService(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUsername,
		c.Config.SMTPPassword,
		c.Config.SMTPFrom,
	)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
