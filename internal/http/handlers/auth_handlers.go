package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeHoanggggedu/RentAI-backend/domain"
)

// AuthHandlers handles registration and authentication HTTP requests
type AuthHandlers struct {
	regSvc domain.RegistrationService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(regSvc domain.RegistrationService) *AuthHandlers {
	return &AuthHandlers{regSvc: regSvc}
}

// RegisterRequest represents a registration submission
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Phone    string `json:"phone" binding:"required,min=10,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Role     string `json:"role,omitempty"`
}

// OTPVerifyRequest represents an OTP verification submission
type OTPVerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

// ResendOTPRequest represents a resend request
type ResendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// LoginRequest represents a login submission
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func userPayload(user *domain.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"name":          user.Name,
		"email":         user.Email,
		"phone":         user.Phone,
		"role":          user.Role,
		"referral_code": user.ReferralCode,
		"status":        user.Status,
	}
}

// Register handles POST /api/register/step1
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.regSvc.Register(c.Request.Context(), req.Name, req.Phone, req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Email or phone already registered"})
		case errors.Is(err, domain.ErrInvalidRole), errors.Is(err, domain.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		}
		return
	}

	message := "Registered successfully. A verification code was sent to your email."
	if !result.CodeDelivered {
		message = "Registered successfully, but the verification code could not be delivered. Please request a resend."
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": message,
		"data": gin.H{
			"user_id":        result.User.ID,
			"email":          result.User.Email,
			"code_delivered": result.CodeDelivered,
		},
	})
}

// VerifyOTP handles POST /api/register/verify-otp
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.regSvc.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCodeExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Verification code expired or missing"})
		case errors.Is(err, domain.ErrCodeMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Incorrect verification code"})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrAlreadyActive):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Account already activated"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Account activated successfully.",
		"data": gin.H{
			"user":         userPayload(result.User),
			"access_token": result.AccessToken,
			"token_type":   "Bearer",
			"expires_in":   result.ExpiresIn,
		},
	})
}

// ResendOTP handles POST /api/register/resend-otp
func (h *AuthHandlers) ResendOTP(c *gin.Context) {
	var req ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.regSvc.ResendOTP(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrAlreadyActive):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Account already activated"})
		case errors.Is(err, domain.ErrNotificationFailed):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not deliver the verification code. Please try again."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Resend failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "A new verification code was sent.",
	})
}

// Login handles POST /api/login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.regSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		case errors.Is(err, domain.ErrNotActivated):
			c.JSON(http.StatusForbidden, gin.H{"error": "Account not activated. Please verify the OTP first."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": result.AccessToken,
		"token_type":   "bearer",
		"expires_in":   result.ExpiresIn,
		"user_info":    userPayload(result.User),
	})
}

// Me handles GET /api/me (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	email, exists := c.Get("user_email")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	user, err := h.regSvc.GetProfile(c.Request.Context(), email.(string))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    userPayload(user),
	})
}
