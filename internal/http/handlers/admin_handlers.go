package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeHoanggggedu/RentAI-backend/domain"
)

// AdminHandlers exposes the role-gated administration surface
type AdminHandlers struct {
	userRepo  domain.UserRepository
	policySvc domain.PolicyService
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(userRepo domain.UserRepository, policySvc domain.PolicyService) *AdminHandlers {
	return &AdminHandlers{userRepo: userRepo, policySvc: policySvc}
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandlers) ListUsers(c *gin.Context) {
	users, err := h.userRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	payload := make([]gin.H, 0, len(users))
	for _, u := range users {
		payload = append(payload, userPayload(u))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": payload})
}

type policyReq struct {
	Sub string `json:"sub" binding:"required"`
	Obj string `json:"obj" binding:"required"`
	Act string `json:"act" binding:"required"`
}

// ListPolicies handles GET /api/admin/policies
func (h *AdminHandlers) ListPolicies(c *gin.Context) {
	c.JSON(http.StatusOK, h.policySvc.GetPolicies())
}

// AddPolicy handles POST /api/admin/policies
func (h *AdminHandlers) AddPolicy(c *gin.Context) {
	var r policyReq
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.policySvc.AddPolicy(r.Sub, r.Obj, r.Act); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "not added"})
		return
	}
	c.Status(http.StatusNoContent)
}

// RemovePolicy handles DELETE /api/admin/policies
func (h *AdminHandlers) RemovePolicy(c *gin.Context) {
	var r policyReq
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.policySvc.RemovePolicy(r.Sub, r.Obj, r.Act); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "not removed"})
		return
	}
	c.Status(http.StatusNoContent)
}
