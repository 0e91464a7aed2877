package handler

import (
	"crypto/subtle"
	"net/http"

	"tagpay/internal/adapter/http/dto"
	"tagpay/internal/core/ports"
	"tagpay/pkg/apperror"
	"tagpay/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles operator authentication.
type AuthHandler struct {
	tokenSvc       ports.TokenService
	operatorID     string
	operatorSecret string
}

// NewAuthHandler creates a new AuthHandler for the provisioned operator.
func NewAuthHandler(tokenSvc ports.TokenService, operatorID, operatorSecret string) *AuthHandler {
	return &AuthHandler{
		tokenSvc:       tokenSvc,
		operatorID:     operatorID,
		operatorSecret: operatorSecret,
	}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	idOK := subtle.ConstantTimeCompare([]byte(req.OperatorID), []byte(h.operatorID)) == 1
	secretOK := subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.operatorSecret)) == 1
	if !idOK || !secretOK {
		response.Error(c, apperror.ErrInvalidCredentials())
		return
	}

	token, expiry, err := h.tokenSvc.Generate(req.OperatorID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.LoginResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
