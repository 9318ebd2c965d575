package handlers

import (
	"CareSync/middlewares"
	"CareSync/models"
	"CareSync/services"
	"CareSync/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	UserService services.UserService
	TokenMaker  *utils.TokenMaker
}

func NewAuthHandler(userService services.UserService, tokenMaker *utils.TokenMaker) *AuthHandler {
	return &AuthHandler{
		UserService: userService,
		TokenMaker:  tokenMaker,
	}
}

// Register handles new user registration. Only patients may self-register;
// doctors are pre-loaded in the system.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	if req.Role != "" && req.Role != models.RolePatient {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only patients can register. Doctors are pre-loaded in the system."})
		return
	}

	user, err := h.UserService.Register(c.Request.Context(), req)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user.ToResponse(),
	})
}

// Login authenticates the user and returns a session token with the role.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	if err := utils.ValidateLogin(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.UserService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.TokenMaker.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("Failed to issue token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"role":    user.Role,
		"message": "Login successful",
	})
}

// Logout is a no-op for a stateless bearer token; the client discards it.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Profile returns the account behind the presented token.
func (h *AuthHandler) Profile(c *gin.Context) {
	claims, ok := middlewares.ClaimsFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.UserService.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	middlewares.RespondJSON(c, user.ToResponse(), http.StatusOK)
}

// SendResetCode mails a password reset code to the given account.
func (h *AuthHandler) SendResetCode(c *gin.Context) {
	var data struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.UserService.GetUserByEmail(ctx, data.Email); err != nil {
		middlewares.RespondError(c, err)
		return
	}

	code, err := utils.GenerateResetCode()
	if err != nil {
		log.Printf("Failed to generate reset code: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if err := utils.SetResetCode(ctx, data.Email, code); err != nil {
		log.Printf("Failed to store reset code: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if err := utils.SendResetCodeEmail(data.Email, code); err != nil {
		log.Printf("Failed to send reset code email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reset code sent"})
}

// ChangePassword verifies a reset code and rewrites the account password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var data struct {
		Email       string `json:"email"`
		ResetCode   string `json:"reset_code"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	if err := utils.ValidatePasswordReset(data.ResetCode, data.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	stored, err := utils.GetResetCode(ctx, data.Email)
	if err != nil {
		log.Printf("Failed to read reset code: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if stored == nil || *stored != data.ResetCode {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reset code"})
		return
	}

	if err := h.UserService.ResetPassword(ctx, data.Email, data.NewPassword); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	if err := utils.DeleteResetCode(ctx, data.Email); err != nil {
		log.Printf("Failed to delete reset code: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
