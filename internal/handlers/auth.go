package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"vetclinic-server/internal/config"
	"vetclinic-server/internal/middleware"
	"vetclinic-server/internal/models"
	"vetclinic-server/internal/utils"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

// LoginRequest is the form-encoded login body. The username field carries the
// veterinarian's email.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// TokenResponse is the login response body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login authenticates a veterinarian and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	var vet models.Veterinarian
	if err := h.DB.Where("email = ?", req.Username).First(&vet).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Unauthorized(c, "Incorrect email or password")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if !vet.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Incorrect email or password")
		return
	}

	token, err := utils.GenerateToken(vet.Email, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token: "+err.Error())
		return
	}

	c.JSON(200, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// SignUpRequest represents the request body for veterinarian registration.
type SignUpRequest struct {
	LicenseNumber  string     `json:"licenseNumber" binding:"required"`
	FirstName      string     `json:"firstName" binding:"required"`
	LastName       string     `json:"lastName" binding:"required"`
	Email          string     `json:"email" binding:"required,email"`
	Password       string     `json:"password" binding:"required,min=8"`
	Phone          string     `json:"phone"`
	Specialization string     `json:"specialization"`
	HireDate       *time.Time `json:"hireDate"`
	ConsultationFee *float64  `json:"consultationFee"`
}

// SignUp registers a new veterinarian account.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var existing models.Veterinarian
	if err := h.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.BadRequest(c, "Email already registered")
		return
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	if err := h.DB.Where("license_number = ?", req.LicenseNumber).First(&existing).Error; err == nil {
		utils.BadRequest(c, "License number already registered")
		return
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	hireDate := req.HireDate
	if hireDate == nil {
		now := time.Now()
		hireDate = &now
	}

	vet := models.Veterinarian{
		LicenseNumber:   req.LicenseNumber,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Specialization:  req.Specialization,
		HireDate:        hireDate,
		IsActive:        true,
		ConsultationFee: req.ConsultationFee,
	}
	if err := vet.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}

	if err := h.DB.Create(&vet).Error; err != nil {
		utils.InternalServerError(c, "Failed to create veterinarian: "+err.Error())
		return
	}

	utils.Created(c, "Veterinarian registered successfully", vet)
}

// RecoverPasswordRequest represents the request body for password recovery.
type RecoverPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RecoverPassword resets the account to a random temporary password. The
// password is emitted to the operational log only, never in the response.
func (h *AuthHandler) RecoverPassword(c *gin.Context) {
	var req RecoverPasswordRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var vet models.Veterinarian
	if err := h.DB.Where("email = ?", req.Email).First(&vet).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	tempPassword, err := utils.GenerateTemporaryPassword(16)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate temporary password")
		return
	}
	if err := vet.SetPassword(tempPassword); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}
	if err := h.DB.Model(&vet).Update("password", vet.Password).Error; err != nil {
		utils.InternalServerError(c, "Failed to update password: "+err.Error())
		return
	}

	log.Info().
		Str("email", vet.Email).
		Str("temporary_password", tempPassword).
		Msg("password recovery: temporary password issued")

	utils.Success(c, "A temporary password has been generated. Check the server operational log.", nil)
}

// Me returns the currently authenticated veterinarian.
func (h *AuthHandler) Me(c *gin.Context) {
	vet, ok := middleware.CurrentVeterinarian(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	utils.Success(c, "Profile fetched successfully", vet)
}
