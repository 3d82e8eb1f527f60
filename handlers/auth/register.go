package auth

import (
	"errors"

	"github.com/admitdesk/api/model"
	authutil "github.com/admitdesk/api/utils/auth"
	"github.com/admitdesk/api/utils/response"
	"github.com/admitdesk/api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name          string `json:"name" validate:"required,min=2"`
	InstituteName string `json:"instituteName" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	MobileNumber  string `json:"mobileNumber" validate:"required,mobile"`
	Password      string `json:"password" validate:"required,min=8"`
}

// RegisterResponse represents a successful registration response
type RegisterResponse struct {
	User model.PublicUser `json:"user"`
}

// Register handles user registration
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate request
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	// Check if user already exists
	var existingUser model.User
	if err := h.db.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		return response.Conflict(c, "User with this email already exists")
	}

	// Hash password
	hashedPassword, err := authutil.HashPassword(req.Password)
	if err != nil {
		return response.InternalServerError(c, "Failed to process password")
	}

	// Create user
	user := model.User{
		Name:          validation.SanitizeString(req.Name),
		InstituteName: validation.SanitizeString(req.InstituteName),
		Email:         req.Email,
		MobileNumber:  req.MobileNumber,
		PasswordHash:  hashedPassword,
		TokenVersion:  0,
	}

	if err := h.db.Create(&user).Error; err != nil {
		// The unique index is the real backstop; the pre-check above races.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict(c, "User with this email already exists")
		}
		return response.InternalServerError(c, "Failed to create user")
	}

	return response.Created(c, "User registered successfully", RegisterResponse{
		User: user.Public(),
	})
}
