package admission

import (
	"errors"
	"time"

	"github.com/admitdesk/api/model"
	"github.com/admitdesk/api/utils/response"
	"github.com/admitdesk/api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdmissionHandler handles student enrollment records
type AdmissionHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewAdmissionHandler creates a new admission handler
func NewAdmissionHandler(db *gorm.DB) *AdmissionHandler {
	return &AdmissionHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateAdmissionRequest represents the admission form submission
type CreateAdmissionRequest struct {
	Name           string `json:"name" validate:"required,min=2"`
	Mobile         string `json:"mobile" validate:"required,mobile"`
	Email          string `json:"email" validate:"required,email"`
	Qualification  string `json:"qualification" validate:"required"`
	ParentName     string `json:"parent_name" validate:"required"`
	ParentMobile   string `json:"parent_mobile" validate:"required,mobile"`
	Address        string `json:"address" validate:"required"`
	Course         string `json:"course" validate:"required,course"`
	ModeOfLearning string `json:"mode_of_learning" validate:"required,oneof=online offline"`
	PreferredSlot  string `json:"preferred_slot" validate:"required,oneof=morning evening"`
	Placement      string `json:"placement" validate:"required,oneof=yes no"`
	AttendBy       string `json:"attend_by" validate:"required,oneof=self guardian"`
	Batch          string `json:"batch" validate:"required,batch"`
}

// UpdateAdmissionRequest carries the fields to replace; empty fields are left
// as stored.
type UpdateAdmissionRequest struct {
	Name           string `json:"name" validate:"omitempty,min=2"`
	Mobile         string `json:"mobile" validate:"omitempty,mobile"`
	Email          string `json:"email" validate:"omitempty,email"`
	Qualification  string `json:"qualification"`
	ParentName     string `json:"parent_name"`
	ParentMobile   string `json:"parent_mobile" validate:"omitempty,mobile"`
	Address        string `json:"address"`
	Course         string `json:"course" validate:"omitempty,course"`
	ModeOfLearning string `json:"mode_of_learning" validate:"omitempty,oneof=online offline"`
	PreferredSlot  string `json:"preferred_slot" validate:"omitempty,oneof=morning evening"`
	Placement      string `json:"placement" validate:"omitempty,oneof=yes no"`
	AttendBy       string `json:"attend_by" validate:"omitempty,oneof=self guardian"`
	Batch          string `json:"batch" validate:"omitempty,batch"`
}

// CheckDuplicateRequest asks whether an admission with the email OR the
// mobile already exists.
type CheckDuplicateRequest struct {
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

// ListAdmissions handles GET /api/v1/admissions.
// The full, unpaginated list is the contract: clients group and filter
// locally by course and batch.
func (h *AdmissionHandler) ListAdmissions(c *fiber.Ctx) error {
	var admissions []model.Admission
	if err := h.db.Find(&admissions).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch admissions")
	}

	return response.Success(c, admissions)
}

// CreateAdmission handles POST /api/v1/admissions.
//
// Uniqueness of (email, mobile) is enforced by the unique indexes, not by a
// pre-check: two racing submissions cannot both succeed, the loser gets a
// Conflict. The /check endpoint stays advisory.
func (h *AdmissionHandler) CreateAdmission(c *fiber.Ctx) error {
	var req CreateAdmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	admission := model.Admission{
		Name:           validation.SanitizeString(req.Name),
		Mobile:         req.Mobile,
		Email:          req.Email,
		Qualification:  validation.SanitizeString(req.Qualification),
		ParentName:     validation.SanitizeString(req.ParentName),
		ParentMobile:   req.ParentMobile,
		Address:        validation.SanitizeString(req.Address),
		Course:         req.Course,
		ModeOfLearning: req.ModeOfLearning,
		PreferredSlot:  req.PreferredSlot,
		Placement:      req.Placement,
		AttendBy:       req.AttendBy,
		Batch:          req.Batch,
		Date:           time.Now(),
	}

	if err := h.db.Create(&admission).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict(c, "Admission with this email or mobile already exists")
		}
		return response.InternalServerError(c, "Failed to submit admission")
	}

	return response.Created(c, "Admission submitted successfully!", admission)
}

// CheckDuplicate handles POST /api/v1/admissions/check.
// Matches on email OR mobile; advisory only, the unique index is the backstop.
func (h *AdmissionHandler) CheckDuplicate(c *fiber.Ctx) error {
	var req CheckDuplicateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var count int64
	err := h.db.Model(&model.Admission{}).
		Where("email = ? OR mobile = ?", req.Email, req.Mobile).
		Count(&count).Error
	if err != nil {
		return response.InternalServerError(c, "Error checking admission data")
	}

	return response.Success(c, fiber.Map{"exists": count > 0})
}

// UpdateAdmission handles PUT /api/v1/admissions/:id and returns the
// updated document. Supplied fields replace stored ones.
func (h *AdmissionHandler) UpdateAdmission(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid admission id")
	}

	var req UpdateAdmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var admission model.Admission
	if err := h.db.First(&admission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Admission not found")
		}
		return response.InternalServerError(c, "Failed to fetch admission")
	}

	updates := model.Admission{
		Name:           validation.SanitizeString(req.Name),
		Mobile:         req.Mobile,
		Email:          req.Email,
		Qualification:  validation.SanitizeString(req.Qualification),
		ParentName:     validation.SanitizeString(req.ParentName),
		ParentMobile:   req.ParentMobile,
		Address:        validation.SanitizeString(req.Address),
		Course:         req.Course,
		ModeOfLearning: req.ModeOfLearning,
		PreferredSlot:  req.PreferredSlot,
		Placement:      req.Placement,
		AttendBy:       req.AttendBy,
		Batch:          req.Batch,
	}

	if err := h.db.Model(&admission).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict(c, "Admission with this email or mobile already exists")
		}
		return response.InternalServerError(c, "Failed to update admission")
	}

	if err := h.db.First(&admission, id).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch updated admission")
	}

	return response.Success(c, admission)
}

// DeleteAdmission handles DELETE /api/v1/admissions/:id.
// Attendance rows referencing the admission are left in place; the log keeps
// dangling student ids on purpose.
func (h *AdmissionHandler) DeleteAdmission(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid admission id")
	}

	res := h.db.Delete(&model.Admission{}, id)
	if res.Error != nil {
		return response.InternalServerError(c, "Failed to delete admission")
	}
	if res.RowsAffected == 0 {
		return response.NotFound(c, "Admission not found")
	}

	return response.SuccessWithMessage(c, "Admission deleted successfully!", nil)
}

// GroupedByCourse handles GET /api/v1/admissions/grouped.
func (h *AdmissionHandler) GroupedByCourse(c *fiber.Ctx) error {
	var grouped []model.CourseCount
	err := h.db.Model(&model.Admission{}).
		Select("course, COUNT(*) AS count").
		Group("course").
		Scan(&grouped).Error
	if err != nil {
		return response.InternalServerError(c, "Error fetching grouped admissions data")
	}

	return response.Success(c, grouped)
}
