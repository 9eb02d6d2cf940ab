package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/izzypositivetech-001/Attendifybackend/internal/audit"
	"github.com/izzypositivetech-001/Attendifybackend/internal/httperr"
	"github.com/izzypositivetech-001/Attendifybackend/internal/httpresp"
	"github.com/izzypositivetech-001/Attendifybackend/internal/middleware"
	"github.com/izzypositivetech-001/Attendifybackend/internal/models"
	"github.com/izzypositivetech-001/Attendifybackend/internal/upload"
	"github.com/izzypositivetech-001/Attendifybackend/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type EmployeeHandler struct {
	db      *gorm.DB
	storage upload.Storage
	audit   *audit.Dispatcher
}

func NewEmployeeHandler(
	db *gorm.DB,
	storage upload.Storage,
	audit *audit.Dispatcher,
) *EmployeeHandler {
	return &EmployeeHandler{
		db:      db,
		storage: storage,
		audit:   audit,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *EmployeeHandler) Create(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Multipart form expected.")
		return
	}

	get := func(key string) string {
		if vs, ok := form.Value[key]; ok && len(vs) > 0 {
			return strings.TrimSpace(vs[0])
		}
		return ""
	}

	emp := models.Employee{
		Name:           get("name"),
		Email:          strings.ToLower(get("email")),
		Phone:          get("phone"),
		Address:        get("address"),
		Position:       get("position"),
		Department:     get("department"),
		EmployeeCode:   get("employee_code"),
		FaceDescriptor: get("face_descriptor"),
		IsActive:       true,
	}

	for field, value := range map[string]string{
		"name":          emp.Name,
		"email":         emp.Email,
		"position":      emp.Position,
		"department":    emp.Department,
		"employee_code": emp.EmployeeCode,
	} {
		if value == "" {
			httperr.BadRequest(c, "missing_"+field, "Field "+field+" is required.")
			return
		}
	}

	if !validators.IsEmailValid(emp.Email) {
		httperr.BadRequest(c, "invalid_email", "Invalid email address.")
		return
	}

	if file := firstFile(form, "profile_image"); file != nil {
		path, err := h.storage.Save(c.Request.Context(), file)
		if err != nil {
			h.writeUploadError(c, err)
			return
		}
		emp.ProfileImage = path
	}

	if err := h.db.Create(&emp).Error; err != nil {
		// a failed insert must not leave the image behind
		h.removeImage(c, emp.ProfileImage)

		if httperr.IsDuplicate(err) {
			httperr.BadRequest(c, "employee_already_exists", "Employee already exists.")
			return
		}
		log.Error().Err(err).Msg("create employee")
		httperr.Internal(c, "failed_to_create_employee", "Server error.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.ActorID(c),
		Action:   "employee_created",
		Entity:   "employee",
		EntityID: &emp.ID,
	})

	httpresp.JSON(c, http.StatusCreated, gin.H{"employee": emp})
}

// ======================================================
// LIST / GET
// ======================================================

func (h *EmployeeHandler) List(c *gin.Context) {
	employees := []models.Employee{}
	if err := h.db.
		Order("created_at DESC").
		Find(&employees).Error; err != nil {

		log.Error().Err(err).Msg("list employees")
		httperr.Internal(c, "failed_to_list_employees", "Server error.")
		return
	}

	httpresp.OK(c, gin.H{"employees": employees})
}

func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_employee_id", "Invalid employee ID.")
		return
	}

	var emp models.Employee
	if err := h.db.First(&emp, id).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "employee_not_found", "Employee not found.")
			return
		}
		log.Error().Err(err).Msg("get employee")
		httperr.Internal(c, "failed_to_get_employee", "Server error.")
		return
	}

	httpresp.OK(c, gin.H{"employee": emp})
}

// ======================================================
// UPDATE
// ======================================================

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_employee_id", "Invalid employee ID.")
		return
	}

	var emp models.Employee
	if err := h.db.First(&emp, id).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "employee_not_found", "Employee not found.")
			return
		}
		log.Error().Err(err).Msg("get employee for update")
		httperr.Internal(c, "failed_to_get_employee", "Server error.")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Multipart form expected.")
		return
	}

	// A field is applied iff the form carries its key, so an explicitly
	// empty value is an overwrite, not a no-op.
	apply := func(key string, dst *string) bool {
		if vs, ok := form.Value[key]; ok && len(vs) > 0 {
			*dst = strings.TrimSpace(vs[0])
			return true
		}
		return false
	}

	apply("name", &emp.Name)
	apply("phone", &emp.Phone)
	apply("address", &emp.Address)
	apply("position", &emp.Position)
	apply("department", &emp.Department)
	apply("employee_code", &emp.EmployeeCode)
	apply("face_descriptor", &emp.FaceDescriptor)

	if apply("email", &emp.Email) {
		emp.Email = strings.ToLower(emp.Email)
		if !validators.IsEmailValid(emp.Email) {
			httperr.BadRequest(c, "invalid_email", "Invalid email address.")
			return
		}
	}

	if vs, ok := form.Value["is_active"]; ok && len(vs) > 0 {
		active, err := strconv.ParseBool(strings.TrimSpace(vs[0]))
		if err != nil {
			httperr.BadRequest(c, "invalid_is_active", "Field is_active must be a boolean.")
			return
		}
		emp.IsActive = active
	}

	oldImage := ""
	if file := firstFile(form, "profile_image"); file != nil {
		path, err := h.storage.Save(c.Request.Context(), file)
		if err != nil {
			h.writeUploadError(c, err)
			return
		}
		oldImage = emp.ProfileImage
		emp.ProfileImage = path
	}

	if err := h.db.Save(&emp).Error; err != nil {
		if oldImage != "" {
			// keep the previous image, drop the new orphan
			h.removeImage(c, emp.ProfileImage)
		}

		if httperr.IsDuplicate(err) {
			httperr.BadRequest(c, "employee_already_exists", "Employee already exists.")
			return
		}
		log.Error().Err(err).Msg("update employee")
		httperr.Internal(c, "failed_to_update_employee", "Server error.")
		return
	}

	if oldImage != "" {
		h.removeImage(c, oldImage)
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.ActorID(c),
		Action:   "employee_updated",
		Entity:   "employee",
		EntityID: &emp.ID,
	})

	httpresp.OK(c, gin.H{"employee": emp})
}

// ======================================================
// DELETE
// ======================================================

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_employee_id", "Invalid employee ID.")
		return
	}

	var emp models.Employee
	if err := h.db.First(&emp, id).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "employee_not_found", "Employee not found.")
			return
		}
		log.Error().Err(err).Msg("get employee for delete")
		httperr.Internal(c, "failed_to_get_employee", "Server error.")
		return
	}

	if err := h.db.Delete(&emp).Error; err != nil {
		log.Error().Err(err).Msg("delete employee")
		httperr.Internal(c, "failed_to_delete_employee", "Server error.")
		return
	}

	// best effort; the employee is gone either way
	h.removeImage(c, emp.ProfileImage)

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.ActorID(c),
		Action:   "employee_deleted",
		Entity:   "employee",
		EntityID: &emp.ID,
	})

	httpresp.OK(c, gin.H{"message": "Employee deleted successfully"})
}

// ======================================================
// HELPERS
// ======================================================

func firstFile(form *multipart.Form, key string) *multipart.FileHeader {
	if fs, ok := form.File[key]; ok && len(fs) > 0 {
		return fs[0]
	}
	return nil
}

func (h *EmployeeHandler) removeImage(c *gin.Context, path string) {
	if path == "" {
		return
	}
	if err := h.storage.Remove(c.Request.Context(), path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("remove profile image")
	}
}

func (h *EmployeeHandler) writeUploadError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "file_too_large":
		httperr.BadRequest(c, "file_too_large", "Image exceeds the size limit.")
	case "invalid_file_type":
		httperr.BadRequest(c, "invalid_file_type", "Only JPEG, PNG and GIF images are allowed.")
	default:
		log.Error().Err(err).Msg("store profile image")
		httperr.Internal(c, "failed_to_store_image", "Server error.")
	}
}
