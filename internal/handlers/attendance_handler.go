package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/izzypositivetech-001/Attendifybackend/internal/httperr"
	"github.com/izzypositivetech-001/Attendifybackend/internal/httpresp"
	"github.com/izzypositivetech-001/Attendifybackend/internal/middleware"
	ucAttendance "github.com/izzypositivetech-001/Attendifybackend/internal/usecase/attendance"
)

// ======================================================
// HANDLER
// ======================================================

type AttendanceHandler struct {
	markUC   *ucAttendance.MarkAttendance
	listUC   *ucAttendance.ListAttendance
	statsUC  *ucAttendance.AttendanceStats
	getUC    *ucAttendance.GetAttendance
	updateUC *ucAttendance.UpdateAttendance
	deleteUC *ucAttendance.DeleteAttendance
}

func NewAttendanceHandler(
	markUC *ucAttendance.MarkAttendance,
	listUC *ucAttendance.ListAttendance,
	statsUC *ucAttendance.AttendanceStats,
	getUC *ucAttendance.GetAttendance,
	updateUC *ucAttendance.UpdateAttendance,
	deleteUC *ucAttendance.DeleteAttendance,
) *AttendanceHandler {
	return &AttendanceHandler{
		markUC:   markUC,
		listUC:   listUC,
		statsUC:  statsUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type MarkAttendanceRequest struct {
	EmployeeID uint   `json:"employee_id" binding:"required"`
	Status     string `json:"status"`
	Note       string `json:"note"`
}

type UpdateAttendanceRequest struct {
	Status       *string    `json:"status,omitempty"`
	CheckInTime  *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	Note         *string    `json:"note,omitempty"`
}

// ======================================================
// MARK (check-in / check-out)
// ======================================================

func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	res, err := h.markUC.Execute(c.Request.Context(), ucAttendance.MarkInput{
		EmployeeID: req.EmployeeID,
		Status:     req.Status,
		Note:       req.Note,
		ActorID:    middleware.ActorID(c),
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "employee_not_found":
			httperr.NotFound(c, "employee_not_found", "Employee not found.")
		case "invalid_status":
			httperr.BadRequest(c, "invalid_status", "Invalid attendance status.")
		case "invalid_checkout_time":
			httperr.BadRequest(c, "invalid_checkout_time", "Invalid check-out time.")
		case "already_checked_out":
			httperr.BadRequest(c, "already_checked_out", "Already checked out for today.")
		case "attendance_conflict":
			httperr.BadRequest(c, "attendance_conflict", "Attendance already marked for today.")
		default:
			log.Error().Err(err).Msg("mark attendance")
			httperr.Internal(c, "failed_to_mark_attendance", "Server error.")
		}
		return
	}

	message := "Checked in successfully"
	if res.CheckedOut {
		message = "Checked out successfully"
	}

	httpresp.OK(c, gin.H{
		"message":    message,
		"attendance": res.Attendance,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *AttendanceHandler) List(c *gin.Context) {
	in := ucAttendance.ListInput{
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
		Status:     c.Query("status"),
		Department: c.Query("department"),
	}

	if raw := c.Query("employee_id"); raw != "" {
		id, ok := parseID(raw)
		if !ok {
			httperr.BadRequest(c, "invalid_employee_id", "Invalid employee ID.")
			return
		}
		in.EmployeeID = id
	}

	in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	in.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	out, err := h.listUC.Execute(c.Request.Context(), in)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Invalid date filter.")
			return
		}
		log.Error().Err(err).Msg("list attendance")
		httperr.Internal(c, "failed_to_list_attendance", "Server error.")
		return
	}

	httpresp.OK(c, gin.H{
		"count":       out.Count,
		"totalPages":  out.TotalPages,
		"currentPage": out.CurrentPage,
		"records":     out.Records,
	})
}

// ======================================================
// STATS
// ======================================================

func (h *AttendanceHandler) Stats(c *gin.Context) {
	out, err := h.statsUC.Execute(c.Request.Context(), ucAttendance.StatsInput{
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
		Department: c.Query("department"),
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Invalid date filter.")
			return
		}
		log.Error().Err(err).Msg("attendance stats")
		httperr.Internal(c, "failed_to_compute_stats", "Server error.")
		return
	}

	httpresp.OK(c, gin.H{
		"statusStats":     out.StatusStats,
		"dailyStats":      out.DailyStats,
		"departmentStats": out.DepartmentStats,
		"totalEmployees":  out.TotalEmployees,
		"presentToday":    out.PresentToday,
	})
}

// ======================================================
// GET / UPDATE / DELETE
// ======================================================

func (h *AttendanceHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_attendance_id", "Invalid attendance ID.")
		return
	}

	rec, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "attendance_not_found") {
			httperr.NotFound(c, "attendance_not_found", "Attendance record not found.")
			return
		}
		log.Error().Err(err).Msg("get attendance")
		httperr.Internal(c, "failed_to_get_attendance", "Server error.")
		return
	}

	httpresp.OK(c, gin.H{"attendance": rec})
}

func (h *AttendanceHandler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_attendance_id", "Invalid attendance ID.")
		return
	}

	var req UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	rec, err := h.updateUC.Execute(c.Request.Context(), ucAttendance.UpdateInput{
		ID:           id,
		Status:       req.Status,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		Note:         req.Note,
		ActorID:      middleware.ActorID(c),
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "attendance_not_found":
			httperr.NotFound(c, "attendance_not_found", "Attendance record not found.")
		case "invalid_status":
			httperr.BadRequest(c, "invalid_status", "Invalid attendance status.")
		case "invalid_checkout_time":
			httperr.BadRequest(c, "invalid_checkout_time", "Invalid check-out time.")
		default:
			log.Error().Err(err).Msg("update attendance")
			httperr.Internal(c, "failed_to_update_attendance", "Server error.")
		}
		return
	}

	httpresp.OK(c, gin.H{"attendance": rec})
}

func (h *AttendanceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_attendance_id", "Invalid attendance ID.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, middleware.ActorID(c)); err != nil {
		if httperr.IsBusiness(err, "attendance_not_found") {
			httperr.NotFound(c, "attendance_not_found", "Attendance record not found.")
			return
		}
		log.Error().Err(err).Msg("delete attendance")
		httperr.Internal(c, "failed_to_delete_attendance", "Server error.")
		return
	}

	httpresp.JSON(c, http.StatusOK, gin.H{
		"message": "Attendance record deleted successfully",
	})
}
