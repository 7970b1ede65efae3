package http

import (
	"net/http"
	"strconv"

	"github.com/hrkit/biotime-bridge-go/internal/domain/attendance"
	"github.com/hrkit/biotime-bridge-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	TodayTransactions(w http.ResponseWriter, r *http.Request)
	TodaySummary(w http.ResponseWriter, r *http.Request)
	TodayPresent(w http.ResponseWriter, r *http.Request)
	TodayAbsent(w http.ResponseWriter, r *http.Request)
	TodayLate(w http.ResponseWriter, r *http.Request)
	TodayEarlyLeave(w http.ResponseWriter, r *http.Request)
	WeekSummary(w http.ResponseWriter, r *http.Request)
	MonthSummary(w http.ResponseWriter, r *http.Request)
	WeeklyReport(w http.ResponseWriter, r *http.Request)
	MonthlyReport(w http.ResponseWriter, r *http.Request)
	PreviousMonthReport(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ListEmployees implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	req, ok := parsePageRequest(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.ListEmployees(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListTransactions implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListTransactions(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(w, r, "page")
	if !ok {
		return
	}
	pageSize, ok := queryInt(w, r, "page_size")
	if !ok {
		return
	}

	req := attendance.TransactionsRequest{
		EmpCode:   r.URL.Query().Get("emp_code"),
		StartTime: r.URL.Query().Get("start_time"),
		EndTime:   r.URL.Query().Get("end_time"),
		Page:      page,
		PageSize:  pageSize,
	}

	result, err := h.attendanceService.ListTransactions(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// TodayTransactions implements AttendanceHandler.
func (h *attendanceHandlerImpl) TodayTransactions(w http.ResponseWriter, r *http.Request) {
	req, ok := parsePageRequest(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.TodayTransactions(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// TodaySummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) TodaySummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.TodaySummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// TodayPresent implements AttendanceHandler.
func (h *attendanceHandlerImpl) TodayPresent(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.TodayPresent(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// TodayAbsent implements AttendanceHandler.
func (h *attendanceHandlerImpl) TodayAbsent(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.TodayAbsent(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// TodayLate implements AttendanceHandler.
func (h *attendanceHandlerImpl) TodayLate(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.TodayLate(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// TodayEarlyLeave implements AttendanceHandler.
func (h *attendanceHandlerImpl) TodayEarlyLeave(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.TodayEarlyLeave(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// WeekSummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) WeekSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.WeekSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// MonthSummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.MonthSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// WeeklyReport implements AttendanceHandler.
func (h *attendanceHandlerImpl) WeeklyReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.WeeklyReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// MonthlyReport implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	month, ok := queryInt(w, r, "month")
	if !ok {
		return
	}
	year, ok := queryInt(w, r, "year")
	if !ok {
		return
	}

	result, err := h.attendanceService.MonthlyReport(r.Context(), attendance.MonthlyReportRequest{
		Month: month,
		Year:  year,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// PreviousMonthReport implements AttendanceHandler.
func (h *attendanceHandlerImpl) PreviousMonthReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.PreviousMonthReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// parsePageRequest reads page/page_size query params, leaving zero values
// for the service layer defaults. Returns false after writing an error
// response when a param is not numeric.
func parsePageRequest(w http.ResponseWriter, r *http.Request) (attendance.PageRequest, bool) {
	page, ok := queryInt(w, r, "page")
	if !ok {
		return attendance.PageRequest{}, false
	}
	pageSize, ok := queryInt(w, r, "page_size")
	if !ok {
		return attendance.PageRequest{}, false
	}
	return attendance.PageRequest{Page: page, PageSize: pageSize}, true
}

func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(w, "Invalid query parameter", map[string]string{name: "must be an integer"})
		return 0, false
	}
	return value, true
}
