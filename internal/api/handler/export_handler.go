package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glennfor/presence/internal/service"
	"github.com/glennfor/presence/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportAttendances 导出考勤台账 (.xlsx)
// GET /manager/dashboard/attendances/export
func (h *ExportHandler) ExportAttendances(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportAttendances(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrExportNoAttendances) {
			response.NotFound(c, 19001, "暂无考勤记录可导出")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// ExportLeaveCalendar 导出请假日历 (.ics)
// GET /manager/dashboard/leave-requests/export.ics
func (h *ExportHandler) ExportLeaveCalendar(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportLeaveCalendar(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrExportNoLeaveEntries) {
			response.NotFound(c, 19002, "暂无请假申请可导出")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}
