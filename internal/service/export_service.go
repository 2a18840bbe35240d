package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/glennfor/presence/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoAttendances  = errors.New("暂无考勤记录可导出")
	ErrExportNoLeaveEntries = errors.New("暂无请假申请可导出")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 考勤台账导出为 Excel (.xlsx)，管理员归档用
//   - 请假安排导出为 iCalendar (.ics)，可直接订阅到日历客户端
//   - 均以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	// ExportAttendances 导出全量考勤记录为 Excel
	ExportAttendances(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportLeaveCalendar 导出请假安排为 iCalendar
	ExportLeaveCalendar(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

// ═══════════════════════════════════════════════════════════
// ExportAttendances — 考勤台账导出为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单 Sheet "考勤台账"
//   - 列：员工 | 日期 | 上班打卡 | 下班打卡 | 地点
//   - 未下班打卡的记录，下班列留空

func (s *exportService) ExportAttendances(ctx context.Context) (*bytes.Buffer, string, error) {
	atts, err := s.repo.Attendance.List(ctx)
	if err != nil {
		s.logger.Error("查询考勤记录失败", zap.Error(err))
		return nil, "", err
	}
	if len(atts) == 0 {
		return nil, "", ErrExportNoAttendances
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "考勤台账"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 18)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "D", 20)
	f.SetColWidth(sheetName, "E", "E", 18)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"员工", "日期", "上班打卡", "下班打卡", "地点"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for row, att := range atts {
		employeeName := att.EmployeeID
		if att.Employee != nil {
			employeeName = att.Employee.Name
		}
		locationName := att.LocationID
		if att.Location != nil {
			locationName = att.Location.Name
		}
		clockOut := ""
		if att.ClockOutTime != nil {
			clockOut = att.ClockOutTime.Format("15:04:05")
		}

		values := []interface{}{
			employeeName,
			att.Date.Format("2006-01-02"),
			att.ClockInTime.Format("15:04:05"),
			clockOut,
			locationName,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 失败", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("attendances-%s.xlsx", s.now().Format("20060102"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportLeaveCalendar — 请假安排导出为 iCalendar
// ═══════════════════════════════════════════════════════════
//
// 一条请假申请对应一个全天 VEVENT，DTSTART 为起始日期，
// 时长为 days_off 个自然日

func (s *exportService) ExportLeaveCalendar(ctx context.Context) (*bytes.Buffer, string, error) {
	requests, err := s.repo.LeaveRequest.List(ctx)
	if err != nil {
		s.logger.Error("查询请假申请失败", zap.Error(err))
		return nil, "", err
	}
	if len(requests) == 0 {
		return nil, "", ErrExportNoLeaveEntries
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//presence//leave-calendar//CN")

	for i := range requests {
		lr := &requests[i]

		employeeName := lr.EmployeeID
		if lr.Employee != nil {
			employeeName = lr.Employee.Name
		}

		event := cal.AddEvent(lr.LeaveRequestID + "@presence")
		event.SetCreatedTime(lr.CreatedAt)
		event.SetDtStampTime(lr.CreatedAt)
		event.SetAllDayStartAt(lr.StartingDate)
		event.SetAllDayEndAt(lr.StartingDate.AddDate(0, 0, lr.DaysOff))
		event.SetSummary(fmt.Sprintf("请假：%s（%d 天）", employeeName, lr.DaysOff))
		if lr.Message != "" {
			event.SetDescription(lr.Message)
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("leave-calendar-%s.ics", s.now().Format("20060102"))
	return buf, filename, nil
}
