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
	"gorm.io/gorm"

	"heektime/backend/internal/model"
	"heektime/backend/internal/repository"
	"heektime/backend/internal/schedule"
)

// ── 내보내기 모듈 업무 오류 ──

var (
	ErrExportNoLectures   = errors.New("시간표에 내보낼 강의가 없습니다")
	ErrExportGenerateFail = errors.New("내보내기 파일 생성에 실패했습니다")
)

const (
	icsProdID   = "-//heek.kr//heektime"
	icsTimezone = "Asia/Seoul"
)

// ExportService 시간표 내보내기 업무 인터페이스
//
// 설계 설명:
//   - ICS 는 강의를 주 단위 반복 이벤트(RRULE)로 합성해 내보낸다.
//     반복 규칙 유도는 schedule.BuildEvents 가 맡는다.
//   - XLSX 는 그리드 배치를 표로 옮긴 보조 형식이다.
//   - 둘 다 bytes.Buffer 로 돌려주고 핸들러가 응답 헤더를 붙인다.
type ExportService interface {
	ExportICS(ctx context.Context, userID, timetableID string) (*bytes.Buffer, string, error)
	ExportXLSX(ctx context.Context, userID, timetableID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService ExportService 인스턴스를 만든다
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// loadForExport 시간표 + 강의 + 학기를 읽고 접근 권한을 확인한다
func (s *exportService) loadForExport(ctx context.Context, userID, timetableID string) (*model.Timetable, error) {
	timetable, err := s.repo.Timetable.GetWithLectures(ctx, timetableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimetableNotFound
		}
		s.logger.Error("시간표 조회 실패", zap.Error(err))
		return nil, err
	}
	if !timetable.ViewableBy(userID) {
		return nil, ErrTimetableForbidden
	}
	if len(timetable.Lectures) == 0 {
		return nil, ErrExportNoLectures
	}
	if timetable.Semester == nil {
		return nil, ErrSemesterNotFound
	}
	return timetable, nil
}

// ═══════════════════════════════════════════════════════════
// ExportICS — iCalendar 내보내기
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportICS(ctx context.Context, userID, timetableID string) (*bytes.Buffer, string, error) {
	timetable, err := s.loadForExport(ctx, userID, timetableID)
	if err != nil {
		return nil, "", err
	}

	exports := make([]schedule.ExportLecture, len(timetable.Lectures))
	for i := range timetable.Lectures {
		exports[i] = schedule.ExportLecture{
			ID:      timetable.Lectures[i].LectureID,
			Lecture: timetable.Lectures[i].ToBase(),
		}
	}

	// 수정본마다 커지는 SEQUENCE 값으로 구독 클라이언트의 갱신을 유도한다
	sequence := time.Now().Unix()
	events, err := schedule.BuildEvents(
		timetable.TimetableID, exports,
		timetable.Semester.Year, timetable.Semester.Term, sequence,
	)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetProductId(icsProdID)
	cal.SetMethod(ics.MethodPublish)

	for _, event := range events {
		ev := cal.AddEvent(event.UID)
		ev.SetProperty(ics.ComponentPropertySummary, event.Title)
		ev.SetProperty(ics.ComponentPropertySequence, fmt.Sprintf("%d", event.Sequence))
		ev.SetProperty(ics.ComponentPropertyDtStart,
			event.Start.Format("20060102T150405"),
			&ics.KeyValues{Key: "TZID", Value: []string{icsTimezone}},
		)
		ev.SetProperty(ics.ComponentPropertyDuration, fmt.Sprintf("PT%dM", event.DurationMin))
		if event.Location != "" {
			ev.SetProperty(ics.ComponentPropertyLocation, event.Location)
		}
		if event.RRule != "" {
			ev.SetProperty(ics.ComponentPropertyRrule, event.RRule)
		}
	}

	serialized := cal.Serialize()
	if serialized == "" {
		s.logger.Error("ICS 직렬화 결과가 비어 있습니다", zap.String("timetableId", timetableID))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("%s.ics", timetable.Title)
	return bytes.NewBufferString(serialized), filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportXLSX — Excel 내보내기
// ═══════════════════════════════════════════════════════════
//
// 출력 형식:
//   - 행: 표시 범위 내 시간대 (HH:00)
//   - 열: 그리드 컬럼 순서의 요일
//   - 셀: 강의명 (강의실), 해당 시간대에 시작하는 슬롯 기준

func (s *exportService) ExportXLSX(ctx context.Context, userID, timetableID string) (*bytes.Buffer, string, error) {
	timetable, err := s.loadForExport(ctx, userID, timetableID)
	if err != nil {
		return nil, "", err
	}

	placed := make([]schedule.PlacedLecture, len(timetable.Lectures))
	for i := range timetable.Lectures {
		placed[i] = schedule.PlacedLecture{
			ID:      timetable.Lectures[i].LectureID,
			Lecture: timetable.Lectures[i].ToBase(),
		}
	}
	grid := schedule.BuildGrid(placed, nil, schedule.GridOptions{})

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "시간표"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 제목 행
	f.SetCellValue(sheetName, "A1", timetable.Title)
	f.MergeCell(sheetName, "A1", cell(colName(len(grid.Columns)), 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 표머리: 시간 + 요일
	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetCellValue(sheetName, cell("A", 2), "시간")
	for i, column := range grid.Columns {
		col := colName(1 + i)
		f.SetColWidth(sheetName, col, col, 24)
		f.SetCellValue(sheetName, cell(col, 2), column.Weekday.LocalizedShortName())
	}

	// 데이터 행: 시간대별로 해당 시간에 시작하는 강의를 채운다
	for r := 0; r < grid.Rows; r++ {
		hour := grid.BeginHour + r
		row := 3 + r
		f.SetCellValue(sheetName, cell("A", row), fmt.Sprintf("%02d:00", hour))

		for i, column := range grid.Columns {
			var text string
			for _, item := range column.Items {
				if item.Time.TimeBegin == nil || *item.Time.TimeBegin/60 != hour {
					continue
				}
				label := item.Title
				if item.Room != "" {
					label += " (" + item.Room + ")"
				}
				if text != "" {
					text += "\n"
				}
				text += label
			}
			if text == "" {
				text = "-"
			}
			f.SetCellValue(sheetName, cell(colName(1+i), row), text)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("Excel 쓰기 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("%s.xlsx", timetable.Title)
	return buf, filename, nil
}

// ── 보조 함수 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
