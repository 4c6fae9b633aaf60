package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtv5 "github.com/golang-jwt/jwt/v5"

	"heektime/backend/internal/dto"
	"heektime/backend/internal/model"
	"heektime/backend/internal/schedule"
	"heektime/backend/internal/service"
	"heektime/backend/pkg/jwt"
	"heektime/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	registerResult *dto.UserResponse
	registerErr    error
	loginResult    *dto.TokenResponse
	loginErr       error
	refreshResult  *dto.TokenResponse
	refreshErr     error
	logoutErr      error
}

func (m *mockAuthService) Register(_ context.Context, _ *dto.RegisterRequest) (*dto.UserResponse, error) {
	return m.registerResult, m.registerErr
}
func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Refresh(_ context.Context, _ *dto.RefreshRequest) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ *jwt.Claims) error {
	return m.logoutErr
}

// ── Mock SchoolService ──

type mockSchoolService struct {
	schools      []model.School
	schoolsErr   error
	semesters    []model.Semester
	semestersErr error
	semester     *model.Semester
	semesterErr  error
}

func (m *mockSchoolService) ListSchools(_ context.Context) ([]model.School, error) {
	return m.schools, m.schoolsErr
}
func (m *mockSchoolService) GetSchool(_ context.Context, _ string) (*model.School, error) {
	if m.schoolsErr != nil {
		return nil, m.schoolsErr
	}
	if len(m.schools) == 0 {
		return nil, service.ErrSchoolNotFound
	}
	return &m.schools[0], nil
}
func (m *mockSchoolService) ListSemesters(_ context.Context, _ string) ([]model.Semester, error) {
	return m.semesters, m.semestersErr
}
func (m *mockSchoolService) GetSemester(_ context.Context, _ string) (*model.Semester, error) {
	return m.semester, m.semesterErr
}

// ── Mock TimetableService ──

type mockTimetableService struct {
	createResult *model.Timetable
	createErr    error
	getResult    *model.Timetable
	getErr       error
	listResult   []model.Timetable
	listErr      error
	updateResult *model.Timetable
	updateErr    error
	deleteErr    error
	addResult    *dto.LectureResponse
	addErr       error
	removeErr    error
	gridResult   *schedule.Grid
	gridErr      error
	searchResult *dto.SearchResponse
	searchErr    error
}

func (m *mockTimetableService) Create(_ context.Context, _ string, _ *dto.CreateTimetableRequest) (*model.Timetable, error) {
	return m.createResult, m.createErr
}
func (m *mockTimetableService) Get(_ context.Context, _, _ string) (*model.Timetable, error) {
	return m.getResult, m.getErr
}
func (m *mockTimetableService) List(_ context.Context, _ string) ([]model.Timetable, error) {
	return m.listResult, m.listErr
}
func (m *mockTimetableService) Update(_ context.Context, _, _ string, _ *dto.UpdateTimetableRequest) (*model.Timetable, error) {
	return m.updateResult, m.updateErr
}
func (m *mockTimetableService) Delete(_ context.Context, _, _ string) error {
	return m.deleteErr
}
func (m *mockTimetableService) AddLecture(_ context.Context, _, _ string, _ *dto.AddLectureRequest) (*dto.LectureResponse, error) {
	return m.addResult, m.addErr
}
func (m *mockTimetableService) RemoveLecture(_ context.Context, _, _, _ string) error {
	return m.removeErr
}
func (m *mockTimetableService) Grid(_ context.Context, _, _ string, _ *dto.GridRequest) (*schedule.Grid, error) {
	return m.gridResult, m.gridErr
}
func (m *mockTimetableService) Search(_ context.Context, _ string, _ *dto.SearchRequest) (*dto.SearchResponse, error) {
	return m.searchResult, m.searchErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportICS(_ context.Context, _, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ExportXLSX(_ context.Context, _, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func setAuth(c *gin.Context) {
	c.Set("user_id", "test-user-id")
	c.Set("username", "tester")
	c.Set("token_claims", &jwt.Claims{
		UserID:    "test-user-id",
		Username:  "tester",
		TokenType: "access",
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        "test-jti",
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(15 * time.Minute)),
		},
	})
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Register_Success(t *testing.T) {
	mock := &mockAuthService{
		registerResult: &dto.UserResponse{ID: "user-1", Username: "heek"},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", jsonBody(dto.RegisterRequest{
		Username: "heek",
		Password: "password-123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	mock := &mockAuthService{registerErr: service.ErrUsernameTaken}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", jsonBody(dto.RegisterRequest{
		Username: "heek",
		Password: "password-123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11002 {
		t.Errorf("expected error code 11002, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mock := &mockAuthService{loginErr: service.ErrInvalidCredentials}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "heek",
		Password: "wrong",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestAuthHandler_Refresh_InvalidToken(t *testing.T) {
	mock := &mockAuthService{refreshErr: jwt.ErrTokenInvalid}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/refresh", jsonBody(dto.RefreshRequest{
		RefreshToken: "bad-token",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/refresh", h.Refresh)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/logout", nil)

	r := gin.New()
	r.POST("/auth/logout", func(c *gin.Context) {
		setAuth(c)
		h.Logout(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAuthHandler_Logout_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/logout", nil)

	r := gin.New()
	r.POST("/auth/logout", h.Logout)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// SchoolHandler Tests
// ═══════════════════════════════════════════════════════════

func TestSchoolHandler_ListSchools(t *testing.T) {
	mock := &mockSchoolService{
		schools: []model.School{{Name: "희크대학교", Status: model.StatusNormal}},
	}
	h := NewSchoolHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/schools", nil)

	r := gin.New()
	r.GET("/schools", h.ListSchools)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestSchoolHandler_GetSchool_NotFound(t *testing.T) {
	h := NewSchoolHandler(&mockSchoolService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/schools/no-such-id", nil)

	r := gin.New()
	r.GET("/schools/:id", h.GetSchool)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 12001 {
		t.Errorf("expected error code 12001, got %d", resp.Code)
	}
}

func TestSchoolHandler_GetSemester(t *testing.T) {
	mock := &mockSchoolService{
		semester: &model.Semester{SemesterID: "sem-1", Year: 2024, Term: "1학기"},
	}
	h := NewSchoolHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/semesters/sem-1", nil)

	r := gin.New()
	r.GET("/semesters/:id", h.GetSemester)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestSchoolHandler_GetSemester_NotFound(t *testing.T) {
	mock := &mockSchoolService{semesterErr: service.ErrSemesterNotFound}
	h := NewSchoolHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/semesters/no-such-id", nil)

	r := gin.New()
	r.GET("/semesters/:id", h.GetSemester)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 12002 {
		t.Errorf("expected error code 12002, got %d", resp.Code)
	}
}

func TestSchoolHandler_ListSemesters_SchoolNotFound(t *testing.T) {
	mock := &mockSchoolService{semestersErr: service.ErrSchoolNotFound}
	h := NewSchoolHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/schools/no-such-id/semesters", nil)

	r := gin.New()
	r.GET("/schools/:id/semesters", h.ListSemesters)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// TimetableHandler Tests
// ═══════════════════════════════════════════════════════════

func TestTimetableHandler_AddLecture_MissingBothFields(t *testing.T) {
	h := NewTimetableHandler(&mockTimetableService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/timetables/tt-1/lectures", jsonBody(dto.AddLectureRequest{}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/timetables/:id/lectures", func(c *gin.Context) {
		setAuth(c)
		h.AddLecture(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestTimetableHandler_Grid_Success(t *testing.T) {
	mock := &mockTimetableService{
		gridResult: &schedule.Grid{BeginHour: 9, EndHour: 19, Rows: 10},
	}
	h := NewTimetableHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/timetables/tt-1/grid?beginHour=9&endHour=19", nil)

	r := gin.New()
	r.GET("/timetables/:id/grid", func(c *gin.Context) {
		setAuth(c)
		h.Grid(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestTimetableHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"NotFound", service.ErrTimetableNotFound, 404, 13001},
		{"Forbidden", service.ErrTimetableForbidden, 403, 13002},
		{"LectureNotFound", service.ErrLectureNotFound, 404, 13003},
		{"AlreadyAdded", service.ErrLectureAlreadyAdded, 409, 13004},
		{"Overlap", service.ErrLectureOverlap, 409, 13005},
		{"InvalidLecture", service.ErrLectureInvalid, 400, 13006},
		{"CatalogLectureNotFound", service.ErrCatalogLectureNotFound, 404, 13007},
		{"SemesterNotFound", service.ErrSemesterNotFound, 404, 12002},
		{"CatalogUnavailable", service.ErrCatalogUnavailable, 503, 14001},
		{"SearchSuperseded", schedule.ErrFilterSuperseded, 409, 14002},
		{"SearchSessionClosed", schedule.ErrFilterClosed, 503, 14003},
		{"InternalError", errors.New("unknown"), 500, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockTimetableService{getErr: tt.err}
			h := NewTimetableHandler(mock)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/timetables/tt-1", nil)

			r := gin.New()
			r.GET("/timetables/:id", func(c *gin.Context) {
				setAuth(c)
				h.Get(c)
			})
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			resp := parseResponse(w)
			if resp.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestTimetableHandler_Search_Success(t *testing.T) {
	mock := &mockTimetableService{
		searchResult: &dto.SearchResponse{Results: []dto.SearchResult{}},
	}
	h := NewTimetableHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/timetables/tt-1/search", jsonBody(dto.SearchRequest{
		Keyword: "자료구조",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/timetables/:id/search", func(c *gin.Context) {
		setAuth(c)
		h.Search(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_ICS_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"),
		filename: "시간표.ics",
	}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/timetables/tt-1/export.ics", nil)

	r := gin.New()
	r.GET("/timetables/:id/export.ics", func(c *gin.Context) {
		setAuth(c)
		h.ExportICS(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != contentTypeICS {
		t.Errorf("unexpected content type: %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Error("expected Content-Disposition header")
	}
}

func TestExportHandler_XLSX_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("PK excel content"),
		filename: "시간표.xlsx",
	}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/timetables/tt-1/export.xlsx", nil)

	r := gin.New()
	r.GET("/timetables/:id/export.xlsx", func(c *gin.Context) {
		setAuth(c)
		h.ExportXLSX(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != contentTypeXLSX {
		t.Errorf("unexpected content type: %s", ct)
	}
}

func TestExportHandler_NoLectures(t *testing.T) {
	mock := &mockExportService{err: service.ErrExportNoLectures}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/timetables/tt-1/export.ics", nil)

	r := gin.New()
	r.GET("/timetables/:id/export.ics", func(c *gin.Context) {
		setAuth(c)
		h.ExportICS(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 15001 {
		t.Errorf("expected error code 15001, got %d", resp.Code)
	}
}

func TestExportHandler_Forbidden(t *testing.T) {
	mock := &mockExportService{err: service.ErrTimetableForbidden}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/timetables/tt-1/export.xlsx", nil)

	r := gin.New()
	r.GET("/timetables/:id/export.xlsx", func(c *gin.Context) {
		setAuth(c)
		h.ExportXLSX(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}
