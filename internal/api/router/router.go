package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"heektime/backend/config"
	"heektime/backend/internal/api/handler"
	"heektime/backend/internal/api/middleware"
	"heektime/backend/pkg/jwt"
)

// Setup Gin 라우터 엔진을 초기화해 돌려준다
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	blacklist middleware.TokenBlacklist,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 전역 미들웨어 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 헬스 체크 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 인증 모듈 (인증 불필요)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// 학교/학기 모듈 (공개 조회)
		schools := v1.Group("/schools")
		{
			schools.GET("", h.School.ListSchools)
			schools.GET("/:id", h.School.GetSchool)
			schools.GET("/:id/semesters", h.School.ListSemesters)
		}
		v1.GET("/semesters/:id", h.School.GetSemester)

		// 인증이 필요한 라우트
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, blacklist))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)

			// 시간표 모듈
			timetables := authorized.Group("/timetables")
			{
				timetables.POST("", h.Timetable.Create)
				timetables.GET("", h.Timetable.List)
				timetables.GET("/:id", h.Timetable.Get)
				timetables.PUT("/:id", h.Timetable.Update)
				timetables.DELETE("/:id", h.Timetable.Delete)

				timetables.POST("/:id/lectures", h.Timetable.AddLecture)
				timetables.DELETE("/:id/lectures/:lectureId", h.Timetable.RemoveLecture)

				timetables.GET("/:id/grid", h.Timetable.Grid)
				timetables.POST("/:id/search", h.Timetable.Search)

				// 내보내기 모듈
				timetables.GET("/:id/export.ics", h.Export.ExportICS)
				timetables.GET("/:id/export.xlsx", h.Export.ExportXLSX)
			}
		}
	}

	return r
}
