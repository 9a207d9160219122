package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"uni-portal/backend/config"
	"uni-portal/backend/internal/api/handler"
	"uni-portal/backend/internal/api/middleware"
	"uni-portal/backend/internal/model"
	"uni-portal/backend/pkg/jwt"
	"uni-portal/backend/pkg/redis"
)

// importBodyLimit bounds the import payload: a full semester batch of
// scraped weeks stays well under this.
const importBodyLimit = 4 << 20 // 4MB

// login throttling window per client IP
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(importBodyLimit))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth (no token required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, loginRateLimit, loginRateWindow), h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// everything below requires a valid access token
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// account administration
			users := authorized.Group("/users", middleware.RoleAuth(model.RoleAdmin))
			{
				users.GET("", h.Auth.ListUsers)
				users.POST("", h.Auth.CreateUser)
			}

			// weeks and their schedules
			weeks := authorized.Group("/weeks")
			{
				weeks.GET("", h.Week.ListWeeks)
				weeks.GET("/current", h.Week.GetCurrentWeek)
				weeks.GET("/:id", h.Week.GetWeek)
				weeks.GET("/:id/schedule", h.Schedule.GetWeekSchedule)
				weeks.GET("/:id/export/xlsx", h.Export.ExportWeekXLSX)
				weeks.GET("/:id/export/ics", h.Export.ExportWeekICS)
				weeks.POST("", middleware.RoleAuth(model.RoleAdmin), h.Week.CreateWeek)
				weeks.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Week.UpdateWeek)
				weeks.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Week.DeleteWeek)
			}

			// individual schedule entries
			schedule := authorized.Group("/schedule")
			{
				schedule.GET("/:id", h.Schedule.GetEntry)
				schedule.POST("", middleware.RoleAuth(model.RoleAdmin), h.Schedule.CreateEntry)
				schedule.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Schedule.UpdateEntry)
				schedule.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Schedule.DeleteEntry)
			}

			// scraped schedule import
			authorized.POST("/import/weeks", middleware.RoleAuth(model.RoleAdmin), h.Import.ImportWeeks)

			// homework
			homework := authorized.Group("/homework")
			{
				homework.GET("", h.Homework.ListHomework)
				homework.GET("/:id", h.Homework.GetHomework)
				homework.POST("", h.Homework.CreateHomework)
				homework.PUT("/:id", h.Homework.UpdateHomework)
				homework.DELETE("/:id", h.Homework.DeleteHomework)
			}

			// exams
			exams := authorized.Group("/exams")
			{
				exams.GET("", h.Exam.ListExams)
				exams.GET("/:id", h.Exam.GetExam)
				exams.POST("", middleware.RoleAuth(model.RoleAdmin), h.Exam.CreateExam)
				exams.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Exam.UpdateExam)
				exams.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Exam.DeleteExam)
			}

			// private notes
			notes := authorized.Group("/notes")
			{
				notes.GET("", h.Note.ListNotes)
				notes.GET("/:id", h.Note.GetNote)
				notes.POST("", h.Note.CreateNote)
				notes.PUT("/:id", h.Note.UpdateNote)
				notes.DELETE("/:id", h.Note.DeleteNote)
			}

			// announcements
			announcements := authorized.Group("/announcements")
			{
				announcements.GET("", h.Announcement.ListAnnouncements)
				announcements.GET("/:id", h.Announcement.GetAnnouncement)
				announcements.POST("", middleware.RoleAuth(model.RoleAdmin), h.Announcement.CreateAnnouncement)
				announcements.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Announcement.UpdateAnnouncement)
				announcements.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Announcement.DeleteAnnouncement)
			}

			// staff directory
			staff := authorized.Group("/staff")
			{
				staff.GET("", h.Staff.ListStaff)
				staff.GET("/:id", h.Staff.GetStaff)
				staff.POST("", middleware.RoleAuth(model.RoleAdmin), h.Staff.CreateStaff)
				staff.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Staff.UpdateStaff)
				staff.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Staff.DeleteStaff)
			}
		}
	}

	return r
}
