package router

import (
	"net/http"
	"time"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/auth"
	"timeclock/backend/internal/middleware"
	"timeclock/backend/internal/pkg/config"
	"timeclock/backend/internal/pkg/repository/postgresql"
	"timeclock/backend/internal/service/payperiod"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"timeclock/backend/internal/repository/postgres/benefit"
	"timeclock/backend/internal/repository/postgres/pay"
	"timeclock/backend/internal/repository/postgres/session"
	"timeclock/backend/internal/repository/postgres/user"
	"timeclock/backend/internal/repository/redisdb/logincode"

	auth_controller "timeclock/backend/internal/controller/http/v1/auth"
	benefit_controller "timeclock/backend/internal/controller/http/v1/benefit"
	pay_controller "timeclock/backend/internal/controller/http/v1/pay"
	schedule_controller "timeclock/backend/internal/controller/http/v1/schedule"
	timesheet_controller "timeclock/backend/internal/controller/http/v1/timesheet"
	user_controller "timeclock/backend/internal/controller/http/v1/user"
)

type Router struct {
	*web.App
	postgresDB *postgresql.Database
	redisDB    *redis.Client
	port       string
	auth       *auth.Auth
	cfg        *config.Config
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	port string,
	auth *auth.Auth,
	cfg *config.Config,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		port,
		auth,
		cfg,
	}
}

func (r Router) Init() error {

	r.HandleMethodNotAllowed = true
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	policy := payperiod.Policy{
		FirstPeriodEnd:      r.cfg.FirstPeriodEnd,
		SecondPeriodEnd:     r.cfg.SecondPeriodEnd,
		ProcessingDelayDays: r.cfg.PayProcessingDelay,
	}

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	sessionPostgres := session.NewRepository(r.postgresDB)
	benefitPostgres := benefit.NewRepository(r.postgresDB)
	payPostgres := pay.NewRepository(r.postgresDB, policy, r.cfg.HistoryPeriods)

	// - redis
	loginCodeRedis := logincode.NewRepository(r.redisDB, time.Duration(r.cfg.LoginCodeTTLMinutes)*time.Minute)

	// controller
	authController := auth_controller.NewController(userPostgres, loginCodeRedis)
	userController := user_controller.NewController(userPostgres, r.cfg.BaseUrl)
	timesheetController := timesheet_controller.NewController(sessionPostgres)
	payController := pay_controller.NewController(payPostgres)
	benefitController := benefit_controller.NewController(benefitPostgres)
	scheduleController := schedule_controller.NewController(userPostgres)

	start := time.Now()
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"uptime":  time.Since(start).Seconds(),
			"version": "1.0.0",
		})
	})

	// #auth
	r.Post("/api/v1/sign-in", authController.SignIn)
	r.Post("/api/v1/refresh-token", authController.RefreshToken)
	r.Post("/api/v1/request-code", authController.RequestCode)
	r.Post("/api/v1/verify-code", authController.VerifyCode)

	// #user
	r.Get("/api/v1/me", userController.GetMe, middleware.Authenticate(r.auth))
	r.Get("/api/v1/user/list", userController.GetUserList, middleware.Authenticate(r.auth, auth.RoleManager, auth.RoleAdmin))
	r.Get("/api/v1/user/:id", userController.GetUserDetailById, middleware.Authenticate(r.auth, auth.RoleManager, auth.RoleAdmin))
	r.Get("/api/v1/user/qrcode", userController.GetBadgeQr, middleware.Authenticate(r.auth, auth.RoleManager, auth.RoleAdmin))
	r.Post("/api/v1/user/create", userController.CreateUser, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/user/:id", userController.UpdateUserColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/user/:id", userController.DeleteUser, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #clock
	r.Post("/api/v1/clock/in", timesheetController.ClockIn, middleware.Authenticate(r.auth))
	r.Post("/api/v1/clock/out", timesheetController.ClockOut, middleware.Authenticate(r.auth))
	r.Get("/api/v1/clock/sessions", timesheetController.GetSessions, middleware.Authenticate(r.auth))

	// #timesheet
	r.Post("/api/v1/timesheet/manual", timesheetController.CreateManual, middleware.Authenticate(r.auth))
	r.Get("/api/v1/timesheet/list", timesheetController.GetMyList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/timesheet/pending", timesheetController.GetPendingList, middleware.Authenticate(r.auth, auth.RoleManager, auth.RoleAdmin))
	r.Post("/api/v1/timesheet/:id/submit-edit", timesheetController.SubmitEdit, middleware.Authenticate(r.auth))
	r.Post("/api/v1/timesheet/:id/approve", timesheetController.Approve, middleware.Authenticate(r.auth, auth.RoleManager, auth.RoleAdmin))
	r.Post("/api/v1/timesheet/:id/reject", timesheetController.Reject, middleware.Authenticate(r.auth, auth.RoleManager, auth.RoleAdmin))
	r.Post("/api/v1/timesheet/bulk-approve", timesheetController.BulkApprove, middleware.Authenticate(r.auth, auth.RoleManager, auth.RoleAdmin))
	r.Get("/api/v1/timesheet/:id/audit", timesheetController.GetAuditLog, middleware.Authenticate(r.auth))
	r.Get("/api/v1/timesheet/export", timesheetController.ExportTimesheets, middleware.Authenticate(r.auth, auth.RoleManager, auth.RoleAdmin))

	// #pay
	r.Get("/api/v1/pay/overview", payController.GetOverview, middleware.Authenticate(r.auth))
	r.Get("/api/v1/pay/periods", payController.GetRecentPeriods, middleware.Authenticate(r.auth))
	r.Get("/api/v1/pay/statement", payController.GetStatement, middleware.Authenticate(r.auth))

	// #benefits
	r.Get("/api/v1/benefits", benefitController.GetBenefitList, middleware.Authenticate(r.auth))

	// #shifts
	r.Get("/api/v1/shifts", scheduleController.GetShifts, middleware.Authenticate(r.auth))

	return r.Run(r.port)
}
