package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "medevac-case-service/internal/adapter/http"
	"medevac-case-service/internal/adapter/middleware"
	"medevac-case-service/internal/adapter/repository/mysql"
	"medevac-case-service/internal/config"
	"medevac-case-service/internal/infrastructure/cache"
	"medevac-case-service/internal/infrastructure/db"
	closureUC "medevac-case-service/internal/usecase/closure"
	enquiryUC "medevac-case-service/internal/usecase/enquiry"
	escalationUC "medevac-case-service/internal/usecase/escalation"
	queryUC "medevac-case-service/internal/usecase/query"
)

func main() {
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), log)
	if err != nil {
		log.Fatal("mysql connect failed", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal("redis connect failed", zap.Error(err))
	}

	// repositories
	enquiries := mysql.NewEnquiryRepository(gdb)
	documents := mysql.NewDocumentRepository(gdb)
	escalations := mysql.NewEscalationRepository(gdb)
	queries := mysql.NewQueryRepository(gdb)
	closures := mysql.NewClosureRepository(gdb)
	hospitals := mysql.NewHospitalRepository(gdb)
	districts := mysql.NewDistrictRepository(gdb)
	users := mysql.NewUserRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	// usecases
	enqUC := enquiryUC.NewUsecase(enquiries, documents, hospitals, districts, uow, log)
	escUC := escalationUC.NewUsecase(escalations, enquiries, uow, log)
	qryUC := queryUC.NewUsecase(queries, enquiries, users)
	clsUC := closureUC.NewUsecase(closures, uow, log)

	// handlers
	h := httpadp.NewHandler()
	enqH := httpadp.NewEnquiryHandler(enqUC, log)
	escH := httpadp.NewEscalationHandler(escUC, log)
	qryH := httpadp.NewQueryHandler(qryUC, log)
	clsH := httpadp.NewClosureHandler(clsUC, log)
	refH := httpadp.NewReferenceHandler(hospitals, districts, users, log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log)

	e.GET("/health", h.Health)

	api := e.Group("/api")

	enq := api.Group("/enquiries", idemp)
	enq.POST("", enqH.Create)
	enq.GET("", enqH.List)
	enq.GET("/:id", enqH.Get)
	enq.PUT("/:id", enqH.Update)
	enq.DELETE("/:id", enqH.Delete)
	enq.POST("/:id/verify", enqH.Verify)
	enq.POST("/:id/forward", enqH.Forward)
	enq.POST("/:id/decision", enqH.ApproveOrReject)
	enq.POST("/:id/escalate", enqH.Escalate)
	enq.POST("/:id/close", clsH.Close)

	esc := api.Group("/escalations", idemp)
	esc.POST("", escH.Create)
	esc.GET("", escH.List)
	esc.GET("/:id", escH.Get)
	esc.PUT("/:id", escH.Update)
	esc.POST("/:id/resolve", escH.Resolve)
	esc.DELETE("/:id", escH.Delete)

	qry := api.Group("/queries", idemp)
	qry.POST("", qryH.Create)
	qry.GET("", qryH.List)
	qry.GET("/:id", qryH.Get)
	qry.POST("/:id/respond", qryH.Respond)

	cls := api.Group("/closures")
	cls.GET("", clsH.List)
	cls.GET("/:id", clsH.Get)

	api.GET("/hospitals", refH.ListHospitals)
	api.GET("/hospitals/:id", refH.GetHospital)
	api.GET("/districts", refH.ListDistricts)
	api.GET("/districts/:id", refH.GetDistrict)
	api.GET("/users", refH.ListUsers)
	api.GET("/users/:id", refH.GetUser)

	addr := ":" + cfg.AppPort
	log.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
