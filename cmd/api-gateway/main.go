package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/studybuddy-app/classroom-api/internal/handler"
	"github.com/studybuddy-app/classroom-api/internal/middleware"
	"github.com/studybuddy-app/classroom-api/internal/models"
	"github.com/studybuddy-app/classroom-api/internal/repository"
	"github.com/studybuddy-app/classroom-api/internal/service"
	"github.com/studybuddy-app/classroom-api/pkg/cache"
	"github.com/studybuddy-app/classroom-api/pkg/chat"
	"github.com/studybuddy-app/classroom-api/pkg/config"
	"github.com/studybuddy-app/classroom-api/pkg/database"
	"github.com/studybuddy-app/classroom-api/pkg/extract"
	"github.com/studybuddy-app/classroom-api/pkg/logger"
	corsmiddleware "github.com/studybuddy-app/classroom-api/pkg/middleware/cors"
	reqidmiddleware "github.com/studybuddy-app/classroom-api/pkg/middleware/requestid"
	"github.com/studybuddy-app/classroom-api/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to redis", "error", err)
	}
	defer redisClient.Close()

	metricsSvc := service.NewMetricsService()

	uploader, err := storage.NewCloudinary(cfg.Storage, metricsSvc)
	if err != nil {
		logr.Sugar().Fatalw("failed to init media storage", "error", err)
	}

	extractor := extract.NewPDFExtractor(metricsSvc)
	completer := chat.NewOpenRouter(cfg.Chat, metricsSvc)
	validate := validator.New()

	professorRepo := repository.NewProfessorRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	classroomRepo := repository.NewClassroomRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	contentRepo := repository.NewContentRepository(db)
	pdfRepo := repository.NewPdfRepository(db)
	catalogCache := repository.NewCatalogCache(redisClient, cfg.Catalog.CacheTTL)

	authSvc := service.NewAuthService(professorRepo, studentRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	professorSvc := service.NewProfessorService(professorRepo, uploader, validate, logr)
	studentSvc := service.NewStudentService(studentRepo, uploader, validate, logr)
	classroomSvc := service.NewClassroomService(classroomRepo, catalogCache, uploader, validate, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, classroomRepo, validate, logr)
	contentSvc := service.NewContentService(contentRepo, classroomRepo, enrollmentRepo, uploader, cfg.Storage.RawBaseURL, validate, logr)
	pdfSvc := service.NewPdfService(pdfRepo, extractor, completer, validate, logr)

	maxUpload := cfg.Uploads.MaxFileSizeBytes

	authHandler := handler.NewAuthHandler(authSvc)
	professorHandler := handler.NewProfessorHandler(professorSvc, maxUpload)
	studentHandler := handler.NewStudentHandler(studentSvc, maxUpload)
	classroomHandler := handler.NewClassroomHandler(classroomSvc, maxUpload)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc)
	contentHandler := handler.NewContentHandler(contentSvc, maxUpload)
	pdfHandler := handler.NewPdfHandler(pdfSvc, maxUpload)

	r := gin.New()
	r.MaxMultipartMemory = maxUpload
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/professors/register", professorHandler.Register)
	auth.POST("/professors/login", authHandler.LoginProfessor)
	auth.POST("/students/register", studentHandler.Register)
	auth.POST("/students/login", authHandler.LoginStudent)

	authed := api.Group("")
	authed.Use(middleware.JWT(authSvc))

	authed.GET("/classrooms", classroomHandler.Catalog)

	professors := authed.Group("/professors")
	professors.Use(middleware.RequireRole(models.RoleProfessor))
	professors.GET("/me", professorHandler.Profile)
	professors.PUT("/me", professorHandler.UpdateProfile)
	professors.DELETE("/me", professorHandler.DeleteAccount)
	professors.POST("/classrooms", classroomHandler.Create)
	professors.GET("/classrooms", classroomHandler.ListOwn)
	professors.GET("/classrooms/:classroomId", classroomHandler.GetOwn)

	students := authed.Group("/students")
	students.Use(middleware.RequireRole(models.RoleStudent))
	students.GET("/me", studentHandler.Profile)
	students.PUT("/me", studentHandler.UpdateProfile)
	students.DELETE("/me", studentHandler.DeleteAccount)
	students.POST("/classrooms/:classroomId/enroll", enrollmentHandler.Enroll)
	students.GET("/classrooms", enrollmentHandler.ListEnrolled)
	students.GET("/classrooms/:classroomId", enrollmentHandler.GetEnrolled)
	students.POST("/pdfs", pdfHandler.Upload)
	students.GET("/pdfs", pdfHandler.List)
	students.GET("/pdfs/:pdfId", pdfHandler.Get)
	students.POST("/pdfs/:pdfId/chat", pdfHandler.Chat)
	students.POST("/pdfs/analyze", pdfHandler.Analyze)

	contents := authed.Group("/classrooms/:classroomId/contents")
	contents.POST("", middleware.RequireRole(models.RoleProfessor), contentHandler.Upload)
	contents.GET("", contentHandler.List)
	contents.GET("/:contentId/download", contentHandler.DownloadLink)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
