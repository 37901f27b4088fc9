package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"interview-coach/internal/config"
	"interview-coach/internal/handlers"
	"interview-coach/internal/repositories"
	"interview-coach/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	progressRepo := repositories.NewProgressRepository(db)
	testResultRepo := repositories.NewTestResultRepository(db)
	resumeRepo := repositories.NewResumeRepository(db)
	finalResultRepo := repositories.NewFinalResultRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDirs(); err != nil {
		log.Fatalf("❌ Failed to create upload directories: %v", err)
	}

	documentParser := services.NewDocumentParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize Qdrant
	qdrantService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := qdrantService.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Qdrant initialized successfully")

	// Initialize analyzers
	analyzer := services.NewGeminiAnalyzer(
		geminiService,
		qdrantService,
		cfg.Analyzer.Timeout,
		cfg.Analyzer.RetryMaxAttempts,
	)
	videoAnalyzer := services.NewSimulatedVideoAnalyzer(
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)
	log.Println("✅ Analyzers initialized")

	// Initialize workflow services
	progressService := services.NewProgressService(progressRepo)
	assessmentService := services.NewAssessmentService(
		testResultRepo,
		resumeRepo,
		questionRepo,
		progressService,
		documentParser,
		analyzer,
		analyzer,
		analyzer,
		videoAnalyzer,
	)
	aggregatorService := services.NewAggregatorService(testResultRepo, finalResultRepo)
	log.Println("✅ Assessment services initialized")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo)
	progressHandler := handlers.NewProgressHandler(progressService)
	resumeHandler := handlers.NewResumeHandler(assessmentService, storageService, cfg.Storage.MaxFileSize)
	textHandler := handlers.NewTextTestHandler(assessmentService)
	voiceHandler := handlers.NewVoiceTestHandler(assessmentService, storageService, cfg.Storage.MaxFileSize)
	videoHandler := handlers.NewVideoTestHandler(assessmentService)
	resultHandler := handlers.NewResultHandler(aggregatorService)
	questionHandler := handlers.NewQuestionHandler(questionRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Interview Coach API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/auth/register", authHandler.HandleRegister)
	api.Get("/progress/:user_id", progressHandler.HandleGetProgress)
	api.Post("/resume", resumeHandler.HandleUploadResume)
	api.Post("/tests/text", textHandler.HandleSubmitText)
	api.Post("/tests/voice", voiceHandler.HandleSubmitVoice)
	api.Post("/tests/video", videoHandler.HandleSubmitVideo)
	api.Get("/results/final/:user_id", resultHandler.HandleGetFinalScore)
	api.Get("/results/history/:user_id", resultHandler.HandleGetHistory)
	api.Get("/questions", questionHandler.HandleListQuestions)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Interview Coach API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/auth/register",
				"GET /api/v1/progress/:user_id",
				"POST /api/v1/resume",
				"POST /api/v1/tests/text",
				"POST /api/v1/tests/voice",
				"POST /api/v1/tests/video",
				"GET /api/v1/results/final/:user_id",
				"GET /api/v1/results/history/:user_id",
				"GET /api/v1/questions",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
