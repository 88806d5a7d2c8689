package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"dota2-stats-server/handlers"
	"dota2-stats-server/models"
	"dota2-stats-server/services"
	"dota2-stats-server/utils"
	"dota2-stats-server/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    10 * 1024 * 1024, // 10MB
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(helmet.New())

	// The game client sends no Origin header; browsers only hit the public
	// read endpoints, so any origin is fine.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to access connection pool:", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(30 * time.Second)

	if err := db.AutoMigrate(
		&models.Player{},
		&models.Match{},
		&models.PlayerMatch{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	playerService := services.NewPlayerService(db)
	matchService := services.NewMatchService(db)

	handlers.SetupRootRoutes(app)
	handlers.SetupPlayerRoutes(app, playerService)
	handlers.SetupMatchRoutes(app, matchService)
	handlers.SetupNotFoundHandler(app)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if utils.R2Configured() {
		if err := utils.InitR2(); err != nil {
			log.Fatal("failed to initialize R2 client:", err)
		}
		minutes, _ := strconv.Atoi(os.Getenv("LEADERBOARD_SNAPSHOT_MINUTES"))
		snapshotWorker := workers.NewSnapshotWorker(
			playerService,
			os.Getenv("LEADERBOARD_TITLE"),
			time.Duration(minutes)*time.Minute,
		)
		go snapshotWorker.Start(ctx)
	} else {
		log.Println("⚠️  R2 not configured, leaderboard snapshot worker disabled")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Println("=================================")
	log.Println("🚀 Dota 2 Stats Server running!")
	log.Printf("📍 Port: %s", port)
	log.Printf("🌐 Mode: %s", appEnv())
	log.Println("=================================")

	<-ctx.Done()
	log.Println("🛑 Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Pool close error: %v", err)
	}
	log.Println("✅ Connection pool closed")
}

func appEnv() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "development"
}
