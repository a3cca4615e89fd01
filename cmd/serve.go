package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abraxas-365/pathway/guidance/dashboard/dashboardapi"
	"github.com/Abraxas-365/pathway/guidance/learningpath/learningpathapi"
	"github.com/Abraxas-365/pathway/guidance/prediction/predictionapi"
	"github.com/Abraxas-365/pathway/guidance/resume/resumeapi"
	"github.com/Abraxas-365/pathway/pkg/config"
	"github.com/Abraxas-365/pathway/pkg/errx"
	"github.com/Abraxas-365/pathway/pkg/iam/user/userapi"
	"github.com/Abraxas-365/pathway/pkg/logx"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func loadConfig() (*config.Config, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}

	logx.SetJSON(cfg.Log.JSON)
	logx.SetLevel(logx.ParseLevel(cfg.Log.Level))
	return cfg, nil
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Configuration and logger
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logx.Sync()
	logx.Infof("Starting Pathway API (%s)...", cfg.Env)

	// 2. Dependency container
	container, err := NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	// 3. Fiber app with routes
	app := newApp(container)

	// 4. Start server with graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		logx.Infof("Server listening on port %s", cfg.Server.Port)
		errCh <- app.Listen(":" + cfg.Server.Port)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-errCh:
		return err
	case <-sig:
	}

	logx.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}
	logx.Info("Server exited")
	return nil
}

func newApp(c *Container) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Pathway API",
		DisableStartupMessage: true,
		ErrorHandler:          errx.FiberErrorHandler,
		BodyLimit:             resumeapi.BodyLimit,
	})

	// Global middleware
	app.Use(recover.New())
	origin := c.Config.Server.CORSOrigin
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, PATCH, HEAD",
		AllowCredentials: origin != "*",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status":      "healthy",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": c.Config.Env,
			"db":          c.pingDB(ctx.UserContext()),
			"redis":       c.pingRedis(ctx.UserContext()),
			"ml":          c.pingML(ctx.UserContext()),
		})
	})

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Career Path Recommendation API",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"auth":         "/api/auth",
				"careers":      "/api/careers",
				"predict":      "/api/predict",
				"resume":       "/api/predict-from-resume",
				"learningPath": "/api/generate-path",
				"dashboard":    "/api/dashboard",
			},
		})
	})

	// /api/auth/signup, /api/auth/login, /api/auth/me
	userapi.RegisterRoutes(app, c.UserHandlers, c.AuthMiddleware)

	// /api/careers, /api/predict, /api/career-history, /api/career-info
	predictionapi.RegisterRoutes(app, c.PredictionHandlers, c.AuthMiddleware)

	// /api/predict-from-resume
	resumeapi.RegisterRoutes(app, c.ResumeHandlers, c.AuthMiddleware)

	// /api/generate-path, /api/ai/status, /api/save-learning-path, /api/learning-path-history
	learningpathapi.RegisterRoutes(app, c.LearningPathHandlers, c.AuthMiddleware)

	// /api/dashboard
	dashboardapi.RegisterRoutes(app, c.DashboardHandlers, c.AuthMiddleware)

	app.Use(func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Route not found",
		})
	})

	return app
}
