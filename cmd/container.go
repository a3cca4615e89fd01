package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Abraxas-365/pathway/guidance/dashboard/dashboardapi"
	"github.com/Abraxas-365/pathway/guidance/dashboard/dashboardsrv"
	"github.com/Abraxas-365/pathway/guidance/learningpath/learningpathapi"
	"github.com/Abraxas-365/pathway/guidance/learningpath/learningpathinfra"
	"github.com/Abraxas-365/pathway/guidance/learningpath/learningpathsrv"
	"github.com/Abraxas-365/pathway/guidance/prediction"
	"github.com/Abraxas-365/pathway/guidance/prediction/predictionapi"
	"github.com/Abraxas-365/pathway/guidance/prediction/predictioninfra"
	"github.com/Abraxas-365/pathway/guidance/prediction/predictionsrv"
	"github.com/Abraxas-365/pathway/guidance/resume/resumeapi"
	"github.com/Abraxas-365/pathway/guidance/resume/resumeinfra"
	"github.com/Abraxas-365/pathway/guidance/resume/resumesrv"
	"github.com/Abraxas-365/pathway/guidance/stats/statsinfra"
	"github.com/Abraxas-365/pathway/internal/ai/pathgen"
	"github.com/Abraxas-365/pathway/internal/mlservice"
	"github.com/Abraxas-365/pathway/internal/pdf"
	"github.com/Abraxas-365/pathway/pkg/config"
	"github.com/Abraxas-365/pathway/pkg/fsx"
	"github.com/Abraxas-365/pathway/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/pathway/pkg/fsx/fsxs3"
	"github.com/Abraxas-365/pathway/pkg/iam/auth"
	"github.com/Abraxas-365/pathway/pkg/iam/user/userapi"
	"github.com/Abraxas-365/pathway/pkg/iam/user/userinfra"
	"github.com/Abraxas-365/pathway/pkg/iam/user/usersrv"
	"github.com/Abraxas-365/pathway/pkg/logx"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const devJWTSecret = "pathway-dev-secret-change-me"

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	S3Client   *s3.Client
	FileSystem fsx.FileSystem
	ML         *mlservice.Client
	CareerInfo prediction.InfoDirectory
	AI         *pathgen.Generator

	// Services
	TokenService        auth.TokenService
	UserService         *usersrv.UserService
	PredictionService   *predictionsrv.PredictionService
	LearningPathService *learningpathsrv.LearningPathService
	DashboardService    *dashboardsrv.DashboardService
	ResumeService       *resumesrv.ResumeService

	// API Handlers
	UserHandlers         *userapi.Handlers
	PredictionHandlers   *predictionapi.Handlers
	LearningPathHandlers *learningpathapi.Handlers
	DashboardHandlers    *dashboardapi.Handlers
	ResumeHandlers       *resumeapi.Handlers

	// Middleware
	AuthMiddleware *auth.TokenMiddleware
}

// NewContainer connects the infrastructure and wires every service
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}
	if err := c.initInfrastructure(ctx); err != nil {
		c.Close()
		return nil, err
	}
	c.initServices()
	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	cfg := c.Config

	// 1. Database connection
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DB.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	c.DB = db

	// 2. Redis connection, optional: the careers cache degrades to a miss
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Pass,
		DB:       cfg.Redis.DB,
	})
	if err := c.Redis.Ping(ctx).Err(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. Object storage, local disk when no bucket is configured
	if cfg.Storage.Bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Storage.Region))
		if err != nil {
			return fmt.Errorf("unable to load AWS SDK config: %w", err)
		}
		c.S3Client = s3.NewFromConfig(awsCfg)
		c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, cfg.Storage.Bucket, cfg.Storage.Prefix)
	} else {
		logx.Warnf("AWS_BUCKET is not set, storing uploads under ./%s", cfg.Storage.Prefix)
		c.FileSystem = fsxlocal.NewLocalFileSystem(cfg.Storage.Prefix)
	}

	// 4. Curated career cards, optional
	info, err := loadCareerInfo(ctx, cfg.ML.CareerInfoPath)
	if err != nil {
		logx.Warnf("Ignoring career info file %s: %v", cfg.ML.CareerInfoPath, err)
	}
	c.CareerInfo = info

	// 5. External services
	c.ML = mlservice.NewClient(cfg.ML.ServiceURL, cfg.ML.Timeout)
	c.AI = pathgen.NewGenerator(pathgen.Config{
		APIKey:      cfg.OpenAI.APIKey,
		Model:       cfg.OpenAI.Model,
		MaxTokens:   cfg.OpenAI.MaxTokens,
		Temperature: cfg.OpenAI.Temp,
	})
	if !c.AI.Configured() {
		logx.Warn("OPENAI_API_KEY is not set, learning paths use the fallback generators")
	}
	return nil
}

func (c *Container) initServices() {
	cfg := c.Config

	// --- Repositories ---
	userRepo := userinfra.NewPostgresUserRepository(c.DB)
	statsRepo := statsinfra.NewPostgresStatsRepository(c.DB)
	historyRepo := predictioninfra.NewPostgresHistoryRepository(c.DB)
	pathRepo := learningpathinfra.NewPostgresLearningPathRepository(c.DB)
	resumeRepo := resumeinfra.NewPostgresResumeRepository(c.DB)
	catalogCache := predictioninfra.NewRedisCatalogCache(c.Redis)

	// --- Auth ---
	secret := cfg.JWT.Secret
	if secret == "" {
		logx.Warn("JWT_SECRET is not set, using development default (unsafe for production)")
		secret = devJWTSecret
	}
	c.TokenService = auth.NewJWTService(secret, cfg.JWT.ExpiresIn, cfg.JWT.Issuer)

	// --- Domain services ---
	c.UserService = usersrv.NewUserService(userRepo, auth.NewBcryptPasswordService(), c.TokenService, statsRepo)
	c.PredictionService = predictionsrv.NewPredictionService(historyRepo, c.ML, catalogCache, statsRepo, cfg.Cache.CareersTTL).
		WithInfoDirectory(c.CareerInfo)
	c.LearningPathService = learningpathsrv.NewLearningPathService(pathRepo, c.AI, c.ML, statsRepo)
	c.DashboardService = dashboardsrv.NewDashboardService(c.PredictionService, c.LearningPathService, statsRepo)
	c.ResumeService = resumesrv.NewResumeService(resumeRepo, c.FileSystem, pdf.NewTextExtractor(), c.PredictionService, statsRepo)

	// --- Handlers ---
	c.UserHandlers = userapi.NewHandlers(c.UserService)
	c.PredictionHandlers = predictionapi.NewHandlers(c.PredictionService)
	c.LearningPathHandlers = learningpathapi.NewHandlers(c.LearningPathService)
	c.DashboardHandlers = dashboardapi.NewHandlers(c.DashboardService)
	c.ResumeHandlers = resumeapi.NewHandlers(c.ResumeService)

	// --- Middleware ---
	c.AuthMiddleware = auth.NewAuthMiddleware(c.TokenService, userRepo)
}

// loadCareerInfo reads the curated career cards; a missing file yields none
func loadCareerInfo(ctx context.Context, path string) (prediction.InfoDirectory, error) {
	if path == "" {
		return nil, nil
	}
	files := fsxlocal.NewLocalFileSystem(filepath.Dir(path))
	data, err := files.ReadFile(ctx, filepath.Base(path))
	if errors.Is(err, fsx.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return prediction.ParseInfoDirectory(data)
}

func (c *Container) pingDB(ctx context.Context) bool {
	return c.DB != nil && c.DB.PingContext(ctx) == nil
}

func (c *Container) pingRedis(ctx context.Context) bool {
	return c.Redis != nil && c.Redis.Ping(ctx).Err() == nil
}

func (c *Container) pingML(ctx context.Context) bool {
	return c.ML != nil && c.ML.Ping(ctx) == nil
}

// Close releases the connections opened by NewContainer
func (c *Container) Close() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logx.Warnf("closing database: %v", err)
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logx.Warnf("closing redis: %v", err)
		}
	}
}
