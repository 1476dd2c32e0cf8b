package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/storage"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Diptesh821/Data-Visualization-Dashboard/internal/appcontext"
	"github.com/Diptesh821/Data-Visualization-Dashboard/internal/entity"
	istore "github.com/Diptesh821/Data-Visualization-Dashboard/internal/store"
	"github.com/Diptesh821/Data-Visualization-Dashboard/internal/uploads"
)

func InitContext() (*appcontext.Context, error) {
	if err := godotenv.Load(); err != nil {
		zap.L().Warn("No .env file found, using environment variables")
	}

	logger, err := InitLogger()
	if err != nil {
		return nil, err
	}

	db, err := InitDB()
	if err != nil {
		return nil, err
	}

	ctx := &appcontext.Context{
		DB:     db,
		Logger: logger,

		Store: istore.New(db),

		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Uploads land on local disk in development and in GCS in production;
	// the ingestion source variant follows from this choice.
	if ctx.Environment == "production" {
		gcsClient, err := InitGCSClient()
		if err != nil {
			return nil, err
		}
		ctx.GCSClient = gcsClient
		ctx.GCSBucketName = os.Getenv("GCS_BUCKET_NAME")
		ctx.Uploads = uploads.NewGCSService(gcsClient, ctx.GCSBucketName)
	} else {
		dir := os.Getenv("UPLOAD_DIR")
		if dir == "" {
			dir = "./uploads"
		}
		ctx.Uploads = uploads.NewLocalService(dir)
	}

	return ctx, nil
}

func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	err = db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error
	if err != nil {
		return nil, fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
	}

	err = db.AutoMigrate(&entity.User{}, &entity.Product{}, &entity.Sale{}, &entity.FinancialReport{}, &entity.CustomerTrend{})
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func InitLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func InitGCSClient() (*storage.Client, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GCS client: %w", err)
	}
	return client, nil
}
