package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"goldloan-portal/internal/adapters/persistence/models"
	"goldloan-portal/internal/adapters/persistence/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance (nil unless SESSION_STORAGE=mysql)
var DB *gorm.DB

// redisClient is set when SESSION_STORAGE=redis
var redisClient *redis.Client

// redisKeyPrefix namespaces every key this service writes to redis
const redisKeyPrefix = "goldloan:"

// ConnectStorage opens the configured session storage backend
func ConnectStorage(cfg *Config) (fiber.Storage, error) {
	switch cfg.Session.Storage {
	case StorageRedis:
		client, err := ConnectRedis(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewRedis(client, redisKeyPrefix), nil
	case StorageMySQL:
		db, err := ConnectDatabase(cfg)
		if err != nil {
			return nil, err
		}
		if err := models.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate session_slots: %w", err)
		}
		return storage.NewSQL(db), nil
	default:
		log.Println("⚠️  Using in-memory session storage; sessions are lost on restart")
		return storage.NewMemory(), nil
	}
}

// ConnectRedis establishes connection to Redis
func ConnectRedis(cfg *Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	redisClient = client
	log.Printf("✅ Redis connected successfully [%s/%d]", cfg.Redis.Addr, cfg.Redis.DB)
	return client, nil
}

// ConnectDatabase establishes connection to MySQL database
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := buildDSN(cfg.Database)

	// Configure GORM logger based on mode
	var gormLogger logger.Interface
	if cfg.IsDev() {
		gormLogger = logger.Default.LogMode(logger.Info)
	} else {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	DB = db

	log.Printf("✅ Database connected successfully [%s:%s/%s]",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
	)

	return db, nil
}

// buildDSN returns the database connection string
func buildDSN(d DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.DBName,
	)
}

// CloseStorage closes whichever backend connection was opened
func CloseStorage() error {
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			return err
		}
		redisClient = nil
	}
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck checks the session storage backend
func HealthCheck(ctx context.Context) error {
	if redisClient != nil {
		return redisClient.Ping(ctx).Err()
	}
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
	return nil
}
