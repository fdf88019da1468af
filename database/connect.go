package database

import (
	"context"
	"fmt"
	"time"

	"cinema_console/config"
	"cinema_console/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	DB    *gorm.DB
	Redis *redis.Client
)

// ConnectRedis opens the shared redis client used for sessions, the API
// cache and seat updates. It returns nil when no address is configured.
func ConnectRedis(ctx context.Context, s *config.Settings, log zerolog.Logger) (*redis.Client, error) {
	if s.RedisAddr == "" {
		log.Info().Msg("redis not configured, using in-memory sessions")
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     s.RedisAddr,
		Password: s.RedisPassword,
		DB:       s.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", s.RedisAddr, err)
	}
	log.Info().Str("addr", s.RedisAddr).Msg("connection opened to redis")
	Redis = rdb
	return rdb, nil
}

// ConnectDB opens the audit database and migrates its table. It returns
// nil when DB_HOST is unset.
func ConnectDB(s config.DatabaseSettings, log zerolog.Logger) (*gorm.DB, error) {
	if !s.Enabled() {
		log.Info().Msg("audit database not configured")
		return nil, nil
	}
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		s.Host, s.Port, s.User, s.Password, s.Name)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	log.Info().Str("host", s.Host).Msg("connection opened to database")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Info().Msg("database migrated")
	DB = db
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.AuditEntry{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
