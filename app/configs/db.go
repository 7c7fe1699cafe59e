package configs

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/Rakhulsr/ecommerce-back-end/app/models/migrations"
	"github.com/Rakhulsr/ecommerce-back-end/app/utils/logger"
	gomysql "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DSN builds the go-sql-driver DSN from JAWSDB_URL when present, otherwise from
// the discrete DB_* settings.
func (e ENV) DSN() (string, error) {
	cfg := gomysql.NewConfig()
	cfg.Net = "tcp"
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	if e.JawsDBURL != "" {
		u, err := url.Parse(e.JawsDBURL)
		if err != nil {
			return "", fmt.Errorf("parse JAWSDB_URL: %w", err)
		}
		if u.Scheme != "mysql" {
			return "", fmt.Errorf("JAWSDB_URL: unsupported scheme %q", u.Scheme)
		}
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
		cfg.Addr = u.Host
		if u.Port() == "" {
			cfg.Addr = net.JoinHostPort(u.Hostname(), "3306")
		}
		cfg.DBName = strings.TrimPrefix(u.Path, "/")
		return cfg.FormatDSN(), nil
	}

	cfg.User = e.DBUser
	cfg.Passwd = e.DBPassword
	cfg.Addr = net.JoinHostPort(e.DBHost, e.DBPort)
	cfg.DBName = e.DBName
	return cfg.FormatDSN(), nil
}

// OpenConnection opens the MySQL pool, retrying until the server answers a ping,
// and registers the product/tag join model on the returned handle.
func OpenConnection(env ENV, log *zap.Logger) (*gorm.DB, error) {
	dsn, err := env.DSN()
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger: logger.NewGormLogger(log, logger.ParseGormLevel(env.DBLogLevel)),
	}

	var lastErr error
	for i := 0; i < env.DBMaxRetries; i++ {
		log.Info("connecting to database",
			zap.Int("attempt", i+1),
			zap.Int("max_attempts", env.DBMaxRetries))

		db, err := gorm.Open(mysql.Open(dsn), gormConfig)
		if err == nil {
			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
				if pingErr == nil {
					sqlDB.SetMaxOpenConns(25)
					sqlDB.SetMaxIdleConns(5)
					sqlDB.SetConnMaxLifetime(5 * time.Minute)

					if err := migrations.SetupJoinTables(db); err != nil {
						return nil, err
					}
					log.Info("database connection successful")
					return db, nil
				}
			}
			lastErr = pingErr
			log.Warn("failed to ping database", zap.Error(pingErr), zap.Duration("retry_in", env.DBRetryDelay))
		} else {
			lastErr = err
			log.Warn("failed to open gorm connection", zap.Error(err), zap.Duration("retry_in", env.DBRetryDelay))
		}

		time.Sleep(env.DBRetryDelay)
	}

	return nil, fmt.Errorf("failed to connect to the database after %d retries: %w", env.DBMaxRetries, lastErr)
}
