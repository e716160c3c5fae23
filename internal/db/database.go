package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/config"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/errs"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/models"
)

type Client struct {
	DB *gorm.DB
}

// New connects to the campus database. Credentials come from SSM, never
// from config.
func New(cfg *config.Config, username, password string) (*Client, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.Database.Host,
		username,
		password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errs.Transport(err)
	}

	// Connection Pool Settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errs.Transport(err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Client{DB: db}, nil
}

// Ping confirms the database link is reachable. The campus database sits
// behind the university VPN, so this doubles as the VPN check.
func (c *Client) Ping() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return errs.Transport(err)
	}
	if err := sqlDB.Ping(); err != nil {
		return errs.Transport(err)
	}
	return nil
}

// AutoMigrate creates/updates tables based on struct definitions
func (c *Client) AutoMigrate() error {
	if err := c.DB.AutoMigrate(
		&models.Event{},
		&models.MyEvent{},
	); err != nil {
		return errs.Transport(err)
	}
	return nil
}
