package client

import (
	"database/sql"

	"apitracker/config"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLClient 持有 Record store 的連線池
type SQLClient struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewSQLClient(logger *zap.Logger, config *config.Configuration) (*SQLClient, func(), error) {
	dsn := config.Database.DSN
	if dsn == "" {
		dsn = "file:api_tracker.db"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		logger.Error("failed to open record store", zap.Error(err))
		return nil, nil, err
	}
	if config.Database.MaxOpenConns > 0 {
		db.SetMaxOpenConns(config.Database.MaxOpenConns)
	}
	if config.Database.MaxIdleConns > 0 {
		db.SetMaxIdleConns(config.Database.MaxIdleConns)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		logger.Error("failed to connect to record store", zap.Error(err))
		return nil, nil, err
	}
	logger.Info("Connected to record store", zap.String("dsn", dsn))

	sqlClient := &SQLClient{db: db, logger: logger}
	cleanup := func() {
		logger.Info("closing the record store resources")
		if err := sqlClient.Close(); err != nil {
			logger.Error("failed to close record store", zap.Error(err))
		}
	}

	return sqlClient, cleanup, nil
}

// DB 回傳底層連線池
func (c *SQLClient) DB() *sql.DB {
	return c.db
}

// Close 關閉連線
func (c *SQLClient) Close() error {
	return c.db.Close()
}
