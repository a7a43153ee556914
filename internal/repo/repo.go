package repo

import (
	"ReviewBoard/internal/model"
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// InitDB открывает БД по DSN и создаёт таблицы моделей.
// DSN вида "file:..." или "*.db" открывается через SQLite (modernc), остальное: Postgres.
func InitDB(dsn string, maxOpenConns int) (*gorm.DB, error) {
	db, err := gorm.Open(dialectorFor(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxOpenConns)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate создаёт (или дополняет) таблицы всех моделей.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Item{}, &model.Review{}, &model.Comment{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// Ping проверяет доступность БД; используется в /healthz.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return translate(err)
	}
	return nil
}

func isSQLiteDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "file:") || strings.HasSuffix(dsn, ".db") || dsn == ":memory:"
}

func dialectorFor(dsn string) gorm.Dialector {
	if !isSQLiteDSN(dsn) {
		return postgres.Open(dsn)
	}
	if !strings.Contains(dsn, "foreign_keys") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
}

// store: общая часть репозиториев: соединение и таймаут на одну операцию.
type store struct {
	db      *gorm.DB
	timeout time.Duration
}

func (s store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
