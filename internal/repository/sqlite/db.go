package sqlite

import (
	"database/sql"
	"fmt"
	"log"

	sqlitedriver "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 封装本地嵌入式数据库连接
type DB struct {
	gorm *gorm.DB
	path string
}

// Open opens the SQLite database at path without running migrations.
// WAL mode, busy timeout and foreign key enforcement are applied to every
// connection via DSN pragmas.
func Open(path string) (*DB, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(30000)&_pragma=foreign_keys(1)"

	gormDB, err := gorm.Open(sqlitedriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("[DB] Opened SQLite database: %s", path)
	return &DB{gorm: gormDB, path: path}, nil
}

// NewDB opens the database and brings it to the latest bundled schema
// version. 迁移失败视为致命错误，调用方应终止启动。
func NewDB(path string) (*DB, error) {
	d, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := d.ApplyMigrations(Migrations); err != nil {
		return nil, err
	}
	return d, nil
}

// GormDB returns the underlying GORM DB instance
func (d *DB) GormDB() *gorm.DB {
	return d.gorm
}

// SQL returns the underlying sql.DB
func (d *DB) SQL() (*sql.DB, error) {
	return d.gorm.DB()
}

// Path returns the database file path
func (d *DB) Path() string {
	return d.path
}

func (d *DB) Close() error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
