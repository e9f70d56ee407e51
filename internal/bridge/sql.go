package bridge

import (
	"fmt"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/tada-app/tada/internal/repository/sqlite"
)

// SQLBridge 绑定到 Wails 前端的通用 SQL 通道。任务/清单的业务语义完全在
// web 前端，这里只是把本地数据库暴露给它，不做任何领域解释。
type SQLBridge struct {
	db *sqlite.DB
}

func NewSQLBridge(db *sqlite.DB) *SQLBridge {
	return &SQLBridge{db: db}
}

// ExecuteResult is what the front-end data layer expects back from a write.
type ExecuteResult struct {
	RowsAffected int64 `json:"rowsAffected"`
	LastInsertID int64 `json:"lastInsertId"`
}

// Select runs a read query and returns the result rows as a JSON array.
// Column values come back as strings, numbers, booleans or null.
func (b *SQLBridge) Select(query string, args []interface{}) (string, error) {
	rows, err := b.db.GormDB().Raw(query, args...).Rows()
	if err != nil {
		return "", b.fail("select", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return "", b.fail("select", err)
	}

	out := make([]map[string]interface{}, 0)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return "", b.fail("select", err)
		}

		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			if raw, ok := values[i].([]byte); ok {
				row[col] = string(raw)
			} else {
				row[col] = values[i]
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return "", b.fail("select", err)
	}

	data, err := sonic.Marshal(out)
	if err != nil {
		return "", b.fail("select", err)
	}
	return string(data), nil
}

// Execute runs a write statement and reports affected rows and the last
// insert rowid.
func (b *SQLBridge) Execute(query string, args []interface{}) (ExecuteResult, error) {
	sqlDB, err := b.db.SQL()
	if err != nil {
		return ExecuteResult{}, b.fail("execute", err)
	}

	res, err := sqlDB.Exec(query, args...)
	if err != nil {
		return ExecuteResult{}, b.fail("execute", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return ExecuteResult{}, b.fail("execute", err)
	}
	// SQLite 的 text 主键表没有有意义的 rowid 时返回 0
	lastID, _ := res.LastInsertId()

	return ExecuteResult{RowsAffected: affected, LastInsertID: lastID}, nil
}

// fail logs the full error server-side and hands the front-end a correlation
// id instead of raw SQL details.
func (b *SQLBridge) fail(op string, err error) error {
	callID := uuid.NewString()[:8]
	log.Printf("[Bridge] %s %s failed: %v", op, callID, err)
	return fmt.Errorf("database %s failed (ref %s)", op, callID)
}
