package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb"
)

var auditDB *sql.DB

// initAuditLog opens (or creates) the DuckDB file holding the per-tool
// query audit log. A failure here only disables the log and the query_stats
// tool; the server still serves.
func initAuditLog() error {
	path := envOr("DUCKDB_PATH", "./analytics.duckdb")

	db, err := sql.Open("duckdb", path+"?access_mode=READ_WRITE")
	if err != nil {
		return fmt.Errorf("failed to open duckdb: %w", err)
	}

	// DuckDB works best with a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping duckdb: %w", err)
	}

	_, err = db.Exec(`
	CREATE SEQUENCE IF NOT EXISTS seq_query_log;
	CREATE TABLE IF NOT EXISTS mcp_query_log (
		id            BIGINT DEFAULT nextval('seq_query_log'),
		tool_name     VARCHAR,
		params        JSON,
		result_count  INTEGER,
		duration_ms   DOUBLE,
		created_at    TIMESTAMPTZ DEFAULT now()
	);`)
	if err != nil {
		return fmt.Errorf("failed to create audit log schema: %w", err)
	}

	auditDB = db
	logger.Info("query audit log ready", "path", path)
	return nil
}

func auditAvailable() bool {
	return auditDB != nil
}

// logQueryAsync records one tool execution without blocking the caller.
func logQueryAsync(toolName string, params map[string]any, resultCount int, duration time.Duration) {
	if auditDB == nil {
		return
	}

	go func() {
		paramsJSON, err := json.Marshal(params)
		if err != nil {
			logger.Warn("failed to marshal audit params", "tool", toolName, "error", err)
			return
		}

		_, err = auditDB.Exec(`
			INSERT INTO mcp_query_log (tool_name, params, result_count, duration_ms)
			VALUES (?, ?, ?, ?)
		`, toolName, string(paramsJSON), resultCount, float64(duration.Milliseconds()))
		if err != nil {
			logger.Warn("failed to write audit log", "tool", toolName, "error", err)
		}
	}()
}

// toolUsageStats aggregates the audit log per tool.
func toolUsageStats() ([]map[string]any, error) {
	if auditDB == nil {
		return nil, fmt.Errorf("query audit log not initialized")
	}

	rows, err := auditDB.Query(`
		SELECT tool_name, COUNT(*) AS calls, AVG(duration_ms) AS avg_duration, MAX(duration_ms) AS max_duration
		FROM mcp_query_log
		GROUP BY tool_name
		ORDER BY calls DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []map[string]any
	for rows.Next() {
		var toolName string
		var calls int64
		var avgDur, maxDur float64
		if err := rows.Scan(&toolName, &calls, &avgDur, &maxDur); err != nil {
			return nil, err
		}
		stats = append(stats, map[string]any{
			"tool":   toolName,
			"calls":  calls,
			"avg_ms": avgDur,
			"max_ms": maxDur,
		})
	}
	return stats, rows.Err()
}
