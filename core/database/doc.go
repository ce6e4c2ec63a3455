// Package database handles database connections and schema inspection.
//
// It wraps GORM to open either a local SQLite file (the default, kept next to
// the project's .vscode folder) or a shared MySQL server, based on Config.
// The database only stores reconciliation history, so every caller treats a
// failed Connect as "history unavailable" and carries on.
//
// # Schema Inspection
//
// GetTableColumns and HasTable back the server integrity check, which compares
// the live tables against the history models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("History disabled", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "history_runs")
package database
