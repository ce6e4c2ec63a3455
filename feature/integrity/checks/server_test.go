package checks

import (
	"regexp"
	"testing"

	"ue-intellisense/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupSQLite(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func columns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
}

func TestCheckServerIntegrity_NilDB(t *testing.T) {
	report, err := CheckServerIntegrity(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckServerIntegrity_MissingTables(t *testing.T) {
	db := setupSQLite(t)

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, "sqlite", report.Driver)
	assert.True(t, report.Tables["history_runs"].Missing)
	assert.True(t, report.Tables["history_run_changes"].Missing)
}

func TestCheckServerIntegrity_FixMigrates(t *testing.T) {
	db := setupSQLite(t)
	require.NoError(t, FixServer(db))

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.True(t, report.Matched, "report: %+v", report)
	assert.Equal(t, "ok", report.Tables["history_runs"].Status)
}

func TestFixServer_NilDB(t *testing.T) {
	assert.Error(t, FixServer(nil))
}

func TestCheckServerIntegrity_MySQLMismatch(t *testing.T) {
	db, mock := setupMockDB(t)

	runs := columns().
		AddRow("id", "varchar(36)", "NO", "PRI", nil, "").
		AddRow("project", "int(11)", "NO", "", nil, "") // expect varchar, give int
	mock.ExpectQuery("SHOW COLUMNS FROM `history_runs`").WillReturnRows(runs)
	mock.ExpectQuery("SHOW COLUMNS FROM `history_run_changes`").WillReturnError(assert.AnError)

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables["history_runs"]
	assert.Equal(t, "error", tbl.Status)
	assert.Contains(t, tbl.MissingColumns, "override")
	assert.NotContains(t, tbl.MissingColumns, "changes")

	foundMismatch := false
	for _, m := range tbl.TypeMismatches {
		if regexp.MustCompile(`project: expected varchar\(191\), got int\(11\)`).MatchString(m) {
			foundMismatch = true
		}
	}
	assert.True(t, foundMismatch, "Got: %v", tbl.TypeMismatches)

	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "history_run_changes")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "id", parseGormColumn("column:id;primaryKey"))
	assert.Equal(t, "run_id", parseGormColumn("column:run_id;type:varchar(36);index"))
	assert.Equal(t, "", parseGormColumn("foreignKey:RunID"))

	assert.Equal(t, "varchar(36)", parseGormType("column:id;type:varchar(36)"))
	assert.Equal(t, "", parseGormType("column:id"))
}
