package history

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Run is one applied cppStandard reconciliation.
type Run struct {
	ID           string      `gorm:"column:id;type:varchar(36);primaryKey" json:"id" yaml:"id"`
	Project      string      `gorm:"column:project;type:varchar(191);index" json:"project" yaml:"project"`
	Root         string      `gorm:"column:root;type:text" json:"root" yaml:"root"`
	Override     *string     `gorm:"column:override;type:varchar(32)" json:"override" yaml:"override"`
	Special      bool        `gorm:"column:special" json:"special" yaml:"special"`
	ChangeCount  int         `gorm:"column:change_count" json:"change_count" yaml:"change_count"`
	WarningCount int         `gorm:"column:warning_count" json:"warning_count" yaml:"warning_count"`
	SavedCount   int         `gorm:"column:saved_count" json:"saved_count" yaml:"saved_count"`
	BackedUp     bool        `gorm:"column:backed_up" json:"backed_up" yaml:"backed_up"`
	CreatedAt    time.Time   `gorm:"column:created_at" json:"created_at" yaml:"created_at"`
	Changes      []RunChange `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"changes" yaml:"changes"`
}

// TableName overrides the table name used by Run.
func (Run) TableName() string {
	return "history_runs"
}

// BeforeCreate assigns a run id when the caller did not.
func (r *Run) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// RunChange is one configuration whose cppStandard a run rewrote.
type RunChange struct {
	ID            uint    `gorm:"column:id;primaryKey" json:"-" yaml:"-"`
	RunID         string  `gorm:"column:run_id;type:varchar(36);index" json:"-" yaml:"-"`
	Workspace     string  `gorm:"column:workspace;type:varchar(191)" json:"workspace" yaml:"workspace"`
	Configuration string  `gorm:"column:configuration;type:varchar(191)" json:"configuration" yaml:"configuration"`
	Before        *string `gorm:"column:before_standard;type:varchar(32)" json:"before" yaml:"before"`
	After         *string `gorm:"column:after_standard;type:varchar(32)" json:"after" yaml:"after"`
}

// TableName overrides the table name used by RunChange.
func (RunChange) TableName() string {
	return "history_run_changes"
}

// Models lists the history tables in migration order.
func Models() []any {
	return []any{&Run{}, &RunChange{}}
}
