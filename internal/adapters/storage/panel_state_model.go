package storage

import "time"

// PanelStateModel is the GORM model for persisted panel state values
type PanelStateModel struct {
	CreatedAt time.Time
	SessionID string `gorm:"primaryKey;index:idx_session_id"`
	StateKey  string `gorm:"primaryKey"`
	UpdatedAt time.Time
	Value     []byte `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PanelStateModel) TableName() string { return "panel_states" }
