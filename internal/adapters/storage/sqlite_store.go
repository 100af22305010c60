package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
	"github.com/tiennsloit/get-agent-sub001/internal/ports"
)

// SQLiteStore implements ports.SessionStore using GORM
type SQLiteStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.SessionStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (and migrates) the database at dbPath
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets a CLI invocation read while the panel host writes
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&PanelStateModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate panel state schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get returns the value stored under key for the session
func (s *SQLiteStore) Get(ctx context.Context, sessionID, key string) ([]byte, error) {
	var model PanelStateModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).
			Where("session_id = ? AND state_key = ?", sessionID, key).
			First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s for session %s: %w", key, sessionID, domain.ErrStateNotFound)
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return model.Value, nil
}

// Put stores value under key, replacing any previous value
func (s *SQLiteStore) Put(ctx context.Context, sessionID, key string, value []byte) error {
	model := PanelStateModel{
		StateKey:  key,
		SessionID: sessionID,
		Value:     value,
	}
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "state_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&model).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to put %s: %w", key, err)
	}
	return nil
}

// Delete removes key for the session; deleting a missing key is not an error
func (s *SQLiteStore) Delete(ctx context.Context, sessionID, key string) error {
	err := withRetry(func() error {
		return s.db.WithContext(ctx).
			Where("session_id = ? AND state_key = ?", sessionID, key).
			Delete(&PanelStateModel{}).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Keys lists the keys stored for the session
func (s *SQLiteStore) Keys(ctx context.Context, sessionID string) ([]string, error) {
	var keys []string
	err := withRetry(func() error {
		keys = nil
		return s.db.WithContext(ctx).
			Model(&PanelStateModel{}).
			Where("session_id = ?", sessionID).
			Order("state_key").
			Pluck("state_key", &keys).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	return keys, nil
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
