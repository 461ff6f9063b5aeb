package match

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// MatchRecord is the persisted row for one match.
type MatchRecord struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"not null"`
	TeamA     string    `json:"team_a"`
	TeamB     string    `json:"team_b"`
	Phase     Phase     `json:"phase" gorm:"index"`
	Started   bool      `json:"started"`
	PinHash   string    `json:"-"`
	State     StateJSON `json:"-" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MatchRecord) TableName() string {
	return "match_records"
}

// StateJSON is the match document stored as a text column.
type StateJSON []byte

func (s StateJSON) Value() (driver.Value, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return string(s), nil
}

func (s *StateJSON) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = nil
	case []byte:
		*s = append(StateJSON(nil), v...)
	case string:
		*s = StateJSON(v)
	default:
		return fmt.Errorf("StateJSON: expected []byte or string, got %T", src)
	}
	return nil
}

// MatchRepository persists match records.
type MatchRepository interface {
	Save(ctx context.Context, rec *MatchRecord) error
	FindByID(ctx context.Context, id string) (*MatchRecord, error)
	List(ctx context.Context) ([]MatchRecord, error)
	Delete(ctx context.Context, id string) error

	// Transaction support
	WithTransaction(txFunc func(MatchRepository) error) error
}

// GormMatchRepository implements MatchRepository using GORM
type GormMatchRepository struct {
	db *gorm.DB
}

// NewGormMatchRepository creates a new GormMatchRepository
func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// WithTransaction implements transaction support
func (r *GormMatchRepository) WithTransaction(txFunc func(MatchRepository) error) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	txRepo := &GormMatchRepository{db: tx}
	err := txFunc(txRepo)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// Save inserts or updates a record by primary key.
func (r *GormMatchRepository) Save(ctx context.Context, rec *MatchRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// FindByID returns nil, nil when no record exists.
func (r *GormMatchRepository) FindByID(ctx context.Context, id string) (*MatchRecord, error) {
	var rec MatchRecord
	result := r.db.WithContext(ctx).First(&rec, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &rec, nil
}

// List returns every record, oldest first.
func (r *GormMatchRepository) List(ctx context.Context) ([]MatchRecord, error) {
	var recs []MatchRecord
	if err := r.db.WithContext(ctx).Order("created_at asc, id asc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *GormMatchRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&MatchRecord{}, "id = ?", id).Error
}
