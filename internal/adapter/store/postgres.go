package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"naira-rate-service/internal/domain/model"
	"naira-rate-service/internal/domain/ports"
)

// rateRecordModel is the persisted shape of a rate record. One row per
// canonical pair, updated in place.
type rateRecordModel struct {
	Pair         string    `gorm:"primaryKey;size:16"`
	Rate         float64   `gorm:"not null"`
	ParallelRate *float64
	Summary      string    `gorm:"type:text"`
	Sources      string    `gorm:"type:text"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

func (rateRecordModel) TableName() string {
	return "rate_records"
}

// PostgresStore persists rate records through gorm.
type PostgresStore struct {
	db *gorm.DB
}

// OpenPostgres connects to the database and migrates the rate_records table.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := db.AutoMigrate(&rateRecordModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate rate_records: %w", err)
	}
	return db, nil
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (p *PostgresStore) Get(ctx context.Context, pairKey string) (model.RateRecord, error) {
	var row rateRecordModel
	err := p.db.WithContext(ctx).Where("pair = ?", pairKey).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.RateRecord{}, ports.ErrRecordNotFound
		}
		return model.RateRecord{}, fmt.Errorf("failed to read rate record: %w", err)
	}
	return toDomainRecord(row)
}

func (p *PostgresStore) Put(ctx context.Context, record model.RateRecord) error {
	row, err := toStoreRecord(record)
	if err != nil {
		return err
	}
	err = p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pair"}},
			UpdateAll: true,
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to write rate record: %w", err)
	}
	return nil
}

func toStoreRecord(record model.RateRecord) (rateRecordModel, error) {
	sources, err := json.Marshal(record.Sources)
	if err != nil {
		return rateRecordModel{}, fmt.Errorf("failed to encode sources: %w", err)
	}
	return rateRecordModel{
		Pair:         record.Pair,
		Rate:         record.Rate,
		ParallelRate: record.ParallelRate,
		Summary:      record.Summary,
		Sources:      string(sources),
		UpdatedAt:    record.UpdatedAt,
	}, nil
}

func toDomainRecord(row rateRecordModel) (model.RateRecord, error) {
	var sources []model.Citation
	if row.Sources != "" {
		if err := json.Unmarshal([]byte(row.Sources), &sources); err != nil {
			return model.RateRecord{}, fmt.Errorf("failed to decode sources: %w", err)
		}
	}
	return model.RateRecord{
		Pair:         row.Pair,
		Rate:         row.Rate,
		ParallelRate: row.ParallelRate,
		Summary:      row.Summary,
		Sources:      sources,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

var _ ports.RateStore = (*PostgresStore)(nil)
