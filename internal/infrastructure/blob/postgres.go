package blob

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/linksera/internal/domain"
	"github.com/totegamma/linksera/internal/infrastructure/database/models"
)

type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	var blob models.Blob
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&blob).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFoundError{Resource: "blob " + key}
	}
	if err != nil {
		return nil, errors.Wrap(err, "postgres load")
	}
	return []byte(blob.Value), nil
}

func (s *PostgresStore) Save(ctx context.Context, key string, value []byte) error {
	blob := models.Blob{
		Key:   key,
		Value: string(value),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "m_date"}),
	}).Create(&blob).Error
	if err != nil {
		return errors.Wrap(err, "postgres save")
	}
	return nil
}
