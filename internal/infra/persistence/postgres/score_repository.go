package postgres

import (
	"context"

	"gorm.io/gorm"

	"sip/internal/domain/entity"
	domainErrors "sip/internal/domain/errors"
	"sip/internal/domain/repository"
	"sip/internal/infra/persistence/model"
)

// scoreRepository implements the ScoreRepository interface with GORM.
type scoreRepository struct {
	db *gorm.DB
}

// NewScoreRepository creates a score repository bound to the given connection,
// which may be a transaction handle.
func NewScoreRepository(db *gorm.DB) repository.ScoreRepository {
	return &scoreRepository{db: db}
}

// Append stores a new score submission.
func (r *scoreRepository) Append(ctx context.Context, record *entity.ScoreRecord) error {
	row := model.FromScoreEntity(record)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return domainErrors.NewDatabaseExecuteError(err, "append score record")
	}

	record.ID = row.ID
	record.CreatedAt = row.CreatedAt

	return nil
}

// ListByEmail returns every submission recorded under the email, oldest first.
func (r *scoreRepository) ListByEmail(ctx context.Context, email string) ([]entity.ScoreRecord, error) {
	var rows []model.ScoreModel
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, domainErrors.NewDatabaseExecuteError(err, "list score records by email")
	}

	records := make([]entity.ScoreRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].ToEntity())
	}

	return records, nil
}
