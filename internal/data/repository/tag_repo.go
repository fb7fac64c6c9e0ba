package repository

import (
	"context"
	"fmt"

	"customer-crm/internal/data/entity"
	"customer-crm/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TagRepository interface {
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Tag, error)
}

type tagRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewTagRepository(db database.Querier, log *zap.Logger) TagRepository {
	return &tagRepository{
		db:  db,
		log: log.With(zap.String("repository", "tag")),
	}
}

func (r *tagRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Tag, error) {
	query := `
		SELECT t.id, t.name
		FROM tags t
		JOIN customer_tags ct ON ct.tag_id = t.id
		WHERE ct.customer_id = $1
		ORDER BY t.name
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to find customer tags",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find tags for customer %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	var tags []*entity.Tag
	for rows.Next() {
		var tag entity.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("scan tag row: %w", err)
		}
		tags = append(tags, &tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tag rows: %w", err)
	}

	return tags, nil
}
