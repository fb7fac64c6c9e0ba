package repository

import (
	"context"
	"fmt"

	"customer-crm/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GroupRepository interface {
	AddUser(ctx context.Context, userID uuid.UUID, groupName string) error
	FindNamesByUserID(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type groupRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewGroupRepository(db database.Querier, log *zap.Logger) GroupRepository {
	return &groupRepository{
		db:  db,
		log: log.With(zap.String("repository", "group")),
	}
}

// AddUser puts the user into the named group. The group must already exist.
func (r *groupRepository) AddUser(ctx context.Context, userID uuid.UUID, groupName string) error {
	query := `
		INSERT INTO user_groups (user_id, group_id)
		SELECT $1, g.id FROM groups g WHERE g.name = $2
		ON CONFLICT DO NOTHING
	`

	result, err := r.db.Exec(ctx, query, userID, groupName)
	if err != nil {
		r.log.Error("Failed to add user to group",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("group", groupName),
		)
		return fmt.Errorf("add user %s to group %s: %w", userID.String(), groupName, err)
	}

	if result.RowsAffected() == 0 {
		exists, err := r.isMember(ctx, userID, groupName)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("group %s does not exist", groupName)
		}
	}

	return nil
}

func (r *groupRepository) isMember(ctx context.Context, userID uuid.UUID, groupName string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_groups ug
			JOIN groups g ON g.id = ug.group_id
			WHERE ug.user_id = $1 AND g.name = $2
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, groupName).Scan(&exists); err != nil {
		return false, fmt.Errorf("check group membership: %w", err)
	}
	return exists, nil
}

func (r *groupRepository) FindNamesByUserID(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `
		SELECT g.name
		FROM groups g
		JOIN user_groups ug ON ug.group_id = g.id
		WHERE ug.user_id = $1
		ORDER BY g.name
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find user groups",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find groups for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan group row: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate group rows: %w", err)
	}

	return names, nil
}
