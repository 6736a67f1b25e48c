package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/denmor86/orderdesk/internal/models"
)

const (
	InsertAction = `INSERT INTO ACTIONS (id, order_id, action, actor, result, details, created_at)
						VALUES ($1, $2, $3, $4, $5, $6, $7);`
	GetActions = `SELECT id, order_id, action, actor, result, details, created_at
					FROM ACTIONS ORDER BY created_at DESC LIMIT $1;`
)

type ActionsDatabase struct {
	DB *Database
}

func NewActionsStorage(db *Database) ActionsStorage {
	return &ActionsDatabase{DB: db}
}

func (s *ActionsDatabase) AddAction(ctx context.Context, action models.ActionData) error {
	_, err := s.DB.Pool.Exec(ctx, InsertAction,
		action.ID,
		action.OrderID,
		action.Action,
		action.Actor,
		action.Result,
		action.Details,
		action.CreatedAt,
	)
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}
	return fmt.Errorf("insert action: %w", err)
}

func (s *ActionsDatabase) GetActions(ctx context.Context, limit int) ([]models.ActionData, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	rows, err := s.DB.Pool.Query(ctx, GetActions, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get actions: %w", err)
	}
	defer rows.Close()

	actions := make([]models.ActionData, 0, limit)
	for rows.Next() {
		var (
			a         models.ActionData
			createdAt time.Time
		)
		if err := rows.Scan(&a.ID, &a.OrderID, &a.Action, &a.Actor, &a.Result, &a.Details, &createdAt); err != nil {
			return actions, fmt.Errorf("failed scan actions data: %w", err)
		}
		a.CreatedAt = createdAt
		actions = append(actions, a)
	}
	return actions, rows.Err()
}
