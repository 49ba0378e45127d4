package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/port"
)

type keyValueRepository struct {
	q         *db.Queries
	namespace string
}

// NewKeyValue returns device-local storage scoped to namespace.
func NewKeyValue(pool *pgxpool.Pool, namespace string) (port.KeyValueStore, error) {
	if namespace == "" {
		return nil, fmt.Errorf("namespace is empty")
	}

	return &keyValueRepository{
		q:         db.New(pool),
		namespace: namespace,
	}, nil
}

func (r *keyValueRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, fmt.Errorf("key is empty")
	}

	value, err := r.q.GetValue(ctx, db.GetValueParams{Namespace: r.namespace, Key: key})
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("q.GetValue: %w", err)
	}

	return value, true, nil
}

func (r *keyValueRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	err := r.q.SetValue(ctx, db.SetValueParams{Namespace: r.namespace, Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("q.SetValue: %w", err)
	}

	return nil
}

func (r *keyValueRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	_, err := r.q.DeleteValues(ctx, db.DeleteValuesParams{Namespace: r.namespace, Keys: keys})
	if err != nil {
		return fmt.Errorf("q.DeleteValues: %w", err)
	}

	return nil
}
