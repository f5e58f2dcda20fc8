package property

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pandodao/carbon-wallet/core"
	"github.com/pandodao/carbon-wallet/store"
	"github.com/tsenart/nap"
)

type propertyStore struct {
	db *nap.DB
}

func New(db *nap.DB) core.PropertyStore {
	return &propertyStore{db: db}
}

// Get decodes the stored value of key into value. value is left untouched
// when the key was never set.
func (s *propertyStore) Get(ctx context.Context, key string, value any) error {
	b := sq.Select("`value`").
		From("properties").
		Where(sq.Eq{"`key`": key})

	var raw []byte
	if err := b.RunWith(s.db).QueryRowContext(ctx).Scan(&raw); err != nil {
		if store.IsErrNotFound(err) {
			return nil
		}

		return err
	}

	return json.Unmarshal(raw, value)
}

func (s *propertyStore) Set(ctx context.Context, key string, value any) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	update := sq.Update("properties").
		Set("`value`", string(jsonValue)).
		Set("`version`", sq.Expr("`version` + 1")).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"`key`": key})

	r, err := update.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set property: %w", err)
	}

	n, err := r.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if n > 0 {
		return nil
	}

	insert := sq.Insert("properties").
		Columns("`key`", "`value`").
		Values(key, string(jsonValue))

	_, err = insert.RunWith(s.db).ExecContext(ctx)
	return err
}
