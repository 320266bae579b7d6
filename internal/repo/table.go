package repo

import (
	"context"

	"github.com/angelmondragon/pantry-backend/pkg/db"
	"github.com/angelmondragon/pantry-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/pantry-backend/pkg/errors"
	"gorm.io/gorm"
)

// Table is single-table access keyed by an integer id. T must be a gorm
// model with an "id" primary key.
type Table[T any] struct {
	Base
	preloads []string
}

// NewTable binds a Table to conn. Preloads are applied to every read.
func NewTable[T any](conn *gorm.DB, preloads ...string) *Table[T] {
	return &Table[T]{Base: NewBase(conn), preloads: preloads}
}

// WithTx returns a copy bound to the provided transaction.
func (t *Table[T]) WithTx(tx *gorm.DB) *Table[T] {
	return &Table[T]{Base: NewBase(tx), preloads: t.preloads}
}

func (t *Table[T]) read(ctx context.Context) *gorm.DB {
	q := t.DB(ctx)
	for _, p := range t.preloads {
		q = q.Preload(p)
	}
	return q
}

// Create inserts rec and fills its generated id.
func (t *Table[T]) Create(ctx context.Context, rec *T) error {
	return t.DB(ctx).Create(rec).Error
}

// FindByID returns gorm.ErrRecordNotFound when the row is missing.
func (t *Table[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var rec T
	if err := t.read(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns every row ordered by id. A non-empty filter is applied as
// column equality conditions.
func (t *Table[T]) List(ctx context.Context, filter map[string]any) ([]T, error) {
	q := t.read(ctx)
	if len(filter) > 0 {
		q = q.Where(filter)
	}
	var rows []T
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// UpdateColumns writes only the given columns. An empty map is a no-op.
func (t *Table[T]) UpdateColumns(ctx context.Context, id uint, columns map[string]any) error {
	if len(columns) == 0 {
		return nil
	}
	res := t.DB(ctx).Model(new(T)).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the row, returning gorm.ErrRecordNotFound when nothing matched.
func (t *Table[T]) Delete(ctx context.Context, id uint) error {
	res := t.DB(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists reports whether a row with id is present.
func (t *Table[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := t.DB(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// EnsureProduct fails with NotFound when productID does not reference a product.
func EnsureProduct(ctx context.Context, conn *gorm.DB, productID uint) error {
	ok, err := NewTable[models.Product](conn).Exists(ctx, productID)
	if err != nil {
		return db.Classify(err, db.MsgProductNotFound)
	}
	if !ok {
		return pkgerrors.NotFound(db.MsgProductNotFound)
	}
	return nil
}
