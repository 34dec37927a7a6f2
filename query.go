package gocursor

import (
	"context"
	"fmt"
	"slices"

	"gorm.io/gorm"
)

// RawQuery is intended for API payloads. For proper code generation, inline it:
//
//	type MyFilter struct {
//	    Snapshot RawQuery `json:",inline"`
//	}
type RawQuery struct {
	// Limit - maximum number of records to load into the snapshot.
	Limit int `json:"limit"`
	// Sort - orderings in the form "alias asc|desc", resolved via ColumnMapping.
	Sort []string `json:"sort"`
}

// Decode converts RawQuery into *Query, normalizing Limit and resolving Sort.
func (r RawQuery) Decode(columnMapping ColumnMapping) (*Query, error) {
	orderings, err := ParseSort(r.Sort, columnMapping)
	if err != nil {
		return nil, fmt.Errorf("cannot decode query: %w", err)
	}

	return NewQuery().WithSort(orderings...).WithLimit(r.Limit), nil
}

// Query describes which rows Load puts into a cursor snapshot and in which
// order. The zero value is not usable: at least one ordering is required so
// that the snapshot order is deterministic.
type Query struct {
	limit int
	sort  Orderings
}

func NewQuery() *Query {
	return &Query{limit: DefaultLimit}
}

// WithUnlimited loads every matching row.
func (q *Query) WithUnlimited() *Query {
	if q == nil {
		q = NewQuery()
	}

	q.limit = NoLimit

	return q
}

// WithLimit sets the maximum number of loaded rows.
// If the limit is not NoLimit, NormalizeLimit will be applied.
func (q *Query) WithLimit(limit int) *Query {
	if q == nil {
		q = NewQuery()
	}

	if limit == NoLimit {
		return q.WithUnlimited()
	}
	q.limit = NormalizeLimit(limit)

	return q
}

// WithSubstitutedSort resets previous orderings and applies the provided ones.
func (q *Query) WithSubstitutedSort(orderBy ...OrderBy) *Query {
	if q == nil {
		q = NewQuery()
	}

	q.sort = nil

	return q.WithSort(orderBy...)
}

// WithSort appends orderings. A column that is already sorted on is moved to
// the end with its new direction.
func (q *Query) WithSort(orderBy ...OrderBy) *Query {
	if q == nil {
		q = NewQuery()
	}

	for _, o := range orderBy {
		q.sort = slices.DeleteFunc(q.sort, func(processed OrderBy) bool {
			return processed.Column == o.Column
		})
		q.sort = append(q.sort, o)
	}

	return q
}

// GetSort returns orderings that will be applied to the dataset.
func (q *Query) GetSort() Orderings {
	if q == nil {
		return nil
	}

	return q.sort
}

// GetLimit returns the stored limit. NoLimit means unbounded.
func (q *Query) GetLimit() int {
	if q == nil {
		return 0
	}

	return q.limit
}

// IsUnlimited returns true if the limit equals NoLimit.
func (q *Query) IsUnlimited() bool {
	return q != nil && q.limit == NoLimit
}

// Apply validates the query and applies ordering and limit to db.
func (q *Query) Apply(db *gorm.DB) (*gorm.DB, error) {
	if err := q.validate(); err != nil {
		return nil, fmt.Errorf("cannot apply query: %w", err)
	}

	db = q.sort.Apply(db)
	if !q.IsUnlimited() {
		db = db.Limit(q.limit)
	}

	return db, nil
}

func (q *Query) validate() error {
	if q == nil {
		return fmt.Errorf("query is nil")
	}

	if q.limit != NoLimit && q.limit <= 0 {
		return fmt.Errorf("invalid limit %d", q.limit)
	}

	return q.sort.validate()
}

// Load runs q against db and returns a cursor over the result set, positioned
// before the first row. db should already carry the model or table and any
// filters:
//
//	c, err := gocursor.Load[User](ctx, db.Model(&User{}).Where("age > ?", 18), q)
func Load[T any](ctx context.Context, db *gorm.DB, q *Query) (*Cursor[T], error) {
	tx, err := q.Apply(db.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("cannot load snapshot: %w", err)
	}

	var rows []T
	if err = tx.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("cannot load snapshot: %w", err)
	}

	return New(rows), nil
}

// LoadAt is Load followed by moving the cursor to the position recorded in
// token. See Cursor.Token.
func LoadAt[T any](ctx context.Context, db *gorm.DB, q *Query, token string) (*Cursor[T], error) {
	c, err := Load[T](ctx, db, q)
	if err != nil {
		return nil, err
	}

	return Resume(c.elements, token)
}
