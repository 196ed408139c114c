package repositories

import (
	"database/sql"
	"fmt"
	"strings"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// EntitySpec maps an entity type onto its table. One spec is declared per
// entity and handed to NewRepository; all column lists are fixed at
// declaration time, so every query below is static apart from the
// placeholder numbering.
type EntitySpec[E any, K comparable] struct {
	Table     string
	KeyColumn string

	// Columns is the select list, key column included; ScanRow must read
	// the same columns in the same order.
	Columns []string
	ScanRow func(rowScanner) (*E, error)

	InsertColumns []string
	InsertArgs    func(*E) []any

	// UpdateColumns excludes the key: the identity of a record never moves.
	UpdateColumns []string
	UpdateArgs    func(*E) []any

	Key func(*E) K

	// AssignKey is set for serial keys populated via RETURNING; nil for
	// natural keys the caller supplies (type codes).
	AssignKey func(*E, K)
}

// Repository implements the uniform per-entity contract: point lookups that
// report a miss as a nil record, offset/limit listing, create, load-patch-save
// update and load-then-delete removal. The store handle is injected, never
// ambient.
type Repository[E any, K comparable] struct {
	db   *sql.DB
	spec EntitySpec[E, K]
}

func NewRepository[E any, K comparable](db *sql.DB, spec EntitySpec[E, K]) *Repository[E, K] {
	return &Repository[E, K]{db: db, spec: spec}
}

func (r *Repository[E, K]) selectList() string {
	return strings.Join(r.spec.Columns, ", ")
}

func (r *Repository[E, K]) Get(id K) (*E, error) {
	return r.GetBy(r.spec.KeyColumn, id)
}

// GetBy looks a record up by a single column. The column name always comes
// from code, never from request input.
func (r *Repository[E, K]) GetBy(column string, value any) (*E, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, r.selectList(), r.spec.Table, column)
	e, err := r.spec.ScanRow(r.db.QueryRow(q, value))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s by %s: %w", r.spec.Table, column, err)
	}
	return e, nil
}

// List pages over the table in key order, so increasing the offset never
// revisits a record already returned at a lower one.
func (r *Repository[E, K]) List(limit, offset int) ([]*E, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s LIMIT $1 OFFSET $2`,
		r.selectList(), r.spec.Table, r.spec.KeyColumn)
	rows, err := r.db.Query(q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.spec.Table, err)
	}
	defer rows.Close()

	res := make([]*E, 0, limit)
	for rows.Next() {
		e, err := r.spec.ScanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", r.spec.Table, err)
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

func (r *Repository[E, K]) Create(e *E) error {
	placeholders := make([]string, len(r.spec.InsertColumns))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	q := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		r.spec.Table, strings.Join(r.spec.InsertColumns, ", "), strings.Join(placeholders, ", "))
	args := r.spec.InsertArgs(e)

	if r.spec.AssignKey == nil {
		if _, err := r.db.Exec(q, args...); err != nil {
			return fmt.Errorf("create %s: %w", r.spec.Table, err)
		}
		return nil
	}

	q += fmt.Sprintf(" RETURNING %s", r.spec.KeyColumn)
	var id K
	if err := r.db.QueryRow(q, args...).Scan(&id); err != nil {
		return fmt.Errorf("create %s: %w", r.spec.Table, err)
	}
	r.spec.AssignKey(e, id)
	return nil
}

// Save writes every updatable column of the record back to its row.
func (r *Repository[E, K]) Save(e *E) error {
	set := make([]string, len(r.spec.UpdateColumns))
	for i, col := range r.spec.UpdateColumns {
		set[i] = fmt.Sprintf("%s=$%d", col, i+1)
	}
	q := fmt.Sprintf(`UPDATE %s SET %s WHERE %s=$%d`,
		r.spec.Table, strings.Join(set, ", "), r.spec.KeyColumn, len(set)+1)
	args := append(r.spec.UpdateArgs(e), r.spec.Key(e))
	if _, err := r.db.Exec(q, args...); err != nil {
		return fmt.Errorf("update %s: %w", r.spec.Table, err)
	}
	return nil
}

// Update loads the record, lets apply mutate it in place and persists the
// result. A miss returns (nil, nil); the caller decides what a miss means.
// Load and save are two statements, not a transaction — the same accepted
// race the rest of the system lives with.
func (r *Repository[E, K]) Update(id K, apply func(*E)) (*E, error) {
	e, err := r.Get(id)
	if err != nil || e == nil {
		return nil, err
	}
	apply(e)
	if err := r.Save(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes the record and returns it as it existed before removal.
func (r *Repository[E, K]) Delete(id K) (*E, error) {
	e, err := r.Get(id)
	if err != nil || e == nil {
		return nil, err
	}
	q := fmt.Sprintf(`DELETE FROM %s WHERE %s=$1`, r.spec.Table, r.spec.KeyColumn)
	if _, err := r.db.Exec(q, id); err != nil {
		return nil, fmt.Errorf("delete %s: %w", r.spec.Table, err)
	}
	return e, nil
}
