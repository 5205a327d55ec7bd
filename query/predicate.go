package query

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Predicate is the compiled form of a filter: an immutable list of conditions
// plus the joins and scope switches needed to evaluate them. Conditions are
// collected first and rendered to SQL exactly once, so there is no
// order-dependent builder mutation between construction and execution.
type Predicate struct {
	Conds []sq.Sqlizer
	Joins []string

	// WithDeleted disables the store's default soft-delete scope. Conditions
	// on deleted_at, if any, are part of Conds.
	WithDeleted bool

	// Distinct is set when a join can multiply asset rows (e.g. faces).
	Distinct bool

	// Relation loading requested by the caller.
	WithExif    bool
	WithPeople  bool
	WithStacked bool

	Order string // "ASC" or "DESC"; empty means the operation's default
}

// ToSql renders the conjunction of all conditions using '?' placeholders.
// A predicate with no conditions renders to an empty string.
func (p Predicate) ToSql() (string, []interface{}, error) {
	if len(p.Conds) == 0 {
		return "", nil, nil
	}
	sqlStr, args, err := sq.And(p.Conds).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to render predicate: %w", err)
	}
	return sqlStr, args, nil
}

// notEmpty matches a path column that is present: NOT NULL and not ''.
// The catalog treats NULL and '' as equally "missing" for every path column.
func notEmpty(column string) sq.Sqlizer {
	return sq.And{sq.NotEq{column: nil}, sq.NotEq{column: ""}}
}

// emptyOrNull is the complement of notEmpty.
func emptyOrNull(column string) sq.Sqlizer {
	return sq.Or{sq.Eq{column: nil}, sq.Eq{column: ""}}
}
