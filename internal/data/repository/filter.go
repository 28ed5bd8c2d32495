package repository

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique constraint failure.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// ListFilter narrows a list query. Zero values mean "no filter".
type ListFilter struct {
	Search string
	Status string
	// Equals holds extra column = value filters. Keys must be trusted column names.
	Equals map[string]string
	Limit  int
	Offset int
}

// listSpec describes how one table is listed.
type listSpec struct {
	table         string
	columns       string
	searchColumns []string
	orderBy       string
}

// escapeLike makes s match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// where builds the WHERE clause shared by the page and count queries.
// Search is OR-combined across searchColumns, everything else is AND-ed.
func (f ListFilter) where(searchColumns []string) (string, []any) {
	var conds []string
	var args []any

	if f.Search != "" && len(searchColumns) > 0 {
		args = append(args, "%"+escapeLike(f.Search)+"%")
		n := len(args)
		ors := make([]string, len(searchColumns))
		for i, col := range searchColumns {
			ors[i] = fmt.Sprintf("%s ILIKE $%d", col, n)
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}

	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	keys := make([]string, 0, len(f.Equals))
	for col, val := range f.Equals {
		if val != "" {
			keys = append(keys, col)
		}
	}
	sort.Strings(keys)
	for _, col := range keys {
		args = append(args, f.Equals[col])
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func buildListQuery(spec listSpec, f ListFilter) (string, []any) {
	where, args := f.where(spec.searchColumns)

	var queryBuilder strings.Builder
	queryBuilder.WriteString("SELECT " + spec.columns + " FROM " + spec.table)
	queryBuilder.WriteString(where)
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", spec.orderBy, len(args)+1, len(args)+2))
	args = append(args, f.Limit, f.Offset)

	return queryBuilder.String(), args
}

func buildCountQuery(spec listSpec, f ListFilter) (string, []any) {
	where, args := f.where(spec.searchColumns)
	return "SELECT COUNT(*) FROM " + spec.table + where, args
}
