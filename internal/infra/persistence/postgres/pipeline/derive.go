package pipeline

import "github.com/google/uuid"

// Field is a computed column. Aliases are snake_case so they map onto row
// struct fields with GORM's default naming.
type Field struct {
	alias string
	sql   string
	args  []any
}

// Expr derives alias from an arbitrary expression.
func Expr(alias, sql string, args ...any) Field {
	return Field{alias: alias, sql: sql, args: args}
}

// Count derives the number of rows of from matching where.
func Count(alias, from, where string, args ...any) Field {
	return Expr(alias, "(SELECT COUNT(*) FROM "+from+" WHERE "+where+")", args...)
}

// Sum derives the sum of expr over the rows of from matching where, 0 when none match.
func Sum(alias, expr, from, where string, args ...any) Field {
	return Expr(alias, "(SELECT CAST(COALESCE(SUM("+expr+"), 0) AS BIGINT) FROM "+from+" WHERE "+where+")", args...)
}

// ViewerFlag derives whether a row of from matches where for the viewer.
// The viewer binds the first placeholder of where, args the rest.
// Without a viewer the flag is constant false.
func ViewerFlag(alias string, viewer *uuid.UUID, from, where string, args ...any) Field {
	if viewer == nil {
		return Expr(alias, "FALSE")
	}

	vars := append([]any{*viewer}, args...)

	return Expr(alias, "EXISTS (SELECT 1 FROM "+from+" WHERE "+where+")", vars...)
}
