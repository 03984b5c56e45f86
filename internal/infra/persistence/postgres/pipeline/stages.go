package pipeline

import (
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// TextMatch keeps rows where any of columns contains term, ignoring case.
// An empty term matches everything.
func TextMatch(term string, columns ...string) Stage {
	term = strings.TrimSpace(term)

	return func(tx *gorm.DB) *gorm.DB {
		if term == "" || len(columns) == 0 {
			return tx
		}

		pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		conds := make([]string, len(columns))
		args := make([]any, len(columns))
		for i, c := range columns {
			conds[i] = "LOWER(" + c + `) LIKE ? ESCAPE '\'`
			args[i] = pattern
		}

		return tx.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

// Eq keeps rows where column equals value.
func Eq(column string, value any) Stage {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(column+" = ?", value)
	}
}

// Where applies a raw condition.
func Where(cond string, args ...any) Stage {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(cond, args...)
	}
}

// When applies stage only if cond holds.
func When(cond bool, stage Stage) Stage {
	return func(tx *gorm.DB) *gorm.DB {
		if !cond {
			return tx
		}

		return stage(tx)
	}
}

// InnerJoin joins table on the given condition.
func InnerJoin(table, on string, args ...any) Stage {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Joins("JOIN "+table+" ON "+on, args...)
	}
}

// LeftJoin left-joins table on the given condition.
func LeftJoin(table, on string, args ...any) Stage {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Joins("LEFT JOIN "+table+" ON "+on, args...)
	}
}
