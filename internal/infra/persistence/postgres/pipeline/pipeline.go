// Package pipeline composes read queries out of fixed stages: filter, join,
// derive, sort, paginate and project. Each view builds its own pipeline by
// hand; there is no planner.
package pipeline

import (
	"context"
	"strings"

	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/domain/view"
	"github.com/Abhithakur7080/your-video/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNoRows is returned by First when the pipeline matches nothing.
	ErrNoRows = errors.New("pipeline: no rows")
	// ErrCredentialColumn is returned when a projection or derived field touches a credential column.
	ErrCredentialColumn = errors.New("pipeline: credential columns cannot be projected")
)

// credentialColumns never leave the store through a read model.
var credentialColumns = []string{"password_hash", "refresh_token_hash"}

// Stage mutates a query. Filters and joins are both stages; the pipeline
// applies them in the order they were added.
type Stage func(tx *gorm.DB) *gorm.DB

// SortFields maps public sort names to whitelisted columns.
type SortFields map[string]string

// Pipeline is a read query under construction. Build one with From.
type Pipeline struct {
	db      *gorm.DB
	table   string
	key     string
	filters []Stage
	joins   []Stage
	derived []Field
	columns []string
	orders  []string
	err     error
}

// From starts a pipeline over table ("videos AS v"). key is the column used
// as the stable tiebreaker when sorting.
func From(ctx context.Context, db *gorm.DB, table, key string) *Pipeline {
	return &Pipeline{db: db.WithContext(ctx), table: table, key: key}
}

// Filter appends filter stages.
func (p *Pipeline) Filter(stages ...Stage) *Pipeline {
	p.filters = append(p.filters, stages...)

	return p
}

// Join appends join stages.
func (p *Pipeline) Join(stages ...Stage) *Pipeline {
	p.joins = append(p.joins, stages...)

	return p
}

// Derive appends computed fields.
func (p *Pipeline) Derive(fields ...Field) *Pipeline {
	for _, f := range fields {
		if touchesCredentials(f.sql) {
			p.err = ErrCredentialColumn
		}
	}
	p.derived = append(p.derived, fields...)

	return p
}

// Project sets the plain columns of the result ("u.username AS owner_username").
func (p *Pipeline) Project(columns ...string) *Pipeline {
	for _, c := range columns {
		if touchesCredentials(c) {
			p.err = ErrCredentialColumn
		}
	}
	p.columns = append(p.columns, columns...)

	return p
}

// Sort orders by the whitelisted column behind s.Field, or by fallback when
// the field is empty. An unknown field fails with a validation error when
// the pipeline runs. The key column is always appended as a tiebreaker.
func (p *Pipeline) Sort(s view.Sort, allowed SortFields, fallback string) *Pipeline {
	column := fallback
	if s.Field != "" {
		c, ok := allowed[s.Field]
		if !ok {
			p.err = domainerrors.Validation("unsupported sort field", s.Field)

			return p
		}
		column = c
	}

	dir := " ASC"
	if s.Desc {
		dir = " DESC"
	}
	p.orders = append(p.orders, column+dir)
	if column != p.key {
		p.orders = append(p.orders, p.key+dir)
	}

	return p
}

// scoped rebuilds the filtered and joined query from scratch, so the count
// and the page query never share a statement.
func (p *Pipeline) scoped() *gorm.DB {
	tx := p.db.Table(p.table)
	for _, j := range p.joins {
		tx = j(tx)
	}
	for _, f := range p.filters {
		tx = f(tx)
	}

	return tx
}

func (p *Pipeline) selectClause() clause.Select {
	parts := make([]string, 0, len(p.columns)+len(p.derived))
	parts = append(parts, p.columns...)

	var vars []any
	for _, f := range p.derived {
		parts = append(parts, f.sql+" AS "+f.alias)
		vars = append(vars, f.args...)
	}

	return clause.Select{Expression: clause.Expr{SQL: strings.Join(parts, ", "), Vars: vars}}
}

func (p *Pipeline) query() *gorm.DB {
	tx := p.scoped().Clauses(p.selectClause())
	for _, o := range p.orders {
		tx = tx.Order(o)
	}

	return tx
}

func (p *Pipeline) ready() error {
	if p.err != nil {
		return p.err
	}
	if len(p.columns) == 0 && len(p.derived) == 0 {
		return errors.New("pipeline: empty projection")
	}

	return nil
}

// Page counts the matching rows, then fetches the requested page into T.
func Page[T any](p *Pipeline, req view.PageRequest) (*view.Page[T], error) {
	if err := p.ready(); err != nil {
		return nil, err
	}

	var total int64
	if err := p.scoped().Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count rows")
	}

	docs := make([]T, 0, req.Limit)
	if total > int64(req.Offset()) {
		if err := p.query().Offset(req.Offset()).Limit(req.Limit).Scan(&docs).Error; err != nil {
			return nil, errors.Wrap(err, "failed to fetch page")
		}
	}

	return view.NewPage(docs, total, req), nil
}

// First returns the first row, or ErrNoRows.
func First[T any](p *Pipeline) (*T, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}

	var rows []T
	if err := p.query().Limit(1).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch row")
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	return &rows[0], nil
}

// All returns every matching row.
func All[T any](p *Pipeline) ([]T, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}

	rows := []T{}
	if err := p.query().Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch rows")
	}

	return rows, nil
}

func touchesCredentials(sql string) bool {
	lower := strings.ToLower(sql)
	for _, c := range credentialColumns {
		if strings.Contains(lower, c) {
			return true
		}
	}

	return false
}
