package querybuilder

import (
	"fmt"
	"strings"
)

// UpdateData maps a column to its new value.
type UpdateData map[string]interface{}

// QueryBuilder assembles schema-qualified SQL with "?" bind vars. Callers
// rebind the query for their driver (sqlx.DB.Rebind).
type QueryBuilder interface {
	Select(cols ...string) QueryBuilder
	From(table string) QueryBuilder
	Into(table string) QueryBuilder
	Where(clause string, args ...interface{}) QueryBuilder
	And(clause string, args ...interface{}) QueryBuilder

	OrderBy(col string, asc bool) QueryBuilder
	Limit(limit int) QueryBuilder
	Offset(offset int) QueryBuilder

	Insert(cols ...string) QueryBuilder
	Values(values ...interface{}) QueryBuilder

	Update(table string, data UpdateData) QueryBuilder
	Delete(table string) QueryBuilder

	Build() (string, []interface{})
}

type queryBuilder struct {
	schema     string
	table      string
	cols       []string
	conditions []Condition
	values     [][]interface{}
	updateData UpdateData
	orderBy    []string
	limit      int
	offset     int
	isDelete   bool
}

func NewQueryBuilder(schema string) QueryBuilder {
	return &queryBuilder{
		schema: schema,
	}
}

func (q *queryBuilder) Select(cols ...string) QueryBuilder {
	q.cols = append(q.cols, cols...)
	return q
}

func (q *queryBuilder) From(table string) QueryBuilder {
	q.table = table
	return q
}

func (q *queryBuilder) Into(table string) QueryBuilder {
	q.table = table
	return q
}

func (q *queryBuilder) Where(clause string, args ...interface{}) QueryBuilder {
	return q.And(clause, args...)
}

func (q *queryBuilder) And(clause string, args ...interface{}) QueryBuilder {
	q.conditions = append(q.conditions, Condition{condType: CondTypeAnd, clause: clause, args: args})
	return q
}

func (q *queryBuilder) OrderBy(col string, asc bool) QueryBuilder {
	orderVector := "ASC"
	if !asc {
		orderVector = "DESC"
	}
	q.orderBy = append(q.orderBy, fmt.Sprintf("%s %s", col, orderVector))
	return q
}

func (q *queryBuilder) Limit(limit int) QueryBuilder {
	q.limit = limit
	return q
}

func (q *queryBuilder) Offset(offset int) QueryBuilder {
	q.offset = offset
	return q
}

func (q *queryBuilder) Insert(cols ...string) QueryBuilder {
	q.cols = cols
	return q
}

func (q *queryBuilder) Values(values ...interface{}) QueryBuilder {
	q.values = append(q.values, values)
	return q
}

func (q *queryBuilder) Update(table string, data UpdateData) QueryBuilder {
	q.table = table
	q.updateData = data
	return q
}

func (q *queryBuilder) Delete(table string) QueryBuilder {
	q.table = table
	q.isDelete = true
	return q
}

// Build returns an empty query when the builder state is inconsistent.
func (q *queryBuilder) Build() (string, []interface{}) {
	switch {
	case len(q.values) > 0:
		return q.buildInsert()
	case len(q.updateData) > 0:
		return q.buildUpdate()
	case q.isDelete:
		return q.buildDelete()
	default:
		return q.buildSelect()
	}
}

func (q *queryBuilder) qualified() string {
	if q.schema == "" {
		return q.table
	}
	return fmt.Sprintf("%s.%s", q.schema, q.table)
}

func (q *queryBuilder) where(query string, args []interface{}) (string, []interface{}) {
	if len(q.conditions) == 0 {
		return query, args
	}
	condition, condArgs := buildCondition(q.conditions)
	return query + " WHERE " + condition, append(args, condArgs...)
}

func (q *queryBuilder) buildSelect() (string, []interface{}) {
	if len(q.cols) == 0 || q.table == "" {
		return "", nil
	}
	query, args := q.where(fmt.Sprintf("SELECT %s FROM %s", strings.Join(q.cols, ", "), q.qualified()), nil)

	if len(q.orderBy) > 0 {
		query += " ORDER BY " + strings.Join(q.orderBy, ", ")
	}
	if q.limit > 0 {
		query += " LIMIT ?"
		args = append(args, q.limit)
	}
	if q.offset > 0 {
		query += " OFFSET ?"
		args = append(args, q.offset)
	}
	return query, args
}

func (q *queryBuilder) buildInsert() (string, []interface{}) {
	numOfParam := len(q.cols)
	if numOfParam == 0 || q.table == "" {
		return "", nil
	}

	valueTuples := make([]string, len(q.values))
	args := make([]interface{}, 0, numOfParam*len(q.values))
	marks := strings.TrimSuffix(strings.Repeat("?, ", numOfParam), ", ")
	for i, row := range q.values {
		if len(row) != numOfParam {
			return "", nil
		}
		args = append(args, row...)
		valueTuples[i] = "(" + marks + ")"
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s", q.qualified(), strings.Join(q.cols, ", "), strings.Join(valueTuples, ", "))
	return query, args
}

// buildUpdate sets columns in the order given to Insert, or sorted map order
// when no columns were named.
func (q *queryBuilder) buildUpdate() (string, []interface{}) {
	cols := q.cols
	if len(cols) == 0 {
		cols = sortedKeys(q.updateData)
	}

	setClause := make([]string, 0, len(cols))
	args := make([]interface{}, 0, len(cols))
	for _, col := range cols {
		val, ok := q.updateData[col]
		if !ok {
			return "", nil
		}
		setClause = append(setClause, fmt.Sprintf("%s = ?", col))
		args = append(args, val)
	}

	return q.where(fmt.Sprintf("UPDATE %s SET %s", q.qualified(), strings.Join(setClause, ", ")), args)
}

// buildDelete refuses to delete without a condition.
func (q *queryBuilder) buildDelete() (string, []interface{}) {
	if len(q.conditions) == 0 {
		return "", nil
	}
	return q.where(fmt.Sprintf("DELETE FROM %s", q.qualified()), nil)
}

func buildCondition(conditions []Condition) (string, []interface{}) {
	parts := make([]string, 0, len(conditions)*2)
	args := make([]interface{}, 0)

	for i, cond := range conditions {
		if i > 0 {
			parts = append(parts, cond.condType.ToString())
		}
		parts = append(parts, cond.clause)
		args = append(args, cond.args...)
	}

	return strings.Join(parts, " "), args
}
