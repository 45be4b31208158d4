package transaction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/expense-tracker/internal/storage/pgerr"
)

const (
	tableName            = "transactions"
	categoryFKConstraint = "transactions_category_id_fkey"
)

var columns = []any{
	"id", "name", "amount", "description", "type",
	"category_id", "transaction_date", "created_at",
}

var _ ITransactionTable = (*Table)(nil)

type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// FindByID retrieves a transaction by primary key.
func (t *Table) FindByID(ctx context.Context, id int64) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return t.one(ctx, q)
}

// List returns transactions matching the filter, newest transaction date first. Nil filter returns all.
func (t *Table) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(tableName),
	}
	if filter != nil {
		if filter.Type != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("type").EQ(psql.Arg(*filter.Type))))
		}
		if filter.CategoryID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("transaction_date")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByCategory returns how many transactions reference the category.
func (t *Table) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From(tableName),
		sm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}

// Insert creates a new transaction and returns the stored row.
func (t *Table) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	cols := []string{"name", "amount", "description", "type", "category_id"}
	vals := []any{create.Name, create.Amount, create.Description, create.Type, create.CategoryID}
	if !create.TransactionDate.IsZero() {
		cols = append(cols, "transaction_date")
		vals = append(vals, create.TransactionDate)
	}

	q := psql.Insert(
		im.Into(tableName, cols...),
		im.Values(psql.Arg(vals...)),
		im.Returning(columns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
	if err != nil {
		if pgerr.IsForeignKeyViolation(err, categoryFKConstraint) {
			return nil, ErrCategoryMissing
		}
		return nil, err
	}
	return row, nil
}

// Update changes the set fields of a transaction and returns the stored row.
func (t *Table) Update(ctx context.Context, id int64, update *TransactionUpdate) (*Transaction, error) {
	var setMods []bob.Mod[*dialect.UpdateQuery]
	if v, ok := update.Name.Get(); ok {
		setMods = append(setMods, um.SetCol("name").ToArg(v))
	}
	if v, ok := update.Amount.Get(); ok {
		setMods = append(setMods, um.SetCol("amount").ToArg(v))
	}
	if v, ok := update.Description.Get(); ok {
		setMods = append(setMods, um.SetCol("description").ToArg(v))
	}
	if v, ok := update.Type.Get(); ok {
		setMods = append(setMods, um.SetCol("type").ToArg(v))
	}
	if v, ok := update.CategoryID.Get(); ok {
		setMods = append(setMods, um.SetCol("category_id").ToArg(v))
	}
	if v, ok := update.TransactionDate.Get(); ok {
		setMods = append(setMods, um.SetCol("transaction_date").ToArg(v))
	}
	if len(setMods) == 0 {
		return t.FindByID(ctx, id)
	}

	queryMods := append([]bob.Mod[*dialect.UpdateQuery]{um.Table(tableName)}, setMods...)
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(columns...),
	)
	row, err := t.one(ctx, psql.Update(queryMods...))
	if err != nil {
		if pgerr.IsForeignKeyViolation(err, categoryFKConstraint) {
			return nil, ErrCategoryMissing
		}
		return nil, err
	}
	return row, nil
}

// Delete removes a transaction permanently.
func (t *Table) Delete(ctx context.Context, id int64) (bool, error) {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Returning("id"),
	)
	ids, err := bob.All(ctx, t.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

func (t *Table) one(ctx context.Context, q bob.Query) (*Transaction, error) {
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}
