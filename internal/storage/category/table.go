package category

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
	tableName            = "categories"
	nameTypeConstraint   = "categories_name_type_key"
	categoryFKConstraint = "transactions_category_id_fkey"
)

var columns = []any{"id", "name", "type", "is_active", "created_at"}

// Table provides access to the categories table through any bob executor,
// so the same code serves the connection pool and an open transaction.
type Table struct {
	exec bob.Executor
}

// Ensure Table implements ICategoryTable at compile time.
var _ ICategoryTable = (*Table)(nil)

// NewTable creates a Table bound to the given executor.
func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// FindByID retrieves a category by primary key.
func (t *Table) FindByID(ctx context.Context, id int64) (*Category, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return t.one(ctx, q)
}

// FindByNameAndType retrieves the category holding the given (name, type) pair.
func (t *Table) FindByNameAndType(ctx context.Context, name string, categoryType Type) (*Category, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
		sm.Where(psql.Quote("type").EQ(psql.Arg(categoryType))),
	)
	return t.one(ctx, q)
}

// ExistsByNameAndType reports whether a category with the given (name, type) pair exists.
func (t *Table) ExistsByNameAndType(ctx context.Context, name string, categoryType Type) (bool, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From(tableName),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
		sm.Where(psql.Quote("type").EQ(psql.Arg(categoryType))),
	)
	count, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the total number of categories, active or not.
func (t *Table) Count(ctx context.Context) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From(tableName),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}

// List returns categories matching the filter ordered by id. Nil filter returns all.
func (t *Table) List(ctx context.Context, filter *CategoryFilter) ([]*Category, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(tableName),
	}
	if filter != nil {
		if filter.Type != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("type").EQ(psql.Arg(*filter.Type))))
		}
		if filter.ActiveOnly {
			queryMods = append(queryMods, sm.Where(psql.Quote("is_active").EQ(psql.Arg(true))))
		}
	}
	queryMods = append(queryMods, sm.OrderBy(psql.Quote("id")).Asc())

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Category]())
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Insert creates a new category and returns the stored row.
func (t *Table) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	q := psql.Insert(
		im.Into(tableName, "name", "type", "is_active"),
		im.Values(psql.Arg(create.Name, create.Type, create.IsActive)),
		im.Returning(columns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Category]())
	if err != nil {
		if pgerr.IsUniqueViolation(err, nameTypeConstraint) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return row, nil
}

// Update changes the set fields of a category and returns the stored row.
func (t *Table) Update(ctx context.Context, id int64, update *CategoryUpdate) (*Category, error) {
	var setMods []bob.Mod[*dialect.UpdateQuery]
	if name, ok := update.Name.Get(); ok {
		setMods = append(setMods, um.SetCol("name").ToArg(name))
	}
	if isActive, ok := update.IsActive.Get(); ok {
		setMods = append(setMods, um.SetCol("is_active").ToArg(isActive))
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
		if pgerr.IsUniqueViolation(err, nameTypeConstraint) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return row, nil
}

// Delete removes a category permanently.
func (t *Table) Delete(ctx context.Context, id int64) (bool, error) {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Returning("id"),
	)
	ids, err := bob.All(ctx, t.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		if pgerr.IsForeignKeyViolation(err, categoryFKConstraint) {
			return false, ErrReferenced
		}
		return false, err
	}
	return len(ids) > 0, nil
}

func (t *Table) one(ctx context.Context, q bob.Query) (*Category, error) {
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Category]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}
