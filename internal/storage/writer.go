package storage

import (
	"context"

	"github.com/stephenafamo/bob"
)

// Tx is the commit/rollback half of a database transaction.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables bound to a single database transaction.
type Writer struct {
	tx Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:     tx,
		Reader: *NewReader(tx),
	}
}

// NewWriterWithReader builds a Writer from an arbitrary Tx and tables.
func NewWriterWithReader(tx Tx, reader Reader) *Writer {
	return &Writer{
		tx:     tx,
		Reader: reader,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
