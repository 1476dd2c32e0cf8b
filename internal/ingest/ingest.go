package ingest

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Job describes one upload: who owns the rows, which business they belong
// to, and which dataset schema applies. It lives for a single request.
type Job struct {
	OwnerID      uuid.UUID
	BusinessName string
	Dataset      Dataset

	// AtomicBatch runs the whole import inside one store transaction. The
	// default is off: each accepted row commits on its own and a partially
	// consumed file leaves a partially populated table. That matches the
	// system's historical row-by-row behavior.
	AtomicBatch bool
}

func (j Job) validate() error {
	if j.OwnerID == uuid.Nil || j.BusinessName == "" {
		return ErrMissingTenantContext
	}
	return nil
}

// Store persists one validated record at a time.
type Store interface {
	Append(ctx context.Context, record any) error
	Transaction(ctx context.Context, fn func(Store) error) error
}

// maxRejectionSamples bounds the per-import diagnostics kept in memory.
const maxRejectionSamples = 10

// Rejection records why one row was dropped.
type Rejection struct {
	Row    int
	Reason string
}

// Result summarizes one import. StoreFailures counts the subset of
// Rejected rows that validated fine but failed at the store.
type Result struct {
	Accepted      int
	Rejected      int
	StoreFailures int
	Samples       []Rejection
}

func (r *Result) sample(row int, reason string) {
	if len(r.Samples) < maxRejectionSamples {
		r.Samples = append(r.Samples, Rejection{Row: row, Reason: reason})
	}
}

// Run drives one import: pull records from the reader, transform each one,
// append accepted rows to the store. Rejected rows are counted and skipped;
// a store failure on a row is likewise counted and the import continues.
// Only job-level problems return an error: missing tenant context, a
// terminal decode failure, or context cancellation. Rows committed before
// such an error stay committed unless the job is atomic.
func Run(ctx context.Context, job Job, reader RecordReader, tr Transformer, store Store, logger *zap.Logger) (Result, error) {
	if err := job.validate(); err != nil {
		return Result{}, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var res Result
	if job.AtomicBatch {
		err := store.Transaction(ctx, func(st Store) error {
			return run(ctx, job, reader, tr, st, logger, &res, true)
		})
		if err != nil {
			return Result{}, err
		}
		return res, nil
	}

	err := run(ctx, job, reader, tr, store, logger, &res, false)
	return res, err
}

func run(ctx context.Context, job Job, reader RecordReader, tr Transformer, store Store, logger *zap.Logger, res *Result, atomic bool) error {
	for row := 1; ; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		rec, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		record, err := tr.Transform(rec)
		if err != nil {
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				return err
			}
			res.Rejected++
			res.sample(row, rowErr.Reason)
			logger.Warn("row rejected",
				zap.String("dataset", string(job.Dataset)),
				zap.Int("row", row),
				zap.String("reason", rowErr.Reason))
			continue
		}

		if err := store.Append(ctx, record); err != nil {
			if atomic {
				return err
			}
			res.Rejected++
			res.StoreFailures++
			res.sample(row, err.Error())
			logger.Warn("row insert failed",
				zap.String("dataset", string(job.Dataset)),
				zap.Int("row", row),
				zap.Error(err))
			continue
		}
		res.Accepted++
	}
}
