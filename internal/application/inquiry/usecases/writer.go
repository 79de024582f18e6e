package usecases

import (
	"context"
	stderrors "errors"

	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	"github.com/instamakaan/instamakaan/internal/domain/shared/events"
	"github.com/instamakaan/instamakaan/internal/shared/db"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

// maxConflictRetries bounds how often a write that lost the version race is
// replayed before the conflict is returned.
const maxConflictRetries = 3

// guard checks preconditions inside the write transaction. ctx carries that
// transaction, so other rows read through it are locked for the same span.
type guard func(ctx context.Context, inq *inquiry.Inquiry) error

// mutation changes a locked inquiry and returns the log entry to store with
// it. A nil entry means nothing changed and nothing is written.
type mutation func(inq *inquiry.Inquiry) (*inquiry.LogEntry, error)

// inquiryWriter serializes read-modify-write cycles per inquiry: row lock,
// version-guarded update and log append share one transaction. Events are
// dispatched only after commit.
type inquiryWriter struct {
	repo       inquiry.Repository
	txMgr      *db.TransactionManager
	dispatcher events.EventDispatcher
	logger     logger.Interface
}

func newInquiryWriter(
	repo inquiry.Repository,
	txMgr *db.TransactionManager,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *inquiryWriter {
	return &inquiryWriter{repo: repo, txMgr: txMgr, dispatcher: dispatcher, logger: logger}
}

// apply loads the inquiry, runs check then mutate on it and persists the
// result. check may be nil.
func (w *inquiryWriter) apply(
	ctx context.Context,
	inquiryID string,
	check guard,
	mutate mutation,
) (*inquiry.Inquiry, *inquiry.LogEntry, error) {
	var (
		current *inquiry.Inquiry
		entry   *inquiry.LogEntry
	)

	for attempt := 0; ; attempt++ {
		err := w.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			inq, err := w.repo.GetByIDForUpdate(txCtx, inquiryID)
			if err != nil {
				return err
			}
			if check != nil {
				if err := check(txCtx, inq); err != nil {
					return err
				}
			}

			e, err := mutate(inq)
			if err != nil {
				return err
			}
			current, entry = inq, e
			if e == nil {
				return nil
			}

			if err := w.repo.Update(txCtx, inq); err != nil {
				return err
			}
			return w.repo.AppendLog(txCtx, e)
		})
		if err == nil {
			break
		}
		if !stderrors.Is(err, inquiry.ErrConcurrentModification) || attempt >= maxConflictRetries || ctx.Err() != nil {
			return nil, nil, err
		}
		w.logger.Warnw("inquiry write lost version race, retrying",
			"inquiry_id", inquiryID,
			"attempt", attempt+1)
	}

	w.publish(current)
	return current, entry, nil
}

func (w *inquiryWriter) publish(inq *inquiry.Inquiry) {
	pending := inq.PullEvents()
	if w.dispatcher == nil || len(pending) == 0 {
		return
	}
	if err := w.dispatcher.PublishAll(pending); err != nil {
		w.logger.Warnw("failed to dispatch inquiry events", "inquiry_id", inq.ID(), "error", err)
	}
}

// reload re-reads the committed row so callers see the stored state. The
// in-memory aggregate is returned if the read fails.
func (w *inquiryWriter) reload(ctx context.Context, inq *inquiry.Inquiry) *inquiry.Inquiry {
	fresh, err := w.repo.GetByID(ctx, inq.ID())
	if err != nil {
		w.logger.Warnw("failed to reload inquiry after write", "inquiry_id", inq.ID(), "error", err)
		return inq
	}
	return fresh
}
