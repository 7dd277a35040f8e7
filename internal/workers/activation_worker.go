package workers

import (
	"context"
	"time"

	"github.com/anonymous231985/room-for-rent/internal/core/promotion"
	promotionPort "github.com/anonymous231985/room-for-rent/internal/ports/promotion"
	"go.uber.org/zap"
)

// ActivationWorker drains the durable payment confirmation queue: PENDING
// payments whose settle time has passed. It runs on its own context, so
// request cancellation never cancels a scheduled confirmation, and because
// the queue lives in the store a process restart resumes in-flight
// confirmations instead of dropping them.
type ActivationWorker struct {
	PaymentRepo promotionPort.PaymentRepository
	BatchSize   int
	Interval    time.Duration
	Logger      *zap.Logger
}

func NewActivationWorker(
	paymentRepo promotionPort.PaymentRepository,
	batchSize int,
	interval time.Duration,
	logger *zap.Logger,
) *ActivationWorker {
	return &ActivationWorker{
		PaymentRepo: paymentRepo,
		BatchSize:   batchSize,
		Interval:    interval,
		Logger:      logger,
	}
}

// Run polls until ctx is cancelled.
func (w *ActivationWorker) Run(ctx context.Context) {
	w.Logger.Info("activation worker started")
	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("activation worker stopped")
			return
		default:
			w.drain(ctx)
			time.Sleep(w.Interval)
		}
	}
}

func (w *ActivationWorker) drain(ctx context.Context) {
	due, err := w.PaymentRepo.FindDuePending(ctx, time.Now(), w.BatchSize)
	if err != nil {
		w.Logger.Error("error fetching due payments", zap.Error(err))
		return
	}

	for _, p := range due {
		w.process(ctx, p)
	}
}

// process confirms one payment. A payment that cannot be activated (missing
// user or package) stays PENDING; it will be seen again on a later poll and
// logged until the data is repaired.
func (w *ActivationWorker) process(ctx context.Context, p *promotion.Payment) {
	activated, err := w.PaymentRepo.Activate(ctx, p.ID.String())
	if err != nil {
		w.Logger.Error("payment confirmation failed",
			zap.String("paymentID", p.ID.String()),
			zap.String("userID", p.UserID.String()),
			zap.Error(err))
		return
	}
	if activated {
		w.Logger.Info("payment confirmed",
			zap.String("paymentID", p.ID.String()),
			zap.String("userID", p.UserID.String()))
	}
}
