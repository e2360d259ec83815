package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// PendingRequestsDigestJob periodically logs the size and age of the seller
// onboarding backlog so operators notice applications stuck without a
// decision. Runs every 15 minutes.
type PendingRequestsDigestJob struct {
	handler  queries.GetPendingSellerRequestsQueryHandler
	systemID kernel.UUID
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPendingRequestsDigestJob creates a new job for the backlog digest.
// Uses GetPendingSellerRequestsQueryHandler under a system admin identity.
func NewPendingRequestsDigestJob(
	handler queries.GetPendingSellerRequestsQueryHandler,
	logger *slog.Logger,
) *PendingRequestsDigestJob {
	return &PendingRequestsDigestJob{
		handler:  handler,
		systemID: kernel.NewUUID(),
		cron:     cron.New(),
		logger:   logger.With("component", "pending_requests_digest_job"),
	}
}

// Start begins the digest job to run every 15 minutes.
func (j *PendingRequestsDigestJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * *", func() {
		ctx := context.Background()

		systemActor, actorErr := actor.NewActor(j.systemID, actor.RoleAdmin)
		if actorErr != nil {
			j.logger.ErrorContext(ctx, "Pending requests digest job failed", "error", actorErr)
			return
		}

		backlog, err := j.handler.Handle(ctx, queries.NewGetPendingSellerRequestsQuery(systemActor))
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending requests digest job failed", "error", err)
			return
		}

		if len(backlog) == 0 {
			return
		}

		oldest := backlog[len(backlog)-1]
		j.logger.InfoContext(ctx, "Seller requests awaiting review",
			"count", len(backlog),
			"oldestRequestID", oldest.ID.String(),
			"oldestSubmittedAt", oldest.CreatedAt,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending requests digest job started (running every 15 minutes)")
	return nil
}

// Stop stops the digest job.
func (j *PendingRequestsDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending requests digest job stopped")
}
