package jobs

import (
	"context"
	"time"

	"mowerworks-backend/internal/logger"
)

// SendWeeklyRevenueReport emails the owner a revenue summary for the week
// that ended on the most recent Monday.
func (jr *JobRunner) SendWeeklyRevenueReport() {
	jr.runWithRecovery("SendWeeklyRevenueReport", func() {
		ctx := context.Background()

		owner := jr.config.Email.OwnerEmail
		if owner == "" {
			logger.Warn("No owner email configured, skipping weekly revenue report")
			return
		}

		// Walk back to the most recent Monday, then report the seven days
		// before it.
		end := time.Now()
		for end.Weekday() != time.Monday {
			end = end.AddDate(0, 0, -1)
		}
		start := end.AddDate(0, 0, -7)

		from := start.Format("2006-01-02")
		to := end.Format("2006-01-02")

		summary, err := jr.services.Report.RevenueSummary(ctx, from, to)
		if err != nil {
			logger.Error("Failed to compute weekly revenue", "from", from, "to", to, "error", err)
			return
		}

		if err := jr.services.Email.SendWeeklyRevenueReport(ctx, owner, summary); err != nil {
			logger.Error("Failed to send weekly revenue report", "error", err)
			return
		}
		logger.Info("Sent weekly revenue report", "from", from, "to", to, "jobs", summary.JobCount)
	})
}
