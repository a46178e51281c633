package jobs

import (
	"context"
	"time"

	"mowerworks-backend/internal/logger"
)

// MarkOverduePickups moves jobs that finished yesterday or earlier but were
// never flagged for pickup from COMPLETED to AWAITING_PICKUP, and emails the
// customer that the machine is ready.
func (jr *JobRunner) MarkOverduePickups() {
	jr.runWithRecovery("MarkOverduePickups", func() {
		ctx := context.Background()

		query := `
			UPDATE jobs
			SET status = 'AWAITING_PICKUP',
			    updated_on = NOW()
			WHERE status = 'COMPLETED'
			  AND completed_on < $1
			RETURNING id, reference, customer_id, balance_due
		`

		cutoff := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		rows, err := jr.db.QueryContext(ctx, query, cutoff)
		if err != nil {
			logger.Error("Failed to mark overdue pickups", "error", err)
			return
		}
		defer rows.Close()

		type readyJob struct {
			ID         int32
			Reference  string
			CustomerID int32
			BalanceDue string
		}
		var ready []readyJob
		for rows.Next() {
			var j readyJob
			if err := rows.Scan(&j.ID, &j.Reference, &j.CustomerID, &j.BalanceDue); err != nil {
				logger.Error("Failed to scan overdue pickup", "error", err)
				continue
			}
			ready = append(ready, j)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue pickups", "error", err)
			return
		}

		logger.Info("Marked jobs awaiting pickup", "count", len(ready))

		for _, j := range ready {
			job, err := jr.store.JobRepository.GetByID(ctx, j.ID)
			if err != nil {
				logger.Error("Failed to load job for pickup notice", "job", j.Reference, "error", err)
				continue
			}
			customer, err := jr.store.CustomerRepository.GetByID(ctx, j.CustomerID)
			if err != nil || customer.Email == "" {
				continue
			}
			if err := jr.services.Email.SendPickupReady(ctx, customer.Email, customer.Name, job.Reference, job.BalanceDue); err != nil {
				logger.Error("Failed to send pickup ready email", "job", job.Reference, "error", err)
			}
		}
	})
}

// SendPickupReminders emails customers whose machines have been waiting for
// pickup longer than the configured number of days.
func (jr *JobRunner) SendPickupReminders() {
	jr.runWithRecovery("SendPickupReminders", func() {
		ctx := context.Background()

		days := jr.config.Shop.OverduePickupDays
		cutoff := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

		waiting, err := jr.store.JobRepository.ListAwaitingPickupSince(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list jobs awaiting pickup", "error", err)
			return
		}

		sent := 0
		for _, job := range waiting {
			customer, err := jr.store.CustomerRepository.GetByID(ctx, job.CustomerID)
			if err != nil || customer.Email == "" {
				continue
			}

			daysWaiting := days
			if job.CompletedOn != nil {
				if completed, err := time.Parse(time.RFC3339, *job.CompletedOn); err == nil {
					daysWaiting = int(time.Since(completed).Hours() / 24)
				}
			}

			if err := jr.services.Email.SendPickupReminder(ctx, customer.Email, customer.Name, job.Reference, daysWaiting); err != nil {
				logger.Error("Failed to send pickup reminder", "job", job.Reference, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent pickup reminders", "count", sent, "waiting", len(waiting))
	})
}
