package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobStatus represents the lifecycle of scheduled work.
type JobStatus string

const (
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

var JobStatuses = []JobStatus{JobStatusScheduled, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled}

type MilestoneStatus string

const (
	MilestoneStatusPending   MilestoneStatus = "pending"
	MilestoneStatusCompleted MilestoneStatus = "completed"
)

// Job is work scheduled for a lead, usually spawned by accepting an estimate.
// Milestones and expenses belong to the job aggregate and persist with it.
type Job struct {
	ID                string         `json:"id"`
	OrganizationID    string         `json:"organization_id"`
	LeadID            string         `json:"lead_id"`
	EstimateID        string         `json:"estimate_id,omitempty"`
	Title             string         `json:"title,omitempty"`
	StartAtUtc        time.Time      `json:"start_at_utc"`
	EstimatedEndAtUtc time.Time      `json:"estimated_end_at_utc"`
	Milestones        []JobMilestone `json:"milestones"`
	Expenses          []JobExpense   `json:"expenses"`

	Status         JobStatus  `json:"status"`
	StartedAtUtc   *time.Time `json:"started_at_utc,omitempty"`
	CompletedAtUtc *time.Time `json:"completed_at_utc,omitempty"`
	CancelledAtUtc *time.Time `json:"cancelled_at_utc,omitempty"`

	CreatedAtUtc time.Time `json:"created_at_utc"`
	UpdatedAtUtc time.Time `json:"updated_at_utc"`
	Version      int64     `json:"version"`
}

// JobMilestone is an ordered checkpoint within a job.
type JobMilestone struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Notes          string          `json:"notes,omitempty"`
	OccurredAtUtc  *time.Time      `json:"occurred_at_utc,omitempty"`
	SortOrder      int             `json:"sort_order"`
	Status         MilestoneStatus `json:"status"`
	CompletedAtUtc *time.Time      `json:"completed_at_utc,omitempty"`
}

// JobExpense is an append-only cost record against a job.
type JobExpense struct {
	ID           string          `json:"id"`
	Vendor       string          `json:"vendor"`
	Category     string          `json:"category,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	SpentAtUtc   time.Time       `json:"spent_at_utc"`
	ReceiptURL   string          `json:"receipt_url,omitempty"`
	CreatedAtUtc time.Time       `json:"created_at_utc"`
}

func (j *Job) IsTerminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusCancelled
}

// MilestoneIndex returns the position of the milestone with id, or -1.
func (j *Job) MilestoneIndex(id string) int {
	for i := range j.Milestones {
		if j.Milestones[i].ID == id {
			return i
		}
	}
	return -1
}

// ExpenseIndex returns the position of the expense with id, or -1.
func (j *Job) ExpenseIndex(id string) int {
	for i := range j.Expenses {
		if j.Expenses[i].ID == id {
			return i
		}
	}
	return -1
}

// TotalExpenses sums every recorded expense.
func (j *Job) TotalExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, e := range j.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}

func (j *Job) Clone() *Job {
	if j == nil {
		return nil
	}
	c := *j
	c.Milestones = make([]JobMilestone, len(j.Milestones))
	for i, m := range j.Milestones {
		m.OccurredAtUtc = cloneTime(m.OccurredAtUtc)
		m.CompletedAtUtc = cloneTime(m.CompletedAtUtc)
		c.Milestones[i] = m
	}
	c.Expenses = append([]JobExpense(nil), j.Expenses...)
	c.StartedAtUtc = cloneTime(j.StartedAtUtc)
	c.CompletedAtUtc = cloneTime(j.CompletedAtUtc)
	c.CancelledAtUtc = cloneTime(j.CancelledAtUtc)
	return &c
}
