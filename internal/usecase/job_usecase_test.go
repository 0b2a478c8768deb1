package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"contractor_pipeline/internal/adapter/persistence/memory"
	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"
)

func newJobFixture(t *testing.T, status entities.JobStatus) (*JobUseCase, *fakeClock) {
	t.Helper()
	store := memory.New()
	seedJob(t, store, &entities.Job{
		ID:     "j-1",
		LeadID: "l-1",
		Status: status,
		Milestones: []entities.JobMilestone{
			{ID: "m-1", Title: "Demo", SortOrder: 0, Status: entities.MilestoneStatusPending},
			{ID: "m-2", Title: "Rough-in", SortOrder: 1, Status: entities.MilestoneStatusPending},
		},
		Expenses: []entities.JobExpense{{ID: "x-1", Vendor: "Lumber Co", Amount: d("120.00")}},
	})
	clock := &fakeClock{now: t0}
	return NewJobUseCase(store, nil, testOptions(clock)...), clock
}

func TestJobUseCase_Lifecycle(t *testing.T) {
	uc, clock := newJobFixture(t, entities.JobStatusScheduled)
	ctx := context.Background()

	if _, _, err := uc.CompleteJob(ctx, tenant, "j-1"); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict completing a scheduled job, got %v", err)
	}

	started, events, err := uc.StartJob(ctx, tenant, "j-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if started.Status != entities.JobStatusInProgress || started.StartedAtUtc == nil || len(events) != 1 {
		t.Fatalf("unexpected job: %+v", started)
	}

	clock.Advance(48 * time.Hour)
	done, _, err := uc.CompleteJob(ctx, tenant, "j-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !done.CompletedAtUtc.Equal(t0.Add(48*time.Hour)) || !done.StartedAtUtc.Equal(t0) {
		t.Fatalf("unexpected timestamps: %+v", done)
	}
	if _, _, err := uc.CancelJob(ctx, tenant, "j-1"); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict cancelling a completed job, got %v", err)
	}
}

func TestJobUseCase_Milestones(t *testing.T) {
	ctx := context.Background()

	t.Run("add appends after the last sort order", func(t *testing.T) {
		uc, _ := newJobFixture(t, entities.JobStatusScheduled)
		job, err := uc.AddMilestone(ctx, tenant, "j-1", MilestoneInput{Title: " Finish "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last := job.Milestones[len(job.Milestones)-1]
		if last.Title != "Finish" || last.SortOrder != 2 || last.Status != entities.MilestoneStatusPending {
			t.Fatalf("unexpected milestone: %+v", last)
		}
	})

	t.Run("add with explicit sort order is re-sorted", func(t *testing.T) {
		uc, _ := newJobFixture(t, entities.JobStatusScheduled)
		first := -1
		job, err := uc.AddMilestone(ctx, tenant, "j-1", MilestoneInput{Title: "Permit", SortOrder: &first})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Milestones[0].Title != "Permit" {
			t.Fatalf("expected permit first, got %+v", job.Milestones)
		}
	})

	t.Run("blank title", func(t *testing.T) {
		uc, _ := newJobFixture(t, entities.JobStatusScheduled)
		if _, err := uc.AddMilestone(ctx, tenant, "j-1", MilestoneInput{Title: ""}); !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("update and delete", func(t *testing.T) {
		uc, _ := newJobFixture(t, entities.JobStatusInProgress)
		job, err := uc.UpdateMilestone(ctx, tenant, "j-1", "m-2", MilestoneInput{Title: "Rough-in plumbing", Notes: "north wall"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Milestones[1].Title != "Rough-in plumbing" || job.Milestones[1].Notes != "north wall" || job.Milestones[1].SortOrder != 1 {
			t.Fatalf("unexpected milestone: %+v", job.Milestones[1])
		}
		job, err = uc.DeleteMilestone(ctx, tenant, "j-1", "m-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(job.Milestones) != 1 || job.Milestones[0].ID != "m-2" {
			t.Fatalf("unexpected milestones: %+v", job.Milestones)
		}
		if _, err := uc.DeleteMilestone(ctx, tenant, "j-1", "m-1"); !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("reorder", func(t *testing.T) {
		uc, _ := newJobFixture(t, entities.JobStatusScheduled)
		job, err := uc.ReorderMilestones(ctx, tenant, "j-1", []string{"m-2", "m-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Milestones[0].ID != "m-2" || job.Milestones[0].SortOrder != 0 || job.Milestones[1].SortOrder != 1 {
			t.Fatalf("unexpected order: %+v", job.Milestones)
		}
		if _, err := uc.ReorderMilestones(ctx, tenant, "j-1", []string{"m-1"}); !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error for partial order, got %v", err)
		}
		if _, err := uc.ReorderMilestones(ctx, tenant, "j-1", []string{"m-1", "m-1"}); !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error for duplicates, got %v", err)
		}
	})

	t.Run("complete once", func(t *testing.T) {
		uc, _ := newJobFixture(t, entities.JobStatusInProgress)
		job, err := uc.CompleteMilestone(ctx, tenant, "j-1", "m-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Milestones[0].Status != entities.MilestoneStatusCompleted || !job.Milestones[0].CompletedAtUtc.Equal(t0) {
			t.Fatalf("unexpected milestone: %+v", job.Milestones[0])
		}
		if _, err := uc.CompleteMilestone(ctx, tenant, "j-1", "m-1"); !errors.Is(err, apperr.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("terminal job freezes milestones", func(t *testing.T) {
		uc, _ := newJobFixture(t, entities.JobStatusCancelled)
		if _, err := uc.AddMilestone(ctx, tenant, "j-1", MilestoneInput{Title: "Late"}); !errors.Is(err, apperr.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
		if _, err := uc.CompleteMilestone(ctx, tenant, "j-1", "m-1"); !errors.Is(err, apperr.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})
}

func TestJobUseCase_Expenses(t *testing.T) {
	ctx := context.Background()

	t.Run("add rounds amount and defaults spent date", func(t *testing.T) {
		uc, _ := newJobFixture(t, entities.JobStatusInProgress)
		job, err := uc.AddExpense(ctx, tenant, "j-1", ExpenseInput{Vendor: "Hardware", Amount: d("19.995")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		exp := job.Expenses[1]
		if exp.Amount.String() != "20" || !exp.SpentAtUtc.Equal(t0) {
			t.Fatalf("unexpected expense: %+v", exp)
		}
		if !job.TotalExpenses().Equal(d("140")) {
			t.Fatalf("unexpected total: %s", job.TotalExpenses())
		}
	})

	t.Run("validation", func(t *testing.T) {
		uc, _ := newJobFixture(t, entities.JobStatusInProgress)
		if _, err := uc.AddExpense(ctx, tenant, "j-1", ExpenseInput{Vendor: " ", Amount: d("1")}); !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if _, err := uc.AddExpense(ctx, tenant, "j-1", ExpenseInput{Vendor: "x", Amount: d("-1")}); !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("update and delete on an open job", func(t *testing.T) {
		uc, _ := newJobFixture(t, entities.JobStatusScheduled)
		job, err := uc.UpdateExpense(ctx, tenant, "j-1", "x-1", ExpenseInput{Vendor: "Lumber Co", Amount: d("80")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !job.Expenses[0].Amount.Equal(d("80")) {
			t.Fatalf("unexpected expense: %+v", job.Expenses[0])
		}
		job, err = uc.DeleteExpense(ctx, tenant, "j-1", "x-1")
		if err != nil || len(job.Expenses) != 0 {
			t.Fatalf("expected expense removed, got %+v err=%v", job.Expenses, err)
		}
	})

	t.Run("terminal job is append-only", func(t *testing.T) {
		uc, _ := newJobFixture(t, entities.JobStatusCompleted)
		if _, err := uc.AddExpense(ctx, tenant, "j-1", ExpenseInput{Vendor: "Dumpster", Amount: d("300")}); err != nil {
			t.Fatalf("adding to a completed job must succeed, got %v", err)
		}
		if _, err := uc.UpdateExpense(ctx, tenant, "j-1", "x-1", ExpenseInput{Vendor: "x", Amount: d("1")}); !errors.Is(err, apperr.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
		if _, err := uc.DeleteExpense(ctx, tenant, "j-1", "x-1"); !errors.Is(err, apperr.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})
}
