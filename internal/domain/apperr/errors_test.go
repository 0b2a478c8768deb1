package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_IsMatchesKind(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{name: "validation", err: Validation("description_required", "line %d", 0), target: ErrValidation, want: true},
		{name: "validation is not conflict", err: Validation("x", "y"), target: ErrConflict, want: false},
		{name: "transition conflict", err: TransitionConflict("estimate", "e-1", "Draft", "Accepted"), target: ErrConflict, want: true},
		{name: "not found", err: NotFound("lead", "l-1"), target: ErrNotFound, want: true},
		{name: "wrapped conflict", err: fmt.Errorf("accept: %w", Conflict("job", "j-1", "cancelled")), target: ErrConflict, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := errors.Is(tc.err, tc.target); got != tc.want {
				t.Fatalf("expected %v, got %v for %v", tc.want, got, tc.err)
			}
		})
	}
}

func TestTransitionConflict_CarriesEdge(t *testing.T) {
	err := fmt.Errorf("send: %w", TransitionConflict("estimate", "e-1", "Accepted", "Sent"))

	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *Error in chain, got %v", err)
	}
	if appErr.From != "Accepted" || appErr.To != "Sent" || appErr.EntityType != "estimate" || appErr.EntityID != "e-1" {
		t.Fatalf("unexpected edge details: %+v", appErr)
	}
	if KindOf(err) != KindConflict {
		t.Fatalf("expected conflict kind, got %q", KindOf(err))
	}
	if KindOf(errors.New("db")) != "" {
		t.Fatalf("expected empty kind for plain errors")
	}
}
