package booking

import (
	"testing"

	"github.com/BruksfildServices01/pet-shop/internal/httperr"
)

func TestCanTransition(t *testing.T) {
	allowed := [][2]Status{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
	}
	for _, tr := range allowed {
		if err := CanTransition(tr[0], tr[1]); err != nil {
			t.Errorf("%s -> %s should be allowed: %v", tr[0], tr[1], err)
		}
	}

	denied := [][2]Status{
		{StatusPending, StatusPending},
		{StatusPending, StatusCompleted},
		{StatusConfirmed, StatusPending},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusConfirmed},
	}
	for _, tr := range denied {
		err := CanTransition(tr[0], tr[1])
		if !httperr.IsBusiness(err, CodeInvalidTransition) {
			t.Errorf("%s -> %s: expected invalid_transition, got %v", tr[0], tr[1], err)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "completed", "cancelled"} {
		if _, ok := ParseStatus(s); !ok {
			t.Errorf("%q should parse", s)
		}
	}
	for _, s := range []string{"", "CONFIRMED", "done"} {
		if _, ok := ParseStatus(s); ok {
			t.Errorf("%q should not parse", s)
		}
	}
}
