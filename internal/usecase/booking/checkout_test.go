package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/pet-shop/internal/domain/booking"
	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/models"
)

func seedCart(t *testing.T, repo *memRepo, u *identity.AuthenticatedUser) {
	t.Helper()
	add := newAddCartItem(repo)
	ctx := context.Background()

	l1 := cartInput(u, 5, "2025-01-10", "09:00")
	l1.CustomerName = "Marco"
	l2 := cartInput(u, 6, "2025-01-11", "15:30")
	l2.Notes = "allergico"

	for _, in := range []AddCartItemInput{l1, l2} {
		if _, err := add.Execute(ctx, in); err != nil {
			t.Fatalf("seed cart: %v", err)
		}
	}
}

func newCheckout(repo *memRepo) *Checkout {
	return NewCheckout(repo, nil, zerolog.Nop())
}

func TestCheckout_EmptyCart(t *testing.T) {
	repo := newMemRepo()

	_, err := newCheckout(repo).Execute(context.Background(), CheckoutInput{Actor: customer("u-1", "a@petshop.it")})

	if !httperr.IsBusiness(err, domain.CodeEmptyCart) {
		t.Fatalf("expected empty_cart, got %v", err)
	}
	if len(repo.bookings) != 0 {
		t.Fatalf("empty cart created bookings")
	}
}

func TestCheckout_ConvertsWholeCart(t *testing.T) {
	repo := newMemRepo()
	u := customer("u-1", "anna@petshop.it")
	u.FullName = "Anna Rossi"
	seedCart(t, repo, u)

	other := customer("u-2", "b@petshop.it")
	if _, err := newAddCartItem(repo).Execute(context.Background(), cartInput(other, 5, "2025-01-10", "09:00")); err != nil {
		t.Fatalf("seed other cart: %v", err)
	}

	created, err := newCheckout(repo).Execute(context.Background(), CheckoutInput{Actor: u})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(created) != 2 || len(repo.bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d created / %d stored", len(created), len(repo.bookings))
	}
	for _, b := range created {
		if b.OwnerID != "u-1" || b.Status != string(domain.StatusConfirmed) || b.ID == 0 {
			t.Fatalf("unexpected booking %+v", b)
		}
		if b.CustomerEmail != "anna@petshop.it" {
			t.Fatalf("expected account email, got %q", b.CustomerEmail)
		}
		if b.Service.ID != b.ServiceID {
			t.Fatalf("service not attached to %+v", b)
		}
	}

	if created[0].CustomerName != "Marco" || created[1].CustomerName != "Anna Rossi" {
		t.Fatalf("unexpected names %q, %q", created[0].CustomerName, created[1].CustomerName)
	}
	if created[0].Notes != domain.CheckoutNote || created[1].Notes != "allergico" {
		t.Fatalf("unexpected notes %q, %q", created[0].Notes, created[1].Notes)
	}

	if n := len(repo.cartOf("u-1")); n != 0 {
		t.Fatalf("cart not emptied, %d lines left", n)
	}
	if n := len(repo.cartOf("u-2")); n != 1 {
		t.Fatalf("another owner's cart was touched")
	}
}

func TestCheckout_CustomerInfoOverrides(t *testing.T) {
	repo := newMemRepo()
	u := customer("u-1", "anna@petshop.it")
	seedCart(t, repo, u)

	created, err := newCheckout(repo).Execute(context.Background(), CheckoutInput{
		Actor:    u,
		Customer: domain.CustomerInfo{Name: "Giulia Bianchi", Email: "giulia@petshop.it"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, b := range created {
		if b.CustomerName != "Giulia Bianchi" || b.CustomerEmail != "giulia@petshop.it" {
			t.Fatalf("customer info ignored: %+v", b)
		}
	}
}

func TestCheckout_InterruptedInsertRollsBack(t *testing.T) {
	repo := newMemRepo()
	u := customer("u-1", "anna@petshop.it")
	seedCart(t, repo, u)
	repo.failBookingAt = 2

	_, err := newCheckout(repo).Execute(context.Background(), CheckoutInput{Actor: u})

	if !errors.Is(err, errInterrupted) {
		t.Fatalf("expected interrupted insert error, got %v", err)
	}
	if len(repo.bookings) != 0 {
		t.Fatalf("partial booking set survived: %+v", repo.bookings)
	}
	if n := len(repo.cartOf("u-1")); n != 2 {
		t.Fatalf("cart must still hold both lines, got %d", n)
	}
}

func TestCheckout_ConcurrentChangeRollsBack(t *testing.T) {
	repo := newMemRepo()
	u := customer("u-1", "anna@petshop.it")
	seedCart(t, repo, u)
	repo.deleteShortfall = true

	_, err := newCheckout(repo).Execute(context.Background(), CheckoutInput{Actor: u})

	if !httperr.IsBusiness(err, domain.CodeCartChanged) {
		t.Fatalf("expected cart_changed, got %v", err)
	}
	if len(repo.bookings) != 0 || len(repo.cartOf("u-1")) != 2 {
		t.Fatalf("state changed after rollback")
	}
}

func TestCheckout_OwnershipViolation(t *testing.T) {
	repo := newMemRepo()
	u := customer("u-1", "anna@petshop.it")
	seedCart(t, repo, u)
	repo.foreignLine = &models.CartItem{ID: 99, OwnerID: "u-2", ServiceID: 5}

	_, err := newCheckout(repo).Execute(context.Background(), CheckoutInput{Actor: u})

	if !httperr.IsBusiness(err, domain.CodeOwnershipViolation) {
		t.Fatalf("expected ownership_violation, got %v", err)
	}
	if len(repo.bookings) != 0 || len(repo.cartOf("u-1")) != 2 {
		t.Fatalf("ownership violation committed changes")
	}
}

func TestCheckout_MissingEmail(t *testing.T) {
	repo := newMemRepo()
	u := customer("u-1", "")
	seedCart(t, repo, u)

	_, err := newCheckout(repo).Execute(context.Background(), CheckoutInput{Actor: u})

	if !httperr.IsBusiness(err, domain.CodeMissingCustomerEmail) {
		t.Fatalf("expected missing_customer_email, got %v", err)
	}
	if len(repo.bookings) != 0 || len(repo.cartOf("u-1")) != 2 {
		t.Fatalf("failed checkout changed state")
	}
}

func TestCheckout_RequiresActiveUser(t *testing.T) {
	repo := newMemRepo()

	_, err := newCheckout(repo).Execute(context.Background(), CheckoutInput{})
	if !httperr.IsBusiness(err, domain.CodeUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}

	off := customer("u-1", "a@petshop.it")
	off.IsActive = false
	_, err = newCheckout(repo).Execute(context.Background(), CheckoutInput{Actor: off})
	if !httperr.IsBusiness(err, domain.CodeAccountInactive) {
		t.Fatalf("expected account_inactive, got %v", err)
	}
}
