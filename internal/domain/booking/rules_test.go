package booking

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/models"
)

func TestResolveEmail(t *testing.T) {
	u := &identity.AuthenticatedUser{Email: "anna@petshop.it"}

	if got := ResolveEmail(CustomerInfo{Email: " other@petshop.it "}, u); got != "other@petshop.it" {
		t.Fatalf("explicit email ignored: %q", got)
	}
	if got := ResolveEmail(CustomerInfo{}, u); got != "anna@petshop.it" {
		t.Fatalf("account email not used: %q", got)
	}
	if got := ResolveEmail(CustomerInfo{}, &identity.AuthenticatedUser{}); got != "" {
		t.Fatalf("expected empty email, got %q", got)
	}
}

func TestResolveName(t *testing.T) {
	u := &identity.AuthenticatedUser{FullName: "Anna Rossi"}
	item := models.CartItem{CustomerName: "Marco"}

	if got := ResolveName(CustomerInfo{Name: "Giulia"}, item, u, "x@y.it"); got != "Giulia" {
		t.Fatalf("checkout name ignored: %q", got)
	}
	if got := ResolveName(CustomerInfo{}, item, u, "x@y.it"); got != "Marco" {
		t.Fatalf("line name ignored: %q", got)
	}
	if got := ResolveName(CustomerInfo{}, models.CartItem{}, u, "x@y.it"); got != "Anna Rossi" {
		t.Fatalf("account name ignored: %q", got)
	}
	if got := ResolveName(CustomerInfo{}, models.CartItem{}, &identity.AuthenticatedUser{}, "luca@petshop.it"); got != "luca" {
		t.Fatalf("email local part ignored: %q", got)
	}
	if got := ResolveName(CustomerInfo{}, models.CartItem{}, nil, ""); got != defaultCustomerName {
		t.Fatalf("expected default name, got %q", got)
	}
}

func TestBookingFromCart(t *testing.T) {
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	item := models.CartItem{
		ID: 7, OwnerID: "u-1", ServiceID: 5,
		PetName: "Fido", PetType: "Cane",
		BookingDate: date, BookingTime: "09:00",
	}

	b := BookingFromCart(item, "Anna", "anna@petshop.it")

	if b.Status != string(StatusConfirmed) || b.OwnerID != "u-1" || b.ServiceID != 5 {
		t.Fatalf("unexpected booking %+v", b)
	}
	if !b.BookingDate.Equal(date) || b.BookingTime != "09:00" || b.PetName != "Fido" {
		t.Fatalf("slot fields not copied: %+v", b)
	}
	if b.Notes != CheckoutNote {
		t.Fatalf("expected default note, got %q", b.Notes)
	}

	item.Notes = "allergico al pollo"
	if got := BookingFromCart(item, "Anna", "anna@petshop.it").Notes; got != "allergico al pollo" {
		t.Fatalf("line notes lost: %q", got)
	}
}
