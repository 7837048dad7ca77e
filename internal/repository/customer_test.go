package repository

import (
	"testing"

	"backend/internal/models"
)

func TestCustomerSaveAndPartialUpdate(t *testing.T) {
	_, _, customers, _ := newTestRepos(t)

	saved := customers.Save(models.CustomerDraft{Name: "Budi", Email: "budi@example.com"})
	if saved.ID == "" || saved.CreatedAt.IsZero() {
		t.Fatal("expected save to assign id and timestamp")
	}

	phone := "0812345678"
	updated := customers.Update(saved.ID, models.CustomerUpdate{Phone: &phone})
	if updated == nil {
		t.Fatal("expected update to find the customer")
	}
	if updated.Phone != phone {
		t.Fatalf("expected phone %q, got %q", phone, updated.Phone)
	}
	if updated.Name != "Budi" || updated.Email != "budi@example.com" {
		t.Fatal("expected untouched fields to survive a partial update")
	}
}

func TestCustomerUpdateUnknownIDReturnsNil(t *testing.T) {
	_, _, customers, _ := newTestRepos(t)

	name := "nobody"
	if customers.Update("missing", models.CustomerUpdate{Name: &name}) != nil {
		t.Fatal("expected nil for an unknown id")
	}
}

func TestCustomerDeleteIsIdempotentInEffect(t *testing.T) {
	_, _, customers, _ := newTestRepos(t)

	saved := customers.Save(models.CustomerDraft{Name: "Budi"})
	if !customers.Delete(saved.ID) {
		t.Fatal("expected first delete to succeed")
	}
	if customers.Delete(saved.ID) {
		t.Fatal("expected second delete to report false")
	}
	if len(customers.GetAll()) != 0 {
		t.Fatal("expected an empty collection")
	}
}
