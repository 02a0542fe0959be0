package service

import (
	"testing"

	"github.com/rogerio-castellano/inventory-manager/internal/apperr"
)

func TestSupplierCreate_DuplicateName(t *testing.T) {
	f := newFixture()

	f.seedSupplier(t, "Acme")

	_, err := f.supplierService.Create("Acme", "other@example.com")
	if !apperr.IsDuplicate(err) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestSupplierUpdate_ContactInfoOnly(t *testing.T) {
	f := newFixture()

	created := f.seedSupplier(t, "Acme")

	contact := "sales@acme.example.com"
	updated, err := f.supplierService.Update(created.ID, SupplierPatch{ContactInfo: &contact})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Acme" {
		t.Errorf("expected name unchanged, got %q", updated.Name)
	}
	if updated.ContactInfo != contact {
		t.Errorf("expected contact info %q, got %q", contact, updated.ContactInfo)
	}
}

func TestSupplierDelete_BlockedByProducts(t *testing.T) {
	f := newFixture()

	category := f.seedCategory(t, "Electronics")
	supplier := f.seedSupplier(t, "Acme")
	product := f.seedProduct(t, "Laptop", "SKU-1", category.ID, supplier.ID)

	err := f.supplierService.Delete(supplier.ID)
	if !apperr.IsInvalid(err) {
		t.Fatalf("expected invalid-operation error, got %v", err)
	}

	if err := f.productService.Delete(product.ID); err != nil {
		t.Fatalf("product delete failed: %v", err)
	}
	if err := f.supplierService.Delete(supplier.ID); err != nil {
		t.Fatalf("delete should succeed once no products reference the supplier, got %v", err)
	}
}

func TestSupplierDelete_NotFound(t *testing.T) {
	f := newFixture()

	if err := f.supplierService.Delete(7); !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
