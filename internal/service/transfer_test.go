package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
	"github.com/Prabhugems/AMASI-management-sub016/internal/repository"
)

func baseTransferFixture() (model.Registration, model.TicketType, model.Event) {
	reg := model.Registration{
		ID:               7,
		EventID:          1,
		TicketTypeID:     10,
		RegNumber:        "AMASI24-0005",
		Quantity:         2,
		UnitPriceCents:   500,
		TaxAmountCents:   0,
		TotalAmountCents: 1000,
		Status:           model.RegConfirmed,
	}
	target := model.TicketType{
		ID:            20,
		EventID:       2,
		Name:          "Delegate",
		PriceCents:    1000,
		TaxPercent:    10,
		QuantityTotal: 5,
		QuantitySold:  0,
		Status:        model.TicketActive,
	}
	event := model.Event{ID: 2, Name: "AMASICON 2025"}
	return reg, target, event
}

func TestPlanTransferSuccess(t *testing.T) {
	reg, target, event := baseTransferFixture()
	plan, err := PlanTransfer(reg, target, event, "AMASICON-0012", time.Now())
	if err != nil {
		t.Fatalf("PlanTransfer: %v", err)
	}
	// 1000 x 2 plus 10% tax.
	if plan.TotalAmountCents != 2200 {
		t.Errorf("total = %d, want 2200", plan.TotalAmountCents)
	}
	if plan.TaxAmountCents != 200 {
		t.Errorf("tax = %d, want 200", plan.TaxAmountCents)
	}
	if plan.RegNumber != "AMASICON-0013" {
		t.Errorf("reg number = %q, want AMASICON-0013", plan.RegNumber)
	}
	if !plan.MoveSold || plan.Quantity != 2 {
		t.Errorf("confirmed transfer must move sold counters by quantity, got MoveSold=%v qty=%d",
			plan.MoveSold, plan.Quantity)
	}
	if plan.Change.Difference != 1200 {
		t.Errorf("price difference = %d, want 1200", plan.Change.Difference)
	}
}

func TestPlanTransferPendingDoesNotMoveCounters(t *testing.T) {
	reg, target, event := baseTransferFixture()
	reg.Status = model.RegPending
	plan, err := PlanTransfer(reg, target, event, "", time.Now())
	if err != nil {
		t.Fatalf("PlanTransfer: %v", err)
	}
	if plan.MoveSold {
		t.Error("pending registration must not move sold counters")
	}
	if plan.RegNumber != "EVT2-0001" {
		t.Errorf("first number for fresh event = %q, want EVT2-0001", plan.RegNumber)
	}
}

func TestPlanTransferRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.Registration, *model.TicketType)
		wantErr error
	}{
		{"checked in", func(r *model.Registration, _ *model.TicketType) { r.CheckedIn = true }, repository.ErrInvalidState},
		{"cancelled", func(r *model.Registration, _ *model.TicketType) { r.Status = model.RegCancelled }, repository.ErrInvalidState},
		{"ticket of another event", func(_ *model.Registration, tt *model.TicketType) { tt.EventID = 99 }, repository.ErrNotFound},
		{"ticket hidden", func(_ *model.Registration, tt *model.TicketType) { tt.Status = model.TicketHidden }, repository.ErrInvalidState},
		{"insufficient capacity", func(r *model.Registration, tt *model.TicketType) {
			tt.QuantityTotal = 5
			tt.QuantitySold = 4
			r.Quantity = 2
		}, repository.ErrCapacityExceeded},
		{"sold over total", func(_ *model.Registration, tt *model.TicketType) {
			tt.QuantityTotal = 3
			tt.QuantitySold = 4
		}, repository.ErrCapacityExceeded},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg, target, event := baseTransferFixture()
			tc.mutate(&reg, &target)
			_, err := PlanTransfer(reg, target, event, "", time.Now())
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestComputeAmounts(t *testing.T) {
	tests := []struct {
		price     uint32
		tax       float64
		qty       uint32
		wantTax   uint32
		wantTotal uint32
	}{
		{1000, 10, 2, 200, 2200},
		{1000, 0, 1, 0, 1000},
		{333, 18, 3, 180, 1179},
		{0, 10, 5, 0, 0},
	}
	for _, tc := range tests {
		gotTax, gotTotal := ComputeAmounts(tc.price, tc.tax, tc.qty)
		if gotTax != tc.wantTax || gotTotal != tc.wantTotal {
			t.Errorf("ComputeAmounts(%d, %v, %d) = (%d, %d), want (%d, %d)",
				tc.price, tc.tax, tc.qty, gotTax, gotTotal, tc.wantTax, tc.wantTotal)
		}
	}
}

func TestNextRegNumber(t *testing.T) {
	tests := []struct {
		latest string
		want   string
	}{
		{"", "EVT9-0001"},
		{"AMASI24-0041", "AMASI24-0042"},
		{"AMASI24-0099", "AMASI24-0100"},
		{"AMASI24-9999", "AMASI24-10000"},
		{"REG7", "REG8"},
		{"NODIGITS", "NODIGITS-0001"},
	}
	for _, tc := range tests {
		if got := NextRegNumber(tc.latest, "EVT9"); got != tc.want {
			t.Errorf("NextRegNumber(%q) = %q, want %q", tc.latest, got, tc.want)
		}
	}
}
