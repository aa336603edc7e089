package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
	"github.com/Prabhugems/AMASI-management-sub016/internal/repository"
)

func printFixture() (model.PrintStation, model.Registration) {
	station := model.PrintStation{
		ID:           3,
		EventID:      1,
		IsActive:     true,
		AllowReprint: true,
		MaxReprints:  2,
	}
	reg := model.Registration{
		ID:           7,
		EventID:      1,
		TicketTypeID: 10,
		Status:       model.RegConfirmed,
	}
	return station, reg
}

// Three consecutive prints against a station with max_reprints=2 must
// yield numbers 1 and 2, then a limit rejection.
func TestPlanPrintSequence(t *testing.T) {
	station, reg := printFixture()
	now := time.Now()

	n1, err := PlanPrint(station, reg, 0, now)
	if err != nil || n1 != 1 {
		t.Fatalf("first print = (%d, %v), want (1, nil)", n1, err)
	}
	n2, err := PlanPrint(station, reg, n1, now)
	if err != nil || n2 != 2 {
		t.Fatalf("second print = (%d, %v), want (2, nil)", n2, err)
	}
	_, err = PlanPrint(station, reg, n2, now)
	if !errors.Is(err, repository.ErrReprintLimitExceeded) {
		t.Fatalf("third print err = %v, want ErrReprintLimitExceeded", err)
	}
}

func TestPlanPrintReprintNotAllowed(t *testing.T) {
	station, reg := printFixture()
	station.AllowReprint = false

	if _, err := PlanPrint(station, reg, 0, time.Now()); err != nil {
		t.Fatalf("first print: %v", err)
	}
	_, err := PlanPrint(station, reg, 1, time.Now())
	if !errors.Is(err, repository.ErrReprintNotAllowed) {
		t.Fatalf("second print err = %v, want ErrReprintNotAllowed", err)
	}
}

// max_reprints = 0 means no ceiling: reprints are governed by
// allow_reprint alone.
func TestPlanPrintZeroCeilingUnlimited(t *testing.T) {
	station, reg := printFixture()
	station.MaxReprints = 0

	for _, last := range []uint32{0, 1, 9} {
		n, err := PlanPrint(station, reg, last, time.Now())
		if err != nil || n != last+1 {
			t.Fatalf("print after %d = (%d, %v), want (%d, nil)", last, n, err, last+1)
		}
	}
}

func TestPlanPrintRejections(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	tests := []struct {
		name    string
		mutate  func(*model.PrintStation, *model.Registration)
		wantErr error
	}{
		{"inactive station", func(s *model.PrintStation, _ *model.Registration) { s.IsActive = false }, repository.ErrInvalidState},
		{"expired token", func(s *model.PrintStation, _ *model.Registration) { s.TokenExpiresAt = &past }, repository.ErrInvalidState},
		{"registration of another event", func(_ *model.PrintStation, r *model.Registration) { r.EventID = 99 }, repository.ErrNotFound},
		{"pending registration", func(_ *model.PrintStation, r *model.Registration) { r.Status = model.RegPending }, repository.ErrInvalidState},
		{"ticket type outside allowlist", func(s *model.PrintStation, _ *model.Registration) { s.TicketTypeIDs = "11,12" }, repository.ErrInvalidState},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			station, reg := printFixture()
			tc.mutate(&station, &reg)
			_, err := PlanPrint(station, reg, 0, time.Now())
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestPlanPrintAllowlistMatch(t *testing.T) {
	station, reg := printFixture()
	station.TicketTypeIDs = "10, 11"
	if _, err := PlanPrint(station, reg, 0, time.Now()); err != nil {
		t.Fatalf("allowlisted ticket type rejected: %v", err)
	}
}
