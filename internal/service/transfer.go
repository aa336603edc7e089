package service

import (
	"fmt"
	"time"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
	"github.com/Prabhugems/AMASI-management-sub016/internal/repository"
)

// TransferPlan is the computed outcome of a registration transfer:
// the new number, the recomputed amounts, the counter adjustments to
// apply, and the audit note to append. The handler applies the plan
// with three sequential writes (decrement old, increment new, rewrite
// registration); nothing here touches the database.
type TransferPlan struct {
	RegNumber        string
	UnitPriceCents   uint32
	TaxAmountCents   uint32
	TotalAmountCents uint32
	// MoveSold is true when the registration is confirmed and the
	// sold counters of both ticket types must shift by Quantity.
	MoveSold bool
	Quantity uint32
	Note     string
	Change   PriceChange
}

// PlanTransfer validates the preconditions of a cross-event transfer
// and computes its effects.
//
// Preconditions: the registration is not checked in, the target ticket
// belongs to the target event, the target ticket is ACTIVE, and the
// target has at least Quantity unsold tickets. Violations map to
// repository.ErrInvalidState / ErrNotFound / ErrCapacityExceeded.
//
// The capacity check and the later counter writes are not guarded by a
// transaction; concurrent transfers against the same ticket type can
// both pass the check. See DESIGN.md.
func PlanTransfer(reg model.Registration, target model.TicketType, targetEvent model.Event,
	latestNumber string, now time.Time) (TransferPlan, error) {

	if reg.CheckedIn {
		return TransferPlan{}, fmt.Errorf("%w: registration is checked in", repository.ErrInvalidState)
	}
	if reg.Status == model.RegCancelled || reg.Status == model.RegRefunded {
		return TransferPlan{}, fmt.Errorf("%w: registration is %s", repository.ErrInvalidState, reg.Status)
	}
	if target.EventID != targetEvent.ID {
		return TransferPlan{}, fmt.Errorf("%w: ticket type does not belong to target event", repository.ErrNotFound)
	}
	if target.Status != model.TicketActive {
		return TransferPlan{}, fmt.Errorf("%w: target ticket type is %s", repository.ErrInvalidState, target.Status)
	}
	if target.QuantityTotal < target.QuantitySold ||
		target.QuantityTotal-target.QuantitySold < reg.Quantity {
		return TransferPlan{}, repository.ErrCapacityExceeded
	}

	tax, total := ComputeAmounts(target.PriceCents, target.TaxPercent, reg.Quantity)
	number := NextRegNumber(latestNumber, DefaultRegPrefix(targetEvent.ID))
	note := fmt.Sprintf("\n[%s] transferred to event %q ticket %q as %s",
		now.UTC().Format(time.RFC3339), targetEvent.Name, target.Name, number)

	return TransferPlan{
		RegNumber:        number,
		UnitPriceCents:   target.PriceCents,
		TaxAmountCents:   tax,
		TotalAmountCents: total,
		MoveSold:         reg.Status == model.RegConfirmed,
		Quantity:         reg.Quantity,
		Note:             note,
		Change: PriceChange{
			OldTotalCents: reg.TotalAmountCents,
			NewTotalCents: total,
			Difference:    int64(total) - int64(reg.TotalAmountCents),
		},
	}, nil
}
