package service

import (
	"fmt"
	"time"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
	"github.com/Prabhugems/AMASI-management-sub016/internal/repository"
)

// PlanPrint validates a print request against the station's policy and
// returns the print number to record. lastCompleted is the highest
// completed print number for this (station, registration) pair, 0 when
// the pair has never printed.
//
// The returned number is lastCompleted+1, so completed jobs for a pair
// are numbered 1..K with no gaps as long as prints against the same
// pair do not race.
func PlanPrint(station model.PrintStation, reg model.Registration,
	lastCompleted uint32, now time.Time) (uint32, error) {

	if !station.IsActive {
		return 0, fmt.Errorf("%w: print station is not active", repository.ErrInvalidState)
	}
	if station.TokenExpiresAt != nil && now.After(*station.TokenExpiresAt) {
		return 0, fmt.Errorf("%w: station token has expired", repository.ErrInvalidState)
	}
	if reg.EventID != station.EventID {
		return 0, fmt.Errorf("%w: attendee not found for this event", repository.ErrNotFound)
	}
	if reg.Status != model.RegConfirmed {
		return 0, fmt.Errorf("%w: registration is %s", repository.ErrInvalidState, reg.Status)
	}
	if allowed := repository.ParseAllowlist(station.TicketTypeIDs); len(allowed) > 0 {
		ok := false
		for _, id := range allowed {
			if id == reg.TicketTypeID {
				ok = true
				break
			}
		}
		if !ok {
			return 0, fmt.Errorf("%w: ticket type not printable at this station", repository.ErrInvalidState)
		}
	}

	printNumber := lastCompleted + 1
	if printNumber > 1 && !station.AllowReprint {
		return 0, repository.ErrReprintNotAllowed
	}
	if printNumber > station.MaxReprints && station.MaxReprints > 0 {
		return 0, repository.ErrReprintLimitExceeded
	}
	return printNumber, nil
}
