package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
)

// JSON shapes for each entity. Kept in one place so every endpoint
// returns the same field names for the same row.

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func eventJSON(e model.Event) echo.Map {
	return echo.Map{
		"id":         e.ID,
		"name":       e.Name,
		"venue":      e.Venue,
		"city":       e.City,
		"starts_at":  e.StartsAt,
		"ends_at":    e.EndsAt,
		"status":     e.Status,
		"created_at": e.CreatedAt,
		"updated_at": e.UpdatedAt,
	}
}

func ticketJSON(t model.TicketType) echo.Map {
	return echo.Map{
		"id":             t.ID,
		"event_id":       t.EventID,
		"name":           t.Name,
		"price_cents":    t.PriceCents,
		"tax_percent":    t.TaxPercent,
		"quantity_total": t.QuantityTotal,
		"quantity_sold":  t.QuantitySold,
		"status":         t.Status,
	}
}

func registrationJSON(r model.Registration) echo.Map {
	return echo.Map{
		"id":                  r.ID,
		"event_id":            r.EventID,
		"ticket_type_id":      r.TicketTypeID,
		"registration_number": r.RegNumber,
		"full_name":           r.FullName,
		"email":               r.Email,
		"phone":               r.Phone,
		"quantity":            r.Quantity,
		"unit_price_cents":    r.UnitPriceCents,
		"tax_amount_cents":    r.TaxAmountCents,
		"total_amount_cents":  r.TotalAmountCents,
		"status":              r.Status,
		"checked_in":          r.CheckedIn,
		"checked_in_at":       nullableTime(r.CheckedInAt),
		"source":              r.Source,
		"notes":               r.Notes,
		"created_at":          r.CreatedAt,
	}
}

func templateJSON(t model.BadgeTemplate) echo.Map {
	return echo.Map{
		"id":                 t.ID,
		"event_id":           t.EventID,
		"name":               t.Name,
		"description":        t.Description,
		"size":               t.Size,
		"template_image_url": t.TemplateImageURL,
		"template_data":      t.TemplateData,
		"is_default":         t.IsDefault,
		"is_locked":          t.IsLocked,
		"locked_at":          nullableTime(t.LockedAt),
		"badges_generated":   t.BadgesGenerated,
	}
}

// stationJSON includes the access token: admins need to read it back
// when configuring a kiosk. The print endpoint authenticates by this
// token, so station routes themselves sit behind admin auth.
func stationJSON(s model.PrintStation) echo.Map {
	return echo.Map{
		"id":               s.ID,
		"event_id":         s.EventID,
		"name":             s.Name,
		"access_token":     s.AccessToken,
		"token_expires_at": nullableTime(s.TokenExpiresAt),
		"is_active":        s.IsActive,
		"allow_reprint":    s.AllowReprint,
		"max_reprints":     s.MaxReprints,
		"ticket_type_ids":  s.TicketTypeIDs,
	}
}

func jobJSON(j model.PrintJob) echo.Map {
	return echo.Map{
		"id":              j.ID,
		"job_ref":         j.JobRef,
		"station_id":      j.StationID,
		"registration_id": j.RegistrationID,
		"print_number":    j.PrintNumber,
		"status":          j.Status,
		"device_info":     j.DeviceInfo,
		"created_at":      j.CreatedAt,
	}
}

func sessionJSON(s model.Session) echo.Map {
	return echo.Map{
		"id":           s.ID,
		"event_id":     s.EventID,
		"title":        s.Title,
		"hall":         s.Hall,
		"session_date": s.SessionDate,
		"start_time":   s.StartTime,
		"end_time":     s.EndTime,
		"speakers":     s.Speakers,
		"chairpersons": s.Chairpersons,
		"moderators":   s.Moderators,
	}
}

func assignmentJSON(a model.FacultyAssignment) echo.Map {
	return echo.Map{
		"id":           a.ID,
		"event_id":     a.EventID,
		"session_id":   a.SessionID,
		"faculty_name": a.FacultyName,
		"email":        a.Email,
		"phone":        a.Phone,
		"role":         a.Role,
		"status":       a.Status,
		"responded_at": nullableTime(a.RespondedAt),
		"session_date": a.SessionDate,
		"start_time":   a.StartTime,
		"end_time":     a.EndTime,
		"hall":         a.Hall,
	}
}

func logJSON(l model.NotificationLog) echo.Map {
	return echo.Map{
		"id":          l.ID,
		"message_ref": l.MessageRef,
		"channel":     l.Channel,
		"recipient":   l.Recipient,
		"template":    l.Template,
		"status":      l.Status,
		"error":       l.Error,
		"created_at":  l.CreatedAt,
	}
}
