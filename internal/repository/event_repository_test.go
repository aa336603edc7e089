package repository

import (
	"context"
	"database/sql/driver"
	"strings"
	"testing"
	"time"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
)

func TestEventCreatePersistsStatus(t *testing.T) {
	starts := time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC)
	ends := starts.Add(8 * time.Hour)
	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	conn := &stubConn{
		lastID: 4,
		rows: []*stubRows{{
			cols: strings.Split(eventCols, ", "),
			vals: [][]driver.Value{
				{int64(4), "AMASICON 2026", "HICC", "Hyderabad", starts, ends, "PUBLISHED", now, now},
			},
		}},
	}
	db := stubDB(conn)
	defer db.Close()

	ev := model.Event{
		Name:     "AMASICON 2026",
		Venue:    "HICC",
		City:     "Hyderabad",
		StartsAt: starts,
		EndsAt:   ends,
		Status:   "PUBLISHED",
	}
	if err := NewEventRepo(db).Create(context.Background(), &ev); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if len(conn.execs) != 1 {
		t.Fatalf("exec count = %d, want 1", len(conn.execs))
	}
	ins := conn.execs[0]
	if !strings.Contains(ins.query, "status") {
		t.Errorf("insert does not carry the status column: %s", ins.query)
	}
	if got := ins.args[len(ins.args)-1].Value; got != "PUBLISHED" {
		t.Errorf("status arg = %v, want %q", got, "PUBLISHED")
	}
	if ev.Status != "PUBLISHED" {
		t.Errorf("Status after create = %q, want PUBLISHED", ev.Status)
	}
}
