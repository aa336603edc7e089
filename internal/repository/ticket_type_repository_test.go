package repository

import (
	"context"
	"database/sql/driver"
	"strings"
	"testing"
	"time"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
)

func TestTicketTypeCreatePersistsStatus(t *testing.T) {
	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	conn := &stubConn{
		lastID: 7,
		rows: []*stubRows{{
			cols: strings.Split(ticketCols, ", "),
			vals: [][]driver.Value{
				{int64(7), int64(3), "Workshop Pass", int64(450000), 18.0, int64(50), int64(0), model.TicketHidden, now, now},
			},
		}},
	}
	db := stubDB(conn)
	defer db.Close()

	tt := model.TicketType{
		EventID:       3,
		Name:          "Workshop Pass",
		PriceCents:    450000,
		TaxPercent:    18,
		QuantityTotal: 50,
		Status:        model.TicketHidden,
	}
	if err := NewTicketTypeRepo(db).Create(context.Background(), &tt); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if len(conn.execs) != 1 {
		t.Fatalf("exec count = %d, want 1", len(conn.execs))
	}
	ins := conn.execs[0]
	if !strings.Contains(ins.query, "status") {
		t.Errorf("insert does not carry the status column: %s", ins.query)
	}
	if got := ins.args[len(ins.args)-1].Value; got != model.TicketHidden {
		t.Errorf("status arg = %v, want %q", got, model.TicketHidden)
	}
	if tt.Status != model.TicketHidden {
		t.Errorf("Status after create = %q, want %q", tt.Status, model.TicketHidden)
	}
	if tt.ID != 7 {
		t.Errorf("ID after create = %d, want 7", tt.ID)
	}
}
