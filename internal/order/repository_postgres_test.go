package order

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresCreate_ReturnsAssignedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"order_id"}).AddRow(12)
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(7, []byte(`[{"merchId":1,"quantity":2}]`), 1000.0, "order_1", "rcpt_1", "pending", "2026-01-01T00:00:00Z").
		WillReturnRows(rows)

	created, err := repo.Create(Order{
		UserID:      7,
		Items:       []Item{{MerchID: 1, Quantity: 2}},
		TotalAmount: 1000,
		PaymentID:   "order_1",
		Receipt:     "rcpt_1",
		Status:      StatusPending,
		CreatedAt:   "2026-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.OrderID != 12 {
		t.Fatalf("expected order id 12, got %d", created.OrderID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresMarkPaid_ZeroRowsIsNotAnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE orders SET status = 'paid'").
		WithArgs("order_ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.MarkPaid("order_ghost"); err != nil {
		t.Fatalf("mark paid with no matching row must succeed, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresListByUser_UnmarshalsItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"order_id", "user_id", "items", "total_amount", "payment_id", "receipt", "status", "created_at"}).
		AddRow(2, 7, []byte(`[{"merchId":1,"quantity":1}]`), 500.0, "order_2", "rcpt_2", "pending", "2026-01-02T00:00:00Z").
		AddRow(1, 7, []byte(`[{"merchId":1,"quantity":2},{"merchId":2,"quantity":1}]`), 2500.0, "order_1", "rcpt_1", "paid", "2026-01-01T00:00:00Z")
	mock.ExpectQuery("FROM orders").WithArgs(7).WillReturnRows(rows)

	orders, err := repo.ListByUser(7)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].OrderID != 2 || orders[0].Status != StatusPending {
		t.Fatalf("unexpected first order: %+v", orders[0])
	}
	if len(orders[1].Items) != 2 || orders[1].Items[1].MerchID != 2 {
		t.Fatalf("items not unmarshaled: %+v", orders[1].Items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
