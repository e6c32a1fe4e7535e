package order

import (
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
        INSERT INTO orders (user_id, items, total_amount, payment_id, receipt, status, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING order_id
    `
	markPaidQuery = `UPDATE orders SET status = 'paid' WHERE payment_id = $1`

	listOrdersByUserQuery = `
        SELECT order_id, user_id, items, total_amount, payment_id, receipt, status, created_at
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at DESC, order_id DESC
    `
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create persists a pending ledger entry. orders.receipt is UNIQUE, so a
// receipt collision surfaces as the insert error; there is no retry.
func (r *PostgresRepository) Create(ord Order) (Order, error) {
	itemsJSON, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}

	err = r.db.QueryRow(insertOrderQuery,
		ord.UserID, itemsJSON, ord.TotalAmount, ord.PaymentID, ord.Receipt, ord.Status, ord.CreatedAt).Scan(&ord.OrderID)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

// MarkPaid updates by gateway order id. Zero rows affected means no order
// matched; that is deliberately not an error (fail closed happened at the
// signature check, and re-verifying a paid order must stay idempotent).
func (r *PostgresRepository) MarkPaid(paymentID string) error {
	_, err := r.db.Exec(markPaidQuery, paymentID)
	return err
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	rows, err := r.db.Query(listOrdersByUserQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		var ord Order
		var itemsJSON []byte
		if err := rows.Scan(&ord.OrderID, &ord.UserID, &itemsJSON, &ord.TotalAmount, &ord.PaymentID, &ord.Receipt, &ord.Status, &ord.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(itemsJSON, &ord.Items); err != nil {
			return nil, err
		}
		out = append(out, ord)
	}
	return out, rows.Err()
}
