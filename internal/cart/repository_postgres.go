package cart

import (
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	getCartByUserQuery = `
        SELECT cart_id, user_id, items, updated_at
        FROM carts
        WHERE user_id = $1
        ORDER BY cart_id
        LIMIT 1
    `
	insertCartQuery = `
        INSERT INTO carts (user_id, items, updated_at)
        VALUES ($1, $2, $3)
        RETURNING cart_id
    `
	updateCartQuery = `
        UPDATE carts SET items = $1, updated_at = $2 WHERE cart_id = $3
    `
	deleteCartQuery = `DELETE FROM carts WHERE user_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByUser loads the user's cart document. There is no unique index on
// user_id; if a race ever produced duplicates the lowest cart_id wins.
func (r *PostgresRepository) GetByUser(userID int) (Cart, error) {
	var c Cart
	var rawItems []byte
	err := r.db.QueryRow(getCartByUserQuery, userID).Scan(&c.CartID, &c.UserID, &rawItems, &c.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return Cart{}, ErrNotFound
		}
		return Cart{}, err
	}

	if err := json.Unmarshal(rawItems, &c.Items); err != nil {
		return Cart{}, err
	}
	if c.Items == nil {
		c.Items = []Item{}
	}
	return c, nil
}

// Save writes the whole items document back. No row lock is taken, so two
// concurrent read-modify-write cycles on the same cart are last-write-wins.
func (r *PostgresRepository) Save(c Cart) (Cart, error) {
	itemsJSON, err := json.Marshal(c.Items)
	if err != nil {
		return Cart{}, err
	}

	if c.CartID == 0 {
		if err := r.db.QueryRow(insertCartQuery, c.UserID, itemsJSON, c.UpdatedAt).Scan(&c.CartID); err != nil {
			return Cart{}, err
		}
		return c, nil
	}

	if _, err := r.db.Exec(updateCartQuery, itemsJSON, c.UpdatedAt, c.CartID); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Delete(userID int) error {
	res, err := r.db.Exec(deleteCartQuery, userID)
	if err != nil {
		return err
	}
	cnt, _ := res.RowsAffected()
	if cnt == 0 {
		return ErrNotFound
	}
	return nil
}
