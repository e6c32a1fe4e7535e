package merch

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listMerchQuery = `
        SELECT merch_id, title, price, image, description
        FROM merch
        ORDER BY merch_id
    `
	getMerchByIDQuery = `
        SELECT merch_id, title, price, image, description
        FROM merch
        WHERE merch_id = $1
    `
	listMerchByIDsQuery = `
        SELECT merch_id, title, price, image, description
        FROM merch
        WHERE merch_id = ANY($1::int[])
        ORDER BY array_position($1::int[], merch_id)
    `
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Merch, error) {
	rows, err := r.db.Query(listMerchQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMerch(rows)
}

func (r *PostgresRepository) GetByID(id int) (Merch, error) {
	var m Merch
	err := r.db.QueryRow(getMerchByIDQuery, id).Scan(&m.ID, &m.Title, &m.Price, &m.Image, &m.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			return Merch{}, ErrNotFound
		}
		return Merch{}, err
	}
	return m, nil
}

func (r *PostgresRepository) ListByIDs(ids []int) ([]Merch, error) {
	if len(ids) == 0 {
		return []Merch{}, nil
	}

	rows, err := r.db.Query(listMerchByIDsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMerch(rows)
}

func scanMerch(rows *sql.Rows) ([]Merch, error) {
	out := make([]Merch, 0)
	for rows.Next() {
		var m Merch
		if err := rows.Scan(&m.ID, &m.Title, &m.Price, &m.Image, &m.Description); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
