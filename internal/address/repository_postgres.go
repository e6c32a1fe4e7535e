package address

import "database/sql"

// Postgres repository keeps one address row per user; addresses.user_id
// carries a UNIQUE constraint so a create race loses at the store.

type PostgresRepository struct {
	db *sql.DB
}

const (
	getAddressByUserQuery = `
        SELECT address_id, user_id, house_no, street, city, state, postal_code, country, created_at, updated_at
        FROM addresses
        WHERE user_id = $1
    `
	insertAddressQuery = `
        INSERT INTO addresses (user_id, house_no, street, city, state, postal_code, country, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING address_id
    `
	updateAddressQuery = `
        UPDATE addresses
        SET house_no=$2, street=$3, city=$4, state=$5, postal_code=$6, country=$7, updated_at=$8
        WHERE user_id=$1
        RETURNING address_id, created_at
    `
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByUser(userID int) (Address, error) {
	var a Address
	err := r.db.QueryRow(getAddressByUserQuery, userID).Scan(
		&a.AddressID, &a.UserID, &a.HouseNo, &a.Street, &a.City, &a.State, &a.PostalCode, &a.Country, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return Address{}, ErrNotFound
		}
		return Address{}, err
	}
	return a, nil
}

func (r *PostgresRepository) Create(a Address) (Address, error) {
	err := r.db.QueryRow(insertAddressQuery,
		a.UserID, a.HouseNo, a.Street, a.City, a.State, a.PostalCode, a.Country, a.CreatedAt, a.UpdatedAt).Scan(&a.AddressID)
	if err != nil {
		return Address{}, err
	}
	return a, nil
}

func (r *PostgresRepository) Update(userID int, a Address) (Address, error) {
	a.UserID = userID
	err := r.db.QueryRow(updateAddressQuery,
		userID, a.HouseNo, a.Street, a.City, a.State, a.PostalCode, a.Country, a.UpdatedAt).Scan(&a.AddressID, &a.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return Address{}, ErrNotFound
		}
		return Address{}, err
	}
	return a, nil
}
