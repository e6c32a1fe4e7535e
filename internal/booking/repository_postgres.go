package booking

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const insertBookingQuery = `
    INSERT INTO bookings (event, name, age, email)
    VALUES ($1,$2,$3,$4)
    RETURNING booking_id
`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(b Booking) (Booking, error) {
	if err := r.db.QueryRow(insertBookingQuery, b.Event, b.Name, b.Age, b.Email).Scan(&b.ID); err != nil {
		return Booking{}, err
	}
	return b, nil
}
