package concert

import "database/sql"

type Repository interface {
	List() ([]Concert, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Concert, error) {
	rows, err := r.db.Query(`SELECT concert_id, image, name, date, price FROM concerts ORDER BY concert_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Concert, 0)
	for rows.Next() {
		var con Concert
		if err := rows.Scan(&con.ID, &con.Image, &con.Name, &con.Date, &con.Price); err != nil {
			return nil, err
		}
		out = append(out, con)
	}
	return out, rows.Err()
}
