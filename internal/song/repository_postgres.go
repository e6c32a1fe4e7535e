package song

import "database/sql"

type Repository interface {
	List() ([]Song, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Song, error) {
	rows, err := r.db.Query(`SELECT song_id, image, name, link FROM songs ORDER BY song_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Song, 0)
	for rows.Next() {
		var s Song
		if err := rows.Scan(&s.ID, &s.Image, &s.Name, &s.Link); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
