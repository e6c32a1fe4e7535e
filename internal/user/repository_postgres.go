package user

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	getUserByIDQuery = `
        SELECT user_id, name, email, password, created_at
        FROM users
        WHERE user_id = $1
    `
	getUserByEmailQuery = `
        SELECT user_id, name, email, password, created_at
        FROM users
        WHERE email = $1
    `
	insertUserQuery = `
        INSERT INTO users (name, email, password, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING user_id
    `
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	var u User
	err := r.db.QueryRow(getUserByIDQuery, id).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	var u User
	err := r.db.QueryRow(getUserByEmailQuery, email).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) Create(u User) (User, error) {
	var id int
	err := r.db.QueryRow(insertUserQuery, u.Name, u.Email, u.Password, u.CreatedAt).Scan(&id)
	if err != nil {
		return User{}, err
	}

	u.ID = id
	return u, nil
}
