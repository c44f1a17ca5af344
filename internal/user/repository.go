package user

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	createUser(user *User) error
	getUserByEmail(email string) (*User, error)
	getUserByID(id string) (*User, error)
	updateUserPassword(userID, newPasswordHash string) error
	deleteUser(userID string) error
	deleteUserData(userID string) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) createUser(user *User) error {
	query := `
		INSERT INTO users (email, name, password_hash, security_question, security_answer_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(query, user.Email, user.Name, user.PasswordHash, user.SecurityQuestion, user.SecurityAnswerHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("could not create user: %v", err)
	}
	return nil
}

func (r *userRepository) getUserByEmail(email string) (*User, error) {
	query := `
		SELECT id, email, name, password_hash, COALESCE(security_question, ''), COALESCE(security_answer_hash, ''), created_at
		FROM users
		WHERE email = $1
	`

	var u User
	err := r.db.QueryRow(query, email).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.SecurityQuestion, &u.SecurityAnswerHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}

	return &u, nil
}

func (r *userRepository) getUserByID(id string) (*User, error) {
	query := `
		SELECT id, email, name, password_hash, COALESCE(security_question, ''), COALESCE(security_answer_hash, ''), created_at
		FROM users
		WHERE id = $1
	`

	var u User
	err := r.db.QueryRow(query, id).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.SecurityQuestion, &u.SecurityAnswerHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}

	return &u, nil
}

func (r *userRepository) updateUserPassword(userID, newPasswordHash string) error {
	_, err := r.db.Exec(`UPDATE users SET password_hash = $1 WHERE id = $2`, newPasswordHash, userID)
	if err != nil {
		return fmt.Errorf("could not update password: %v", err)
	}
	return nil
}

// deleteUser removes the account and everything it owns. Child rows go
// first so the user row never leaves orphans behind; the whole sequence is
// one transaction.
func (r *userRepository) deleteUser(userID string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin delete transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM expenses WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("could not delete user expenses: %v", err)
	}
	if _, err := tx.Exec(`DELETE FROM categories WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("could not delete user categories: %v", err)
	}
	if _, err := tx.Exec(`DELETE FROM users WHERE id = $1`, userID); err != nil {
		return fmt.Errorf("could not delete user: %v", err)
	}

	return tx.Commit()
}

// deleteUserData wipes expenses and categories but keeps the account row.
func (r *userRepository) deleteUserData(userID string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin delete transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM expenses WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("could not delete user expenses: %v", err)
	}
	if _, err := tx.Exec(`DELETE FROM categories WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("could not delete user categories: %v", err)
	}

	return tx.Commit()
}
