package repository

import (
	"context"
	"time"

	"github.com/icu-ward-dev/shift-manager/backend/internal/domain"
)

func (r *Repository) CreateStaffAccount(account *domain.StaffAccount) error {
	query := `
		INSERT INTO staff_accounts (staff_id, password)
		VALUES ($1, $2)
		RETURNING created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, account.StaffID, account.Password).Scan(&account.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetStaffAccount(staffID string) (*domain.StaffAccount, error) {
	query := `
		SELECT password, created_at, last_login
		FROM staff_accounts WHERE staff_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	account := &domain.StaffAccount{
		StaffID: staffID,
	}

	dst := []any{&account.Password, &account.CreatedAt, &account.LastLogin}
	if err := r.dbpool.QueryRowContext(ctx, query, staffID).Scan(dst...); err != nil {
		return nil, err
	}

	return account, nil
}

func (r *Repository) UpdateStaffLastLogin(staffID string, at time.Time) error {
	query := `
		UPDATE staff_accounts SET last_login = $1 WHERE staff_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, at, staffID); err != nil {
		return err
	}

	return nil
}
