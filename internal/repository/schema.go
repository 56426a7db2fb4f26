package repository

import (
	"context"
	"time"
)

// EnsureSchema สร้างตารางที่ระบบใช้ถ้ายังไม่มี เรียกจาก cmd/seed
func (r *Repository) EnsureSchema() error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS documents (
			collection text NOT NULL,
			key text NOT NULL,
			doc jsonb NOT NULL,
			saved_at timestamptz NOT NULL DEFAULT now(),
			PRIMARY KEY (collection, key)
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS staff_accounts (
			staff_id text PRIMARY KEY,
			password text NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now(),
			last_login timestamptz
		)
		`,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	for _, query := range queries {
		if _, err := r.dbpool.ExecContext(ctx, query); err != nil {
			return err
		}
	}

	return nil
}
