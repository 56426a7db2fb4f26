package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/icu-ward-dev/shift-manager/backend/internal/config"
	"github.com/icu-ward-dev/shift-manager/backend/internal/domain"
	"github.com/icu-ward-dev/shift-manager/backend/internal/repository"
	"github.com/icu-ward-dev/shift-manager/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	flag.IntVar(&op, "op", 0, "คำสั่งที่จะทำ (1: สร้างตาราง, 2: ลงทะเบียนบัญชีเจ้าหน้าที่, 3: สร้างร่างตารางเวรตัวอย่าง)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("โหลดค่าตั้งค่าไม่สำเร็จ", "error", err)
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("สร้าง connection pool ไม่สำเร็จ", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open แค่สร้าง pool ยังไม่ต่อฐานข้อมูลจริง ต้อง ping เองก่อน
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("เชื่อมต่อฐานข้อมูลไม่สำเร็จ", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)
	roster := domain.DefaultRoster()

	switch op {
	case 1:
		if err := repo.EnsureSchema(); err != nil {
			slog.Error("สร้างตารางไม่สำเร็จ", "error", err)
			return
		}
		slog.Info("สร้างตารางแล้ว")
	case 2:
		seed.SeedStaffAccounts(repo, roster, cfg.Seed.Account.Password)
	case 3:
		seed.SeedDemoDraft(repo, roster)
	default:
		slog.Error("ไม่ได้ระบุคำสั่งหรือคำสั่งไม่ถูกต้อง")
	}
}
