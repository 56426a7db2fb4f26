package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/icu-ward-dev/shift-manager/backend/internal/domain"
)

// PutDocument เขียนเอกสารทั้งฉบับทับของเดิม (upsert ตาม collection, key)
// ไม่มีการ merge รายฟิลด์ ผู้เรียกต้อง clean ข้อมูลก่อนส่งมา
func (r *Repository) PutDocument(collection, key string, value any) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO documents (collection, key, doc, saved_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (collection, key) DO UPDATE
		SET doc = EXCLUDED.doc, saved_at = EXCLUDED.saved_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, collection, key, doc); err != nil {
		return err
	}

	return nil
}

// GetDocument อ่านเอกสารหนึ่งฉบับ คืน found = false เมื่อยังไม่เคยบันทึก
func (r *Repository) GetDocument(collection, key string, dst any) (bool, error) {
	query := `
		SELECT doc FROM documents WHERE collection = $1 AND key = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var doc []byte
	if err := r.dbpool.QueryRowContext(ctx, query, collection, key).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(doc, dst); err != nil {
		return false, err
	}

	return true, nil
}

func (r *Repository) SaveScheduleDraft(draft *domain.ScheduleDraft) error {
	draft.Schedule = domain.CleanScheduleEntries(draft.Schedule)
	draft.SavedAt = time.Now()
	return r.PutDocument(domain.CollectionDrafts, domain.KeySchedule, draft)
}

// GetScheduleDraft คืนร่างตารางเวร เมื่อยังไม่เคยบันทึกจะได้ร่างเปล่า
// ไม่ใช่ error
func (r *Repository) GetScheduleDraft() (*domain.ScheduleDraft, error) {
	draft := &domain.ScheduleDraft{
		Schedule:       domain.ScheduleEntries{},
		CustomHolidays: []domain.CustomHoliday{},
	}
	if _, err := r.GetDocument(domain.CollectionDrafts, domain.KeySchedule, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (r *Repository) SaveAssignmentsDraft(draft *domain.AssignmentsDraft) error {
	draft.Assignments = domain.CleanAssignments(draft.Assignments)
	draft.SavedAt = time.Now()
	return r.PutDocument(domain.CollectionDrafts, domain.KeyAssignments, draft)
}

func (r *Repository) GetAssignmentsDraft() (*domain.AssignmentsDraft, error) {
	draft := &domain.AssignmentsDraft{
		Assignments: []domain.WorkAssignment{},
	}
	if _, err := r.GetDocument(domain.CollectionDrafts, domain.KeyAssignments, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// PublishDrafts รวมร่างทั้งสองฉบับเป็น snapshot เผยแพร่ฉบับเดียวใน
// transaction เดียว เพื่อให้เจ้าหน้าที่ไม่มีทางเห็นตารางเวรใหม่คู่กับ
// การมอบหมายงานเก่า
func (r *Repository) PublishDrafts() (*domain.PublishedSnapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	schedule := &domain.ScheduleDraft{
		Schedule:       domain.ScheduleEntries{},
		CustomHolidays: []domain.CustomHoliday{},
	}
	if err := r.getDocumentTx(ctx, tx, domain.CollectionDrafts, domain.KeySchedule, schedule); err != nil {
		return nil, err
	}

	assignments := &domain.AssignmentsDraft{
		Assignments: []domain.WorkAssignment{},
	}
	if err := r.getDocumentTx(ctx, tx, domain.CollectionDrafts, domain.KeyAssignments, assignments); err != nil {
		return nil, err
	}

	snapshot := domain.BuildPublishedSnapshot(schedule, assignments, time.Now())

	doc, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO documents (collection, key, doc, saved_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (collection, key) DO UPDATE
		SET doc = EXCLUDED.doc, saved_at = EXCLUDED.saved_at
	`
	if _, err := tx.ExecContext(ctx, query, domain.CollectionPublished, domain.KeyCurrent, doc); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (r *Repository) getDocumentTx(ctx context.Context, tx *sql.Tx, collection, key string, dst any) error {
	query := `
		SELECT doc FROM documents WHERE collection = $1 AND key = $2
	`

	var doc []byte
	if err := tx.QueryRowContext(ctx, query, collection, key).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}

	return json.Unmarshal(doc, dst)
}

// GetPublishedSnapshot คืน snapshot ที่เผยแพร่ล่าสุด เมื่อยังไม่เคย
// เผยแพร่จะได้ snapshot เปล่าและ published = false
func (r *Repository) GetPublishedSnapshot() (*domain.PublishedSnapshot, bool, error) {
	snapshot := &domain.PublishedSnapshot{
		PublishedSchedule:       domain.ScheduleEntries{},
		PublishedAssignments:    []domain.WorkAssignment{},
		PublishedCustomHolidays: []domain.CustomHoliday{},
	}
	found, err := r.GetDocument(domain.CollectionPublished, domain.KeyCurrent, snapshot)
	if err != nil {
		return nil, false, err
	}
	return snapshot, found, nil
}
