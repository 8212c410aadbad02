package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ScrollStateRepo persists header and page offsets between runs.
type ScrollStateRepo struct {
	db *sql.DB
}

func NewScrollStateRepo(db *sql.DB) *ScrollStateRepo { return &ScrollStateRepo{db: db} }

// Save replaces the stored state for st.ProfileID.
func (r *ScrollStateRepo) Save(ctx context.Context, st ScrollState) error {
	if st.UpdatedAt.IsZero() {
		st.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
	INSERT INTO scroll_state(profile_id, active_page, header_offset, updated_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(profile_id) DO UPDATE SET
		active_page=excluded.active_page,
		header_offset=excluded.header_offset,
		updated_at=excluded.updated_at;
	`, st.ProfileID, st.ActivePage, st.HeaderOffset, st.UpdatedAt); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM page_offsets WHERE profile_id = ?`, st.ProfileID); err != nil {
		return err
	}
	for page, y := range st.PageOffsets {
		if _, err := tx.ExecContext(ctx, `INSERT INTO page_offsets(profile_id, page, offset_y) VALUES (?, ?, ?)`, st.ProfileID, page, y); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load returns the stored state for profileID, or nil if none was saved.
func (r *ScrollStateRepo) Load(ctx context.Context, profileID string) (*ScrollState, error) {
	st := ScrollState{ProfileID: profileID, PageOffsets: map[string]float64{}}
	row := r.db.QueryRowContext(ctx, `SELECT active_page, header_offset, updated_at FROM scroll_state WHERE profile_id = ?`, profileID)
	if err := row.Scan(&st.ActivePage, &st.HeaderOffset, &st.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, `SELECT page, offset_y FROM page_offsets WHERE profile_id = ?`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var page string
		var y float64
		if err := rows.Scan(&page, &y); err != nil {
			return nil, err
		}
		st.PageOffsets[page] = y
	}
	return &st, rows.Err()
}

// Clear removes the stored state for profileID.
func (r *ScrollStateRepo) Clear(ctx context.Context, profileID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM scroll_state WHERE profile_id = ?`, profileID)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM page_offsets WHERE profile_id = ?`, profileID)
	return err
}
