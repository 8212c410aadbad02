package repository

import (
	"context"
	"database/sql"
	"errors"
)

// ProfileRepo handles profiles.
type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{db: db} }

func (r *ProfileRepo) Upsert(ctx context.Context, p Profile) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO profiles(id, handle, display_name, bio, location, followers, following)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		handle=excluded.handle,
		display_name=excluded.display_name,
		bio=excluded.bio,
		location=excluded.location,
		followers=excluded.followers,
		following=excluded.following;
	`, p.ID, p.Handle, p.DisplayName, p.Bio, p.Location, p.Followers, p.Following)
	return err
}

const profileColumns = `id, handle, display_name, bio, location, followers, following, created_at`

func scanProfile(row interface{ Scan(...any) error }) (*Profile, error) {
	var p Profile
	if err := row.Scan(&p.ID, &p.Handle, &p.DisplayName, &p.Bio, &p.Location, &p.Followers, &p.Following, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// ByHandle returns the profile with handle, or nil if there is none.
func (r *ProfileRepo) ByHandle(ctx context.Context, handle string) (*Profile, error) {
	return scanProfile(r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE handle = ?`, handle))
}

// First returns the oldest profile, or nil if the table is empty.
func (r *ProfileRepo) First(ctx context.Context) (*Profile, error) {
	return scanProfile(r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles ORDER BY created_at, handle LIMIT 1`))
}

func (r *ProfileRepo) List(ctx context.Context) ([]Profile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+profileColumns+` FROM profiles ORDER BY handle`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}
