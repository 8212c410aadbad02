package repository

import (
	"context"
	"database/sql"
)

// PostRepo handles posts.
type PostRepo struct {
	db *sql.DB
}

func NewPostRepo(db *sql.DB) *PostRepo { return &PostRepo{db: db} }

// InsertTx upserts posts inside an existing transaction.
func (r *PostRepo) InsertTx(ctx context.Context, tx *sql.Tx, posts []Post) error {
	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO posts(id, profile_id, page, position, author, body, likes, posted_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		page=excluded.page,
		position=excluded.position,
		author=excluded.author,
		body=excluded.body,
		likes=excluded.likes,
		posted_at=excluded.posted_at;
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, p := range posts {
		if _, err := stmt.ExecContext(ctx, p.ID, p.ProfileID, p.Page, p.Position, p.Author, p.Body, p.Likes, p.PostedAt); err != nil {
			return err
		}
	}
	return nil
}

// ListByPage returns the posts of one page in display order.
func (r *PostRepo) ListByPage(ctx context.Context, profileID, page string) ([]Post, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, profile_id, page, position, author, body, likes, posted_at
	FROM posts WHERE profile_id = ? AND page = ?
	ORDER BY position`, profileID, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.ProfileID, &p.Page, &p.Position, &p.Author, &p.Body, &p.Likes, &p.PostedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// CountByPage returns the number of posts per page for a profile.
func (r *PostRepo) CountByPage(ctx context.Context, profileID string) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT page, COUNT(*) FROM posts WHERE profile_id = ? GROUP BY page`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var page string
		var n int
		if err := rows.Scan(&page, &n); err != nil {
			return nil, err
		}
		out[page] = n
	}
	return out, rows.Err()
}
