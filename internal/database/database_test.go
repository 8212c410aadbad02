package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/profilescroll/internal/database/repository"
)

func openTestDB(t *testing.T) (string, func() context.Context) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "test.db")
	return path, func() context.Context {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		t.Cleanup(cancel)
		return ctx
	}
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	t.Parallel()

	path, newCtx := openTestDB(t)
	ctx := newCtx()
	db, err := OpenMigrated(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	first, err := SeedDefaults(ctx, db)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, DemoHandle, first.Handle)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := SeedDefaults(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	counts, err := repository.NewPostRepo(db).CountByPage(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		repository.PagePosts:   40,
		repository.PageReplies: 25,
		repository.PageMedia:   30,
		repository.PageAbout:   12,
	}, counts)

	all, err := repository.NewProfileRepo(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMigrationsRerun(t *testing.T) {
	t.Parallel()

	path, _ := openTestDB(t)
	db, err := OpenMigrated(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	require.NoError(t, RunMigrations(path))
}

func TestPostsInPageOrder(t *testing.T) {
	t.Parallel()

	path, newCtx := openTestDB(t)
	ctx := newCtx()
	db, err := OpenMigrated(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	p, err := SeedDefaults(ctx, db)
	require.NoError(t, err)

	media, err := repository.NewPostRepo(db).ListByPage(ctx, p.ID, repository.PageMedia)
	require.NoError(t, err)
	require.Len(t, media, 30)
	for i, m := range media {
		assert.Equal(t, i, m.Position)
		assert.Equal(t, repository.PageMedia, m.Page)
	}
	assert.Contains(t, media[0].Body, "diagram-01.png")
	assert.False(t, media[0].PostedAt.IsZero())
}

func TestScrollStateRoundTrip(t *testing.T) {
	t.Parallel()

	path, newCtx := openTestDB(t)
	ctx := newCtx()
	db, err := OpenMigrated(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	p, err := SeedDefaults(ctx, db)
	require.NoError(t, err)
	repo := repository.NewScrollStateRepo(db)

	none, err := repo.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, repo.Save(ctx, repository.ScrollState{
		ProfileID:    p.ID,
		ActivePage:   repository.PageReplies,
		HeaderOffset: 4,
		PageOffsets:  map[string]float64{repository.PagePosts: 12, repository.PageReplies: 3},
	}))
	require.NoError(t, repo.Save(ctx, repository.ScrollState{
		ProfileID:    p.ID,
		ActivePage:   repository.PageMedia,
		HeaderOffset: 6,
		PageOffsets:  map[string]float64{repository.PageMedia: 7},
	}))

	got, err := repo.Load(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, repository.PageMedia, got.ActivePage)
	assert.Equal(t, 6.0, got.HeaderOffset)
	assert.Equal(t, map[string]float64{repository.PageMedia: 7}, got.PageOffsets, "save replaces old offsets")

	require.NoError(t, repo.Clear(ctx, p.ID))
	none, err = repo.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestProfileLookups(t *testing.T) {
	t.Parallel()

	path, newCtx := openTestDB(t)
	ctx := newCtx()
	db, err := OpenMigrated(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	profiles := repository.NewProfileRepo(db)
	empty, err := profiles.First(ctx)
	require.NoError(t, err)
	assert.Nil(t, empty)

	missing, err := profiles.ByHandle(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = SeedDefaults(ctx, db)
	require.NoError(t, err)
	first, err := profiles.First(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, DemoHandle, first.Handle)
}

func TestSeedIDStable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, seedID("post", "media", 3), seedID("post", "media", 3))
	assert.NotEqual(t, seedID("post", "media", 3), seedID("post", "media", 4))
	assert.Len(t, seedID("profile", DemoHandle), 36)
}

func TestWithTxRollsBack(t *testing.T) {
	t.Parallel()

	path, newCtx := openTestDB(t)
	ctx := newCtx()
	db, err := OpenMigrated(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	p, err := SeedDefaults(ctx, db)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE profile_id = ?`, p.ID); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	counts, err := repository.NewPostRepo(db).CountByPage(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, counts[repository.PagePosts])
}
