package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jask/profilescroll/internal/database/repository"
)

// DemoHandle is the handle of the seeded profile.
const DemoHandle = "gopher"

var seedTopics = []string{
	"goroutines", "channels", "interfaces", "generics", "the scheduler",
	"escape analysis", "slices", "maps", "context cancellation", "error wrapping",
	"table tests", "fuzzing", "benchmarks", "the race detector", "pprof",
}

func seedID(kind string, parts ...any) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+fmt.Sprintf("%v", parts))).String()
}

// SeedDefaults ensures the demo profile and its pages exist. It is idempotent
// and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) (*repository.Profile, error) {
	profiles := repository.NewProfileRepo(db)
	existing, err := profiles.ByHandle(ctx, DemoHandle)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	p := repository.Profile{
		ID:          seedID("profile", DemoHandle),
		Handle:      DemoHandle,
		DisplayName: "The Go Gopher",
		Bio:         "Writes small programs that talk to each other. Opinions are mostly about naming.",
		Location:    "Everywhere a binary runs",
		Followers:   12840,
		Following:   64,
	}
	if err := profiles.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("seed profile: %w", err)
	}

	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	var posts []repository.Post
	add := func(page string, n int, author string, body func(i int) string) {
		for i := 0; i < n; i++ {
			posts = append(posts, repository.Post{
				ID:        seedID("post", page, i),
				ProfileID: p.ID,
				Page:      page,
				Position:  i,
				Author:    author,
				Body:      body(i),
				Likes:     (i*37 + len(page)*11) % 500,
				PostedAt:  base.Add(-time.Duration(i) * 7 * time.Hour),
			})
		}
	}
	add(repository.PagePosts, 40, "@"+DemoHandle, func(i int) string {
		return fmt.Sprintf("Thread %d on %s: keep the happy path left-aligned and return early.", i+1, seedTopics[i%len(seedTopics)])
	})
	add(repository.PageReplies, 25, "@"+DemoHandle, func(i int) string {
		return fmt.Sprintf("Replying about %s: it depends, but usually the simplest thing works.", seedTopics[(i*3)%len(seedTopics)])
	})
	add(repository.PageMedia, 30, "@"+DemoHandle, func(i int) string {
		return fmt.Sprintf("diagram-%02d.png %s", i+1, seedTopics[(i*7)%len(seedTopics)])
	})
	add(repository.PageAbout, 12, "@"+DemoHandle, func(i int) string {
		return fmt.Sprintf("Note %d. Favourite topic this week: %s.", i+1, seedTopics[(i*5)%len(seedTopics)])
	})

	postRepo := repository.NewPostRepo(db)
	if err := WithTx(ctx, db, func(tx *sql.Tx) error {
		return postRepo.InsertTx(ctx, tx, posts)
	}); err != nil {
		return nil, fmt.Errorf("seed posts: %w", err)
	}
	return profiles.ByHandle(ctx, DemoHandle)
}
