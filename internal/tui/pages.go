package tui

import (
	"fmt"
	"strings"

	"github.com/jask/profilescroll/internal/database/repository"
	"github.com/jask/profilescroll/internal/pager"
	"github.com/jask/profilescroll/internal/surface"
)

// Data is everything the view needs to draw one profile.
type Data struct {
	Profile repository.Profile
	Posts   map[string][]repository.Post
	State   *repository.ScrollState
}

// BuildPages turns stored posts into pager pages. Posts and replies are
// lists, media is a table and about is a plain text view.
func BuildPages(d Data, styles surface.Styles, overscroll float64) []pager.Page {
	opt := surface.WithOverscroll(overscroll)

	items := func(page string) []surface.Item {
		posts := d.Posts[page]
		out := make([]surface.Item, len(posts))
		for i, p := range posts {
			out[i] = surface.Item{
				ID:    p.ID,
				Title: p.Author,
				Meta:  fmt.Sprintf("· %s · ♥ %d", p.PostedAt.Format("Jan 2"), p.Likes),
				Body:  p.Body,
			}
		}
		return out
	}

	postsView := surface.NewListView(items(repository.PagePosts), opt)
	postsView.SetStyles(styles)
	repliesView := surface.NewListView(items(repository.PageReplies), opt)
	repliesView.SetStyles(styles)

	media := d.Posts[repository.PageMedia]
	rows := make([][]string, len(media))
	for i, p := range media {
		file, topic, _ := strings.Cut(p.Body, " ")
		rows[i] = []string{fmt.Sprintf("%d", p.Position+1), file, topic, fmt.Sprintf("%d", p.Likes)}
	}
	mediaView := surface.NewTableView([]string{"#", "File", "Topic", "Likes"}, rows, opt)
	mediaView.SetStyles(styles)

	var about strings.Builder
	about.WriteString(d.Profile.Bio)
	for _, p := range d.Posts[repository.PageAbout] {
		about.WriteString("\n\n")
		about.WriteString(p.Body)
	}
	aboutView := surface.NewTextView(about.String(), opt)
	aboutView.SetStyles(styles)

	return []pager.Page{
		pager.ListPage(repository.PagePosts, "Posts", postsView),
		pager.ListPage(repository.PageReplies, "Replies", repliesView),
		pager.TablePage(repository.PageMedia, "Media", mediaView),
		pager.ViewPage(repository.PageAbout, "About", aboutView),
	}
}

// headerLines renders the profile header at full height.
func headerLines(p repository.Profile, t Theme, width, height int) []string {
	if height <= 0 {
		return nil
	}
	banner := t.Banner.Width(width).Render("")
	lines := []string{banner}
	if height > 3 {
		lines = append(lines, banner)
	}
	lines = append(lines,
		t.Name.Render(p.DisplayName)+" "+t.Handle.Render("@"+p.Handle),
		t.Bio.Render(p.Bio),
	)
	if p.Location != "" {
		lines = append(lines, t.Meta.Render("⌖ "+p.Location))
	}
	lines = append(lines,
		t.Stat.Render(fmt.Sprintf("%d", p.Following))+t.Meta.Render(" Following  ")+
			t.Stat.Render(fmt.Sprintf("%d", p.Followers))+t.Meta.Render(" Followers"),
	)
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines[:height]
}
