package tui

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/jask/profilescroll/internal/config"
	"github.com/jask/profilescroll/internal/database/repository"
	"github.com/jask/profilescroll/internal/profile"
)

// footerHeight is the status/help line under the pager.
const footerHeight = 1

// App is the bubbletea model for one profile screen.
type App struct {
	ctx    context.Context
	cfg    config.Config
	repos  Repos
	handle string
	log    logr.Logger

	ctrl  *profile.Controller
	data  Data
	theme Theme
	keys  KeyMap
	help  help.Model

	width      int
	height     int
	loaded     bool
	status     string
	statusErr  bool
	prompting  bool
	prompt     string
	settleSeq  int
	settleWait time.Duration
}

// Repos are the stores the app reads from and saves to. Any may be nil.
type Repos struct {
	Profiles *repository.ProfileRepo
	Posts    *repository.PostRepo
	Scroll   *repository.ScrollStateRepo
}

// Options configure New.
type Options struct {
	Config config.Config
	Repos  Repos
	Handle string
	Logger logr.Logger
}

type loadedMsg Data

type errMsg struct{ err error }

type savedMsg struct{}

type settleMsg struct{ seq int }

var errNoProfile = errors.New("no profile found; run `profilescroll seed`")

// New returns the app. Call Init (or Apply in tests) to load a profile.
func New(ctx context.Context, opts Options) *App {
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	ctrl := profile.New(profile.Options{
		FullHeight:      opts.Config.Header.FullHeight,
		CollapsedHeight: opts.Config.Header.CollapsedHeight,
		Logger:          log.WithName("profile"),
	})
	return &App{
		ctx:        ctx,
		cfg:        opts.Config,
		repos:      opts.Repos,
		handle:     opts.Handle,
		log:        log,
		ctrl:       ctrl,
		theme:      DefaultTheme(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		settleWait: time.Duration(opts.Config.Scroll.SettleMS) * time.Millisecond,
	}
}

// Controller exposes the scroll controller.
func (a *App) Controller() *profile.Controller { return a.ctrl }

func (a *App) Init() tea.Cmd {
	return a.loadProfile()
}

func (a *App) loadProfile() tea.Cmd {
	if a.repos.Profiles == nil || a.repos.Posts == nil {
		return nil
	}
	return func() tea.Msg {
		var (
			p   *repository.Profile
			err error
		)
		if a.handle != "" {
			p, err = a.repos.Profiles.ByHandle(a.ctx, a.handle)
		} else {
			p, err = a.repos.Profiles.First(a.ctx)
		}
		if err != nil {
			return errMsg{fmt.Errorf("load profile: %w", err)}
		}
		if p == nil {
			return errMsg{errNoProfile}
		}
		d := Data{Profile: *p, Posts: map[string][]repository.Post{}}
		for _, page := range []string{repository.PagePosts, repository.PageReplies, repository.PageMedia, repository.PageAbout} {
			posts, err := a.repos.Posts.ListByPage(a.ctx, p.ID, page)
			if err != nil {
				return errMsg{fmt.Errorf("load %s: %w", page, err)}
			}
			d.Posts[page] = posts
		}
		if a.repos.Scroll != nil {
			st, err := a.repos.Scroll.Load(a.ctx, p.ID)
			if err != nil {
				return errMsg{fmt.Errorf("load scroll state: %w", err)}
			}
			d.State = st
		}
		return loadedMsg(d)
	}
}

// Apply installs a loaded profile: builds the pages, registers them with the
// coordinator and restores any saved scroll state.
func (a *App) Apply(d Data) error {
	pages := BuildPages(d, a.theme.Content, a.cfg.Scroll.Overscroll)
	if err := a.ctrl.SetPages(pages); err != nil {
		return err
	}
	a.data = d
	a.loaded = true
	if d.State != nil {
		a.ctrl.Restore(profile.State{
			PageKey: d.State.ActivePage,
			Header:  d.State.HeaderOffset,
			Offsets: d.State.PageOffsets,
		})
	} else if a.cfg.UI.InitialPage != "" {
		if !a.ctrl.Selector().SelectMatch(a.cfg.UI.InitialPage) {
			a.setStatus(fmt.Sprintf("no tab matches %q", a.cfg.UI.InitialPage), true)
		}
	}
	if a.width > 0 {
		a.layout()
	}
	a.log.Info("profile loaded", "handle", d.Profile.Handle, "pages", len(pages))
	return nil
}

func (a *App) layout() {
	h := a.height - footerHeight
	if h < 1 {
		h = 1
	}
	a.ctrl.Layout(a.width, h)
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
}

func (a *App) saveCmd() tea.Cmd {
	if a.repos.Scroll == nil || !a.loaded {
		return nil
	}
	st := a.ctrl.Snapshot()
	row := repository.ScrollState{
		ProfileID:    a.data.Profile.ID,
		ActivePage:   st.PageKey,
		HeaderOffset: st.Header,
		PageOffsets:  st.Offsets,
	}
	return func() tea.Msg {
		if err := a.repos.Scroll.Save(a.ctx, row); err != nil {
			return errMsg{fmt.Errorf("save scroll state: %w", err)}
		}
		return savedMsg{}
	}
}

func (a *App) quit() tea.Cmd {
	save := a.saveCmd()
	a.ctrl.Close()
	if save == nil {
		return tea.Quit
	}
	return tea.Sequence(save, tea.Quit)
}

// afterScroll schedules a settle once the gesture has gone quiet.
func (a *App) afterScroll() tea.Cmd {
	if !a.ctrl.Overscrolled() {
		return nil
	}
	a.settleSeq++
	seq := a.settleSeq
	if a.settleWait <= 0 {
		a.ctrl.Settle()
		return nil
	}
	return tea.Tick(a.settleWait, func(time.Time) tea.Msg { return settleMsg{seq: seq} })
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		a.layout()
		return a, nil
	case loadedMsg:
		if err := a.Apply(Data(m)); err != nil {
			a.setStatus(err.Error(), true)
			a.log.Error(err, "apply profile")
		}
		return a, nil
	case errMsg:
		a.setStatus(m.err.Error(), true)
		a.log.Error(m.err, "background command failed")
		return a, nil
	case savedMsg:
		return a, nil
	case settleMsg:
		if m.seq == a.settleSeq {
			a.ctrl.Settle()
		}
		return a, nil
	case tea.MouseMsg:
		return a, a.handleMouse(m)
	case tea.KeyMsg:
		if a.prompting {
			return a, a.handlePromptKey(m)
		}
		return a, a.handleKey(m)
	}
	return a, nil
}

func (a *App) halfPage() float64 {
	return math.Max(1, float64(a.ctrl.PagerHeight()/2))
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	sel := a.ctrl.Selector()
	pg := a.ctrl.Pager()
	a.setStatus("", false)
	switch {
	case key.Matches(m, a.keys.Quit):
		return a.quit()
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return nil
	case key.Matches(m, a.keys.Find):
		a.prompting = true
		a.prompt = ""
		return nil
	case key.Matches(m, a.keys.Down):
		a.ctrl.ScrollActive(1)
	case key.Matches(m, a.keys.Up):
		a.ctrl.ScrollActive(-1)
	case key.Matches(m, a.keys.HalfDown):
		a.ctrl.ScrollActive(a.halfPage())
	case key.Matches(m, a.keys.HalfUp):
		a.ctrl.ScrollActive(-a.halfPage())
	case key.Matches(m, a.keys.Top):
		if s := pg.CurrentSurface(); s != nil {
			a.ctrl.ScrollActive(-(s.Offset().Y + a.ctrl.HeaderOffset() + 1))
		}
	case key.Matches(m, a.keys.Bottom):
		if s := pg.CurrentSurface(); s != nil {
			a.ctrl.ScrollActive(a.ctrl.CollapseRange() + float64(a.contentLines()))
		}
	case key.Matches(m, a.keys.HeaderDown):
		a.ctrl.ScrollHeader(1)
	case key.Matches(m, a.keys.HeaderUp):
		a.ctrl.ScrollHeader(-1)
	case key.Matches(m, a.keys.NextPage):
		pg.Next()
	case key.Matches(m, a.keys.PrevPage):
		pg.Prev()
	case key.Matches(m, a.keys.NextTab):
		if n := pg.Len(); n > 0 {
			_ = sel.Select((sel.Selected() + 1) % n)
		}
	case key.Matches(m, a.keys.PrevTab):
		if n := pg.Len(); n > 0 {
			_ = sel.Select((sel.Selected() - 1 + n) % n)
		}
	case key.Matches(m, a.keys.JumpTab):
		i := int(m.String()[0] - '1')
		if err := sel.Select(i); err != nil {
			a.setStatus(fmt.Sprintf("no tab %d", i+1), true)
		}
	default:
		return nil
	}
	return a.afterScroll()
}

func (a *App) contentLines() int {
	s := a.ctrl.Pager().CurrentSurface()
	if s == nil {
		return 0
	}
	if sc, ok := s.(interface{ MaxOffset() float64 }); ok {
		return int(sc.MaxOffset()) + 1
	}
	return a.ctrl.PagerHeight()
}

func (a *App) handlePromptKey(m tea.KeyMsg) tea.Cmd {
	switch m.Type {
	case tea.KeyEsc:
		a.prompting = false
		a.prompt = ""
	case tea.KeyEnter:
		q := strings.TrimSpace(a.prompt)
		a.prompting = false
		a.prompt = ""
		if q == "" {
			return nil
		}
		if !a.ctrl.Selector().SelectMatch(q) {
			a.setStatus(fmt.Sprintf("no tab matches %q", q), true)
			return nil
		}
		a.setStatus("", false)
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if r := []rune(a.prompt); len(r) > 0 {
			a.prompt = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		a.prompt += " "
	case tea.KeyRunes:
		a.prompt += string(m.Runes)
	case tea.KeyCtrlC:
		return a.quit()
	}
	return nil
}

func (a *App) handleMouse(m tea.MouseMsg) tea.Cmd {
	if m.Action != tea.MouseActionPress {
		return nil
	}
	step := a.cfg.Scroll.WheelStep
	if step <= 0 {
		step = 1
	}
	onHeader := m.Y < a.visibleHeader()
	switch m.Button {
	case tea.MouseButtonWheelDown:
		if onHeader {
			a.ctrl.ScrollHeader(step)
		} else {
			a.ctrl.ScrollActive(step)
		}
	case tea.MouseButtonWheelUp:
		if onHeader {
			a.ctrl.ScrollHeader(-step)
		} else {
			a.ctrl.ScrollActive(-step)
		}
	case tea.MouseButtonLeft:
		if m.Y == a.visibleHeader() {
			if i, ok := a.tabAt(m.X); ok {
				_ = a.ctrl.Selector().Select(i)
			}
		}
		return nil
	default:
		return nil
	}
	return a.afterScroll()
}
