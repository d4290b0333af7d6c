package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/sitekeeper/internal/client/models"
	"github.com/dmitrijs2005/sitekeeper/internal/client/store"
	"github.com/dmitrijs2005/sitekeeper/internal/common"
	"github.com/dmitrijs2005/sitekeeper/internal/logging"
)

// State is the process-wide console state: the signed-in session, the user's
// preferences, the active view and the four domain collections. Every setter
// writes through to the record store.
type State struct {
	mu sync.Mutex

	store RecordStore
	log   logging.Logger

	session  *models.Session
	language models.Language
	theme    models.Theme
	view     models.View

	projects  *Collection[models.Project]
	staff     *Collection[models.StaffMember]
	inventory *Collection[models.InventoryItem]
	tasks     *Collection[models.Task]
}

// StateOption customises NewState.
type StateOption func(*stateOptions)

type stateOptions struct {
	darkBackground func() bool
}

// WithDarkBackground replaces terminal background detection, which decides
// the theme when none has been stored.
func WithDarkBackground(fn func() bool) StateOption {
	return func(o *stateOptions) { o.darkBackground = fn }
}

// NewState loads preferences and collections from s, seeding whatever has
// never been stored.
func NewState(ctx context.Context, s RecordStore, log logging.Logger, opts ...StateOption) (*State, error) {
	o := stateOptions{darkBackground: lipgloss.HasDarkBackground}
	for _, opt := range opts {
		opt(&o)
	}

	st := &State{store: s, log: log, view: models.ViewDashboard}

	var theme string
	found, err := s.Read(ctx, store.KeyTheme, &theme)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	if st.theme, err = models.ParseTheme(theme); !found || err != nil {
		st.theme = models.ThemeLight
		if o.darkBackground() {
			st.theme = models.ThemeDark
		}
	}

	var lang string
	found, err = s.Read(ctx, store.KeyLanguage, &lang)
	if err != nil {
		return nil, fmt.Errorf("load language: %w", err)
	}
	if st.language, err = models.ParseLanguage(lang); !found || err != nil {
		st.language = models.DefaultLanguage
	}

	if st.projects, err = loadCollection(ctx, s, log, store.KeyProjects, models.DefaultProjects); err != nil {
		return nil, err
	}
	if st.staff, err = loadCollection(ctx, s, log, store.KeyStaff, models.DefaultStaff); err != nil {
		return nil, err
	}
	if st.inventory, err = loadCollection(ctx, s, log, store.KeyInventory, models.DefaultInventory); err != nil {
		return nil, err
	}
	if st.tasks, err = loadCollection(ctx, s, log, store.KeyTasks, models.DefaultTasks); err != nil {
		return nil, err
	}

	return st, nil
}

// Session returns a copy of the current session, or nil when signed out.
func (s *State) Session() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	cp := *s.session
	return &cp
}

// SetSession installs sess as the signed-in identity; nil signs out.
// Preferences and collections are left as they are.
func (s *State) SetSession(sess *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess == nil {
		s.session = nil
		s.view = models.ViewDashboard
		return
	}
	cp := *sess
	s.session = &cp
	s.view = models.ViewDashboard
}

func (s *State) Language() models.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

func (s *State) SetLanguage(ctx context.Context, l models.Language) {
	s.mu.Lock()
	s.language = l
	s.mu.Unlock()
	s.persistPreference(ctx, store.KeyLanguage, l)
}

func (s *State) Theme() models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *State) SetTheme(ctx context.Context, t models.Theme) {
	s.mu.Lock()
	s.theme = t
	s.mu.Unlock()
	s.persistPreference(ctx, store.KeyTheme, t)
}

func (s *State) ActiveView() models.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// SetActiveView switches screens if the signed-in role may open v.
func (s *State) SetActiveView(v models.View) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil || !models.CanView(s.session.Role, v) {
		return fmt.Errorf("view %s: %w", v, common.ErrForbidden)
	}
	s.view = v
	return nil
}

// Authorize checks that the signed-in role may perform a.
func (s *State) Authorize(a models.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil || !models.Can(s.session.Role, a) {
		return fmt.Errorf("%s: %w", a, common.ErrForbidden)
	}
	return nil
}

func (s *State) persistPreference(ctx context.Context, key string, v any) {
	if err := s.store.Write(ctx, key, v); err != nil {
		s.log.Warn(ctx, "preference not persisted", "key", key, "error", err)
	}
}
