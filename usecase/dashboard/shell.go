package dashboard

import (
	"sync"

	"github.com/immerseindia/backend/domain"
)

// Section is one of the dashboard's content areas.
type Section string

const (
	SectionExperiences Section = "experiences"
	SectionItineraries Section = "itineraries"
	SectionImages      Section = "images"
	SectionSearch      Section = "search"
)

// selectable sections; the search section is entered only by submitting a
// non-empty query.
func (s Section) selectable() bool {
	switch s {
	case SectionExperiences, SectionItineraries, SectionImages:
		return true
	}
	return false
}

// State is an immutable view of one shell.
type State struct {
	Section Section                `json:"section"`
	Region  domain.RegionSelection `json:"region"`
	Query   string                 `json:"query"`
}

// Shell is the per-session dashboard state machine. Admin and user sessions
// run structurally identical shells; capability differences live at the
// route layer. Initial state: experiences / All.
type Shell struct {
	mu      sync.Mutex
	section Section
	region  domain.RegionSelection
	query   string
}

func NewShell() *Shell {
	return &Shell{
		section: SectionExperiences,
		region:  RegionDefault,
	}
}

// RegionDefault is the region selection a fresh shell starts with.
const RegionDefault = domain.RegionAll

func (s *Shell) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{Section: s.section, Region: s.region, Query: s.query}
}

// SetSection activates one of the content sections. The last search query is
// kept so returning to the search section reuses it.
func (s *Shell) SetSection(section Section) (State, error) {
	if !section.selectable() {
		return State{}, domain.WrapError(domain.ErrCodeInvalid, "unknown section", nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.section = section
	return State{Section: s.section, Region: s.region, Query: s.query}, nil
}

// SetRegion changes the region filter. It applies to the content sections
// and is suppressed while the search section is active.
func (s *Shell) SetRegion(region domain.RegionSelection) (State, error) {
	if !region.Valid() {
		return State{}, domain.WrapError(domain.ErrCodeInvalid, "unknown region", nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.region = region
	return State{Section: s.section, Region: s.region, Query: s.query}, nil
}

// SubmitSearch transitions to the search section for a non-empty query.
// An empty query is rejected and leaves the shell untouched.
func (s *Shell) SubmitSearch(rawQuery string) (State, error) {
	query := domain.NormalizeQuery(rawQuery)
	if query == "" {
		return State{}, domain.WrapError(domain.ErrCodeInvalid, "search query is empty", nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.section = SectionSearch
	s.query = query
	return State{Section: s.section, Region: s.region, Query: s.query}, nil
}

// Registry hands out one shell per session. Logging out drops the shell;
// the next login starts from the initial state.
type Registry struct {
	mu     sync.Mutex
	shells map[string]*Shell
}

func NewRegistry() *Registry {
	return &Registry{shells: make(map[string]*Shell)}
}

func (r *Registry) Shell(sessionID string) *Shell {
	r.mu.Lock()
	defer r.mu.Unlock()
	shell, ok := r.shells[sessionID]
	if !ok {
		shell = NewShell()
		r.shells[sessionID] = shell
	}
	return shell
}

func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.shells, sessionID)
}
