package services

import (
	"context"
	"sync"
	"time"

	"github.com/archeteam/workspaced/internal/core/domain"
	"github.com/archeteam/workspaced/internal/core/ports/driven"
)

// validCredential returns a credential usable for all scopes.
func validCredential() *domain.Credential {
	return &domain.Credential{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour),
		Scopes:       domain.AllScopes(),
	}
}

// expiredCredential returns a credential past its expiry but refreshable.
func expiredCredential() *domain.Credential {
	return &domain.Credential{
		AccessToken:  "stale-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(-time.Hour),
		Scopes:       domain.AllScopes(),
	}
}

// fakeCredStore is an in-memory credential store with injectable errors.
type fakeCredStore struct {
	mu      sync.Mutex
	cred    *domain.Credential
	loadErr error
	saveErr error
	saves   int
}

func (s *fakeCredStore) Load(_ context.Context) (*domain.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.cred, nil
}

func (s *fakeCredStore) Save(_ context.Context, cred *domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.cred = cred
	s.saves++
	return nil
}

func (s *fakeCredStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// fakeFlow is an auth flow with canned results and call counters.
type fakeFlow struct {
	mu sync.Mutex

	refreshCred *domain.Credential
	refreshErr  error
	refreshes   int

	issueCred *domain.Credential
	issueErr  error
	issued   int

	// issueDelay simulates a slow interactive flow.
	issueDelay time.Duration
}

func (f *fakeFlow) Refresh(_ context.Context, _ *domain.Credential) (*domain.Credential, error) {
	f.mu.Lock()
	f.refreshes++
	f.mu.Unlock()
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return f.refreshCred, nil
}

func (f *fakeFlow) IssueNew(_ context.Context, _ domain.ScopeSet) (*domain.Credential, error) {
	f.mu.Lock()
	f.issued++
	f.mu.Unlock()
	if f.issueDelay > 0 {
		time.Sleep(f.issueDelay)
	}
	if f.issueErr != nil {
		return nil, f.issueErr
	}
	return f.issueCred, nil
}

func (f *fakeFlow) refreshCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshes
}

func (f *fakeFlow) issueCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.issued
}

// fakeRemote hands out the configured fake gateways and records which
// credential each was built with.
type fakeRemote struct {
	mu    sync.Mutex
	mail  *fakeMailGateway
	cal   *fakeCalendarGateway
	drive *fakeDriveGateway
	built int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		mail:  &fakeMailGateway{},
		cal:   &fakeCalendarGateway{},
		drive: &fakeDriveGateway{},
	}
}

func (r *fakeRemote) Mail(_ context.Context, _ *domain.Credential) (driven.MailGateway, error) {
	r.mu.Lock()
	r.built++
	r.mu.Unlock()
	return r.mail, nil
}

func (r *fakeRemote) Calendar(_ context.Context, _ *domain.Credential) (driven.CalendarGateway, error) {
	r.mu.Lock()
	r.built++
	r.mu.Unlock()
	return r.cal, nil
}

func (r *fakeRemote) Drive(_ context.Context, _ *domain.Credential) (driven.DriveGateway, error) {
	r.mu.Lock()
	r.built++
	r.mu.Unlock()
	return r.drive, nil
}

func (r *fakeRemote) builtCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.built
}

type fakeMailGateway struct {
	sent    []domain.OutgoingMail
	sendErr error
}

func (g *fakeMailGateway) Send(_ context.Context, msg domain.OutgoingMail) error {
	if g.sendErr != nil {
		return g.sendErr
	}
	g.sent = append(g.sent, msg)
	return nil
}

type fakeCalendarGateway struct {
	calendars [][]domain.ResourceRef
	events    [][]domain.ResourceRef

	inserted         []domain.EventDetails
	insertedCalendar []domain.CalendarDetails
	deletedEvents    []string
	deletedCalendars []string
	insertErr        error
	deleteErr        error
}

func (g *fakeCalendarGateway) InsertEvent(_ context.Context, _ string, ev domain.EventDetails) error {
	if g.insertErr != nil {
		return g.insertErr
	}
	g.inserted = append(g.inserted, ev)
	return nil
}

func (g *fakeCalendarGateway) DeleteEvent(_ context.Context, _, eventID string) error {
	if g.deleteErr != nil {
		return g.deleteErr
	}
	g.deletedEvents = append(g.deletedEvents, eventID)
	return nil
}

func (g *fakeCalendarGateway) InsertCalendar(_ context.Context, cal domain.CalendarDetails) error {
	if g.insertErr != nil {
		return g.insertErr
	}
	g.insertedCalendar = append(g.insertedCalendar, cal)
	return nil
}

func (g *fakeCalendarGateway) DeleteCalendar(_ context.Context, calendarID string) error {
	if g.deleteErr != nil {
		return g.deleteErr
	}
	g.deletedCalendars = append(g.deletedCalendars, calendarID)
	return nil
}

func (g *fakeCalendarGateway) ListCalendars(_ context.Context, pageToken string) ([]domain.ResourceRef, string, error) {
	return pageFrom(g.calendars, pageToken)
}

func (g *fakeCalendarGateway) ListEvents(_ context.Context, _, pageToken string) ([]domain.ResourceRef, string, error) {
	return pageFrom(g.events, pageToken)
}

type fakeDriveGateway struct {
	// files is served for every listing regardless of scoping; tests
	// that care about parent scoping assert on recorded arguments.
	files [][]domain.ResourceRef

	createdFiles   []domain.FileUpload
	createdFolders []string
	deleted        []string
	shared         []string
	listCalls      int
	createErr      error

	// onShare observes the full grant passed to Share.
	onShare func(id string, grant domain.PermissionGrant)
}

func (g *fakeDriveGateway) CreateFile(_ context.Context, file domain.FileUpload, _ string) error {
	if g.createErr != nil {
		return g.createErr
	}
	g.createdFiles = append(g.createdFiles, file)
	return nil
}

func (g *fakeDriveGateway) CreateFolder(_ context.Context, name, _ string) error {
	if g.createErr != nil {
		return g.createErr
	}
	g.createdFolders = append(g.createdFolders, name)
	return nil
}

func (g *fakeDriveGateway) Delete(_ context.Context, id string) error {
	g.deleted = append(g.deleted, id)
	return nil
}

func (g *fakeDriveGateway) Share(_ context.Context, id string, grant domain.PermissionGrant) error {
	g.shared = append(g.shared, id)
	if g.onShare != nil {
		g.onShare(id, grant)
	}
	return nil
}

func (g *fakeDriveGateway) ListFiles(_ context.Context, _, pageToken string, _ bool) ([]domain.ResourceRef, string, error) {
	g.listCalls++
	return pageFrom(g.files, pageToken)
}

// pageFrom serves canned pages with numeric page tokens.
func pageFrom(pages [][]domain.ResourceRef, pageToken string) ([]domain.ResourceRef, string, error) {
	idx := 0
	if pageToken != "" {
		for i := range pages {
			if pageToken == pageTokenFor(i) {
				idx = i
				break
			}
		}
	}
	if idx >= len(pages) {
		return nil, "", nil
	}
	next := ""
	if idx+1 < len(pages) {
		next = pageTokenFor(idx + 1)
	}
	return pages[idx], next, nil
}

func pageTokenFor(i int) string {
	return string(rune('a' + i))
}
