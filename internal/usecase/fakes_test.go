package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/internal/data/repository"

	"github.com/google/uuid"
)

type fakeUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUsers(users ...*entity.User) *fakeUsers {
	f := &fakeUsers{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if strings.EqualFold(u.Email, user.Email) {
			return fmt.Errorf("create user %s: %w", user.Email, repository.ErrDuplicate)
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUsers) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id], nil
}

func (f *fakeUsers) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

type fakeSessions struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (f *fakeSessions) Create(ctx context.Context, session *entity.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessions) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[token]
	if !ok || !s.Live(time.Now()) {
		return nil, nil
	}
	return s, nil
}

func (f *fakeSessions) Revoke(ctx context.Context, token uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[token]
	if !ok || s.RevokedAt != nil {
		return fmt.Errorf("revoke session: %w", repository.ErrNotFound)
	}
	now := time.Now()
	s.RevokedAt = &now
	return nil
}

func (f *fakeSessions) CleanExpiredSessions(ctx context.Context) (int64, error) {
	return 0, nil
}

type fakeGames struct {
	mu    sync.Mutex
	games map[uuid.UUID]*entity.Game
}

func newFakeGames(games ...*entity.Game) *fakeGames {
	f := &fakeGames{games: make(map[uuid.UUID]*entity.Game)}
	for _, g := range games {
		f.games[g.ID] = g
	}
	return f
}

func (f *fakeGames) Create(ctx context.Context, game *entity.Game) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, g := range f.games {
		if g.Name == game.Name {
			return fmt.Errorf("create game %s: %w", game.Name, repository.ErrDuplicate)
		}
	}
	f.games[game.ID] = game
	return nil
}

func (f *fakeGames) FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.games[id], nil
}

func (f *fakeGames) FindAll(ctx context.Context) ([]*entity.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Game, 0, len(f.games))
	for _, g := range f.games {
		out = append(out, g)
	}
	return out, nil
}

type fakeTurfs struct {
	mu    sync.Mutex
	turfs map[uuid.UUID]*entity.Turf
}

func newFakeTurfs(turfs ...*entity.Turf) *fakeTurfs {
	f := &fakeTurfs{turfs: make(map[uuid.UUID]*entity.Turf)}
	for _, t := range turfs {
		f.turfs[t.ID] = t
	}
	return f
}

func (f *fakeTurfs) Create(ctx context.Context, turf *entity.Turf) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.turfs[turf.ID] = turf
	return nil
}

func (f *fakeTurfs) FindByID(ctx context.Context, id uuid.UUID) (*entity.Turf, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.turfs[id]
	if !ok || t.DeletedAt != nil {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTurfs) filter(keep func(*entity.Turf) bool) []*entity.Turf {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Turf, 0)
	for _, t := range f.turfs {
		if t.DeletedAt == nil && keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func (f *fakeTurfs) FindAll(ctx context.Context) ([]*entity.Turf, error) {
	return f.filter(func(*entity.Turf) bool { return true }), nil
}

func (f *fakeTurfs) FindByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.Turf, error) {
	return f.filter(func(t *entity.Turf) bool { return t.GameID == gameID }), nil
}

func (f *fakeTurfs) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Turf, error) {
	return f.filter(func(t *entity.Turf) bool { return t.OwnerID == ownerID }), nil
}

func (f *fakeTurfs) Update(ctx context.Context, turf *entity.Turf) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.turfs[turf.ID]; !ok || t.DeletedAt != nil {
		return fmt.Errorf("update turf: %w", repository.ErrNotFound)
	}
	f.turfs[turf.ID] = turf
	return nil
}

func (f *fakeTurfs) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.turfs[id]
	if !ok || t.DeletedAt != nil {
		return fmt.Errorf("delete turf: %w", repository.ErrNotFound)
	}
	now := time.Now()
	t.DeletedAt = &now
	return nil
}

// fakeBookings emulates the bookings_paid_slot_key partial unique index under its mutex.
type fakeBookings struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking

	// turfs backs the turf join of FindByUserID; deleted turfs still join.
	turfs *fakeTurfs

	// findConflictHook runs before every FindConflict, outside the lock.
	findConflictHook func()
	err              error
}

func newFakeBookings(turfs *fakeTurfs) *fakeBookings {
	return &fakeBookings{bookings: make(map[uuid.UUID]*entity.Booking), turfs: turfs}
}

func (f *fakeBookings) Insert(ctx context.Context, booking *entity.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if booking.PaymentStatus == entity.PaymentStatusPaid {
		for _, b := range f.bookings {
			if b.Blocks() && b.TurfID == booking.TurfID && b.Date == booking.Date && b.Slot == booking.Slot {
				return fmt.Errorf("insert booking: %w", repository.ErrSlotTaken)
			}
		}
	}
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeBookings) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bookings[id], nil
}

func (f *fakeBookings) FindConflict(ctx context.Context, turfID uuid.UUID, date, slot string) (*entity.Booking, error) {
	if f.findConflictHook != nil {
		f.findConflictHook()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.bookings {
		if b.Blocks() && b.TurfID == turfID && b.Date == date && b.Slot == slot {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookings) FindByTurfID(ctx context.Context, turfID uuid.UUID) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Booking, 0)
	for _, b := range f.bookings {
		if b.TurfID == turfID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Slot < out[j].Slot
	})
	return out, nil
}

func (f *fakeBookings) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Booking, 0)
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		joined := *b
		if f.turfs != nil {
			f.turfs.mu.Lock()
			if t, ok := f.turfs.turfs[b.TurfID]; ok {
				venue := *t
				joined.Turf = &venue
			}
			f.turfs.mu.Unlock()
		}
		out = append(out, &joined)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeBookings) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bookings[id]; !ok {
		return fmt.Errorf("delete booking %s: %w", id, repository.ErrNotFound)
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookings) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

// fixture is a small marketplace: one player, one owner, one admin, one game
// and the "Green Park" turf.
type fixture struct {
	player *entity.User
	owner  *entity.User
	admin  *entity.User
	game   *entity.Game
	turf   *entity.Turf

	users    *fakeUsers
	sessions *fakeSessions
	games    *fakeGames
	turfs    *fakeTurfs
	bookings *fakeBookings
	repo     *repository.Repository
}

func newFixture() *fixture {
	user := func(name string, role entity.UserRole) *entity.User {
		return &entity.User{
			Base:  entity.Base{ID: uuid.New()},
			Name:  name,
			Email: strings.ToLower(name) + "@example.com",
			Role:  role,
		}
	}

	f := &fixture{
		player: user("Player", entity.RolePlayer),
		owner:  user("Owner", entity.RoleOwner),
		admin:  user("Admin", entity.RoleAdmin),
		game:   &entity.Game{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Name: "Football"},
	}
	f.turf = &entity.Turf{
		Base:         entity.Base{ID: uuid.New()},
		Name:         "Green Park",
		Location:     "Downtown",
		PricePerHour: 40,
		Contact:      "0123456789",
		Slots:        []string{"8am-9am", "9am-10am"},
		OwnerID:      f.owner.ID,
		GameID:       f.game.ID,
		Game:         f.game,
		Owner:        f.owner,
	}

	f.users = newFakeUsers(f.player, f.owner, f.admin)
	f.sessions = newFakeSessions()
	f.games = newFakeGames(f.game)
	f.turfs = newFakeTurfs(f.turf)
	f.bookings = newFakeBookings(f.turfs)
	f.repo = &repository.Repository{
		User:    f.users,
		Session: f.sessions,
		Game:    f.games,
		Turf:    f.turfs,
		Booking: f.bookings,
	}
	return f
}

func (f *fixture) actor(user *entity.User) Actor {
	return Actor{UserID: user.ID, Role: user.Role}
}
