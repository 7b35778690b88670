package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/teremets90/cashdrive-app/internal/models"
	"github.com/teremets90/cashdrive-app/internal/repository"
)

// In-memory repository fakes mirroring the store's constraint behavior:
// unique (user, challenge) pairs and atomic trip accumulation.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	for _, existing := range r.users {
		if existing.Phone == u.Phone {
			return repository.ErrPhoneTaken
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.RegisteredAt.IsZero() {
		u.RegisteredAt = time.Now()
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByPhone(_ context.Context, phone string) (*models.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByIDs(_ context.Context, ids []string) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeUserRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	if v, ok := fields["name"]; ok {
		u.Name = v.(string)
	}
	if v, ok := fields["phone"]; ok {
		u.Phone = v.(string)
	}
	if v, ok := fields["birth_date"]; ok {
		u.BirthDate = v.(time.Time)
	}
	if v, ok := fields["photo_url"]; ok {
		u.PhotoURL = v.(string)
	}
	if v, ok := fields["is_admin"]; ok {
		u.IsAdmin = v.(bool)
	}
	if v, ok := fields["is_blocked"]; ok {
		u.IsBlocked = v.(bool)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RegisteredAt.After(out[j].RegisteredAt) })
	return out, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeChallengeRepo struct {
	items map[string]*models.Challenge
}

func newFakeChallengeRepo() *fakeChallengeRepo {
	return &fakeChallengeRepo{items: map[string]*models.Challenge{}}
}

func (r *fakeChallengeRepo) add(c models.Challenge) *models.Challenge {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	r.items[c.ID] = &c
	return &c
}

func (r *fakeChallengeRepo) Create(_ context.Context, c *models.Challenge) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeChallengeRepo) FindByID(_ context.Context, id string) (*models.Challenge, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, repository.ErrChallengeNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeChallengeRepo) sorted(less func(a, b *models.Challenge) bool, keep func(*models.Challenge) bool) []models.Challenge {
	var out []models.Challenge
	for _, c := range r.items {
		if keep(c) {
			out = append(out, *c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(&out[i], &out[j]) })
	return out
}

func (r *fakeChallengeRepo) ListAll(_ context.Context) ([]models.Challenge, error) {
	return r.sorted(
		func(a, b *models.Challenge) bool { return a.StartDate.After(b.StartDate) },
		func(*models.Challenge) bool { return true },
	), nil
}

func (r *fakeChallengeRepo) ListOpen(_ context.Context, now time.Time) ([]models.Challenge, error) {
	return r.sorted(
		func(a, b *models.Challenge) bool { return a.StartDate.Before(b.StartDate) },
		func(c *models.Challenge) bool { return c.IsOpen(now) },
	), nil
}

func (r *fakeChallengeRepo) SetActive(_ context.Context, id string, active bool) (*models.Challenge, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, repository.ErrChallengeNotFound
	}
	c.IsActive = active
	cp := *c
	return &cp, nil
}

func (r *fakeChallengeRepo) ListArchived(_ context.Context, f repository.ArchivedFilter) ([]models.Challenge, error) {
	inRange := func(t time.Time) bool {
		return !t.Before(*f.From) && !t.After(*f.To)
	}
	return r.sorted(
		func(a, b *models.Challenge) bool { return a.EndDate.After(b.EndDate) },
		func(c *models.Challenge) bool {
			if c.IsActive {
				return false
			}
			switch {
			case f.From != nil && f.To != nil:
				if !inRange(c.StartDate) && !inRange(c.EndDate) {
					return false
				}
			case f.From != nil:
				if c.StartDate.Before(*f.From) {
					return false
				}
			case f.To != nil:
				if c.EndDate.After(*f.To) {
					return false
				}
			}
			if f.Search != "" && !strings.Contains(strings.ToLower(c.Title), strings.ToLower(f.Search)) {
				return false
			}
			return true
		},
	), nil
}

func (r *fakeChallengeRepo) ListExpiredActive(_ context.Context, now time.Time) ([]models.Challenge, error) {
	return r.sorted(
		func(a, b *models.Challenge) bool { return a.EndDate.Before(b.EndDate) },
		func(c *models.Challenge) bool { return c.IsActive && c.EndDate.Before(now) },
	), nil
}

func (r *fakeChallengeRepo) DeactivateExpired(_ context.Context, now time.Time) (int64, error) {
	var count int64
	for _, c := range r.items {
		if c.IsActive && c.EndDate.Before(now) {
			c.IsActive = false
			count++
		}
	}
	return count, nil
}

type fakeProgressRepo struct {
	items map[string]*models.Progress // key: userID|challengeID
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{items: map[string]*models.Progress{}}
}

func progressKey(userID, challengeID string) string {
	return userID + "|" + challengeID
}

func (r *fakeProgressRepo) Create(_ context.Context, p *models.Progress) error {
	key := progressKey(p.UserID, p.ChallengeID)
	if _, ok := r.items[key]; ok {
		return repository.ErrAlreadyParticipating
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.LastUpdated = time.Now()
	cp := *p
	r.items[key] = &cp
	return nil
}

func (r *fakeProgressRepo) FindByUserAndChallenge(_ context.Context, userID, challengeID string) (*models.Progress, error) {
	p, ok := r.items[progressKey(userID, challengeID)]
	if !ok {
		return nil, repository.ErrProgressNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProgressRepo) ListByUser(_ context.Context, userID string) ([]models.Progress, error) {
	var out []models.Progress
	for _, p := range r.items {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProgressRepo) ListByChallengeIDs(_ context.Context, challengeIDs []string) ([]models.Progress, error) {
	want := map[string]bool{}
	for _, id := range challengeIDs {
		want[id] = true
	}
	var out []models.Progress
	var keys []string
	for k := range r.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if p := r.items[k]; want[p.ChallengeID] {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProgressRepo) AddTrips(_ context.Context, userID, challengeID string, addTrips, target int) (*models.Progress, error) {
	key := progressKey(userID, challengeID)
	p, ok := r.items[key]
	if !ok {
		p = &models.Progress{
			ID:           uuid.NewString(),
			UserID:       userID,
			ChallengeID:  challengeID,
			CurrentTrips: addTrips,
			IsCompleted:  addTrips >= target,
			LastUpdated:  time.Now(),
		}
		r.items[key] = p
	} else {
		p.CurrentTrips += addTrips
		p.IsCompleted = p.CurrentTrips >= target
		p.LastUpdated = time.Now()
	}
	cp := *p
	return &cp, nil
}
