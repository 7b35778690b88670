package handlers_test

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/teremets90/cashdrive-app/internal/models"
	"github.com/teremets90/cashdrive-app/internal/repository"
)

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[string]*models.User{}} }

func (r *memUserRepo) Create(_ context.Context, u *models.User) error {
	for _, e := range r.users {
		if e.Phone == u.Phone {
			return repository.ErrPhoneTaken
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.RegisteredAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByPhone(_ context.Context, phone string) (*models.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindByIDs(_ context.Context, ids []string) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *memUserRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) (*models.User, error) {
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

func (r *memUserRepo) List(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type memChallengeRepo struct {
	items map[string]*models.Challenge
}

func newMemChallengeRepo() *memChallengeRepo {
	return &memChallengeRepo{items: map[string]*models.Challenge{}}
}

func (r *memChallengeRepo) Create(_ context.Context, c *models.Challenge) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *memChallengeRepo) FindByID(_ context.Context, id string) (*models.Challenge, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, repository.ErrChallengeNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memChallengeRepo) ListAll(_ context.Context) ([]models.Challenge, error) {
	var out []models.Challenge
	for _, c := range r.items {
		out = append(out, *c)
	}
	return out, nil
}

func (r *memChallengeRepo) ListOpen(_ context.Context, now time.Time) ([]models.Challenge, error) {
	var out []models.Challenge
	for _, c := range r.items {
		if c.IsOpen(now) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memChallengeRepo) SetActive(_ context.Context, id string, active bool) (*models.Challenge, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, repository.ErrChallengeNotFound
	}
	c.IsActive = active
	cp := *c
	return &cp, nil
}

func (r *memChallengeRepo) ListArchived(_ context.Context, f repository.ArchivedFilter) ([]models.Challenge, error) {
	inRange := func(t time.Time) bool {
		return !t.Before(*f.From) && !t.After(*f.To)
	}
	var out []models.Challenge
	for _, c := range r.items {
		if c.IsActive {
			continue
		}
		switch {
		case f.From != nil && f.To != nil:
			if !inRange(c.StartDate) && !inRange(c.EndDate) {
				continue
			}
		case f.From != nil:
			if c.StartDate.Before(*f.From) {
				continue
			}
		case f.To != nil:
			if c.EndDate.After(*f.To) {
				continue
			}
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(c.Title), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *memChallengeRepo) ListExpiredActive(_ context.Context, now time.Time) ([]models.Challenge, error) {
	var out []models.Challenge
	for _, c := range r.items {
		if c.IsActive && c.EndDate.Before(now) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memChallengeRepo) DeactivateExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for _, c := range r.items {
		if c.IsActive && c.EndDate.Before(now) {
			c.IsActive = false
			n++
		}
	}
	return n, nil
}

type memProgressRepo struct {
	items map[string]*models.Progress
}

func newMemProgressRepo() *memProgressRepo {
	return &memProgressRepo{items: map[string]*models.Progress{}}
}

func (r *memProgressRepo) key(userID, challengeID string) string { return userID + "|" + challengeID }

func (r *memProgressRepo) Create(_ context.Context, p *models.Progress) error {
	k := r.key(p.UserID, p.ChallengeID)
	if _, ok := r.items[k]; ok {
		return repository.ErrAlreadyParticipating
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.LastUpdated = time.Now()
	cp := *p
	r.items[k] = &cp
	return nil
}

func (r *memProgressRepo) FindByUserAndChallenge(_ context.Context, userID, challengeID string) (*models.Progress, error) {
	p, ok := r.items[r.key(userID, challengeID)]
	if !ok {
		return nil, repository.ErrProgressNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProgressRepo) ListByUser(_ context.Context, userID string) ([]models.Progress, error) {
	var out []models.Progress
	for _, p := range r.items {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProgressRepo) ListByChallengeIDs(_ context.Context, ids []string) ([]models.Progress, error) {
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []models.Progress
	for _, p := range r.items {
		if want[p.ChallengeID] {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProgressRepo) AddTrips(_ context.Context, userID, challengeID string, addTrips, target int) (*models.Progress, error) {
	k := r.key(userID, challengeID)
	p, ok := r.items[k]
	if !ok {
		p = &models.Progress{
			ID:           uuid.NewString(),
			UserID:       userID,
			ChallengeID:  challengeID,
			CurrentTrips: addTrips,
			IsCompleted:  addTrips >= target,
			LastUpdated:  time.Now(),
		}
		r.items[k] = p
	} else {
		p.CurrentTrips += addTrips
		p.IsCompleted = p.CurrentTrips >= target
		p.LastUpdated = time.Now()
	}
	cp := *p
	return &cp, nil
}

type memBlobStore struct {
	uploads map[string][]byte
}

func newMemBlobStore() *memBlobStore { return &memBlobStore{uploads: map[string][]byte{}} }

func (s *memBlobStore) Upload(_ context.Context, key, _ string, data []byte) (string, error) {
	s.uploads[key] = data
	return "https://blobs.test/" + key, nil
}
