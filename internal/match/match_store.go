package match

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Meta is the listing metadata of a stored match.
type Meta struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TeamA     string    `json:"team_a"`
	TeamB     string    `json:"team_b"`
	Phase     Phase     `json:"phase"`
	Started   bool      `json:"started"`
	HasPIN    bool      `json:"has_pin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type entry struct {
	mu      sync.Mutex
	match   *Match
	meta    Meta
	pinHash string
	deleted bool
}

// Store owns every live match. Each match has its own mutex so one scorer
// mutates a match at a time while other matches proceed.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	created int

	repo MatchRepository
	log  logrus.FieldLogger
	now  func() time.Time
}

// NewStore creates a store. A nil repo keeps matches in memory only.
func NewStore(repo MatchRepository, log logrus.FieldLogger) *Store {
	return &Store{
		entries: make(map[string]*entry),
		repo:    repo,
		log:     log,
		now:     time.Now,
	}
}

// Create registers m under a fresh id. An empty name becomes "Match N".
func (s *Store) Create(ctx context.Context, name string, m *Match, pinHash string) (Meta, error) {
	now := s.now()

	s.mu.Lock()
	s.created++
	if name == "" {
		name = fmt.Sprintf("Match %d", s.created)
	}
	e := &entry{
		match:   m,
		pinHash: pinHash,
		meta: Meta{
			ID:        uuid.NewString(),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	e.refresh(now)
	s.entries[e.meta.ID] = e
	s.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := s.persist(ctx, e); err != nil {
		s.mu.Lock()
		delete(s.entries, e.meta.ID)
		s.mu.Unlock()
		return Meta{}, err
	}
	s.log.WithFields(logrus.Fields{"match_id": e.meta.ID, "name": name}).Info("match created")
	return e.meta, nil
}

func (s *Store) lookup(id string) (*entry, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrMatchNotFound.With("match_id", id)
	}
	return e, nil
}

// acquire returns the entry locked. Callers unlock it. An entry deleted while
// the caller waited for the lock reads as not found.
func (s *Store) acquire(id string) (*entry, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	if e.deleted {
		e.mu.Unlock()
		return nil, ErrMatchNotFound.With("match_id", id)
	}
	return e, nil
}

// View runs fn against the match under its lock. fn must not mutate it.
func (s *Store) View(id string, fn func(m *Match, meta Meta) error) error {
	e, err := s.acquire(id)
	if err != nil {
		return err
	}
	defer e.mu.Unlock()
	return fn(e.match, e.meta)
}

// Snapshot returns the current read model of a match.
func (s *Store) Snapshot(id string) (Meta, Snapshot, error) {
	var (
		meta Meta
		snap Snapshot
	)
	err := s.View(id, func(m *Match, md Meta) error {
		meta, snap = md, m.Snapshot()
		return nil
	})
	return meta, snap, err
}

// Update applies fn to the match under its lock and persists the result.
// When fn or persistence fails the match is left as it was before fn.
func (s *Store) Update(ctx context.Context, id string, fn func(m *Match) error) (Meta, Snapshot, error) {
	e, err := s.acquire(id)
	if err != nil {
		return Meta{}, Snapshot{}, err
	}
	defer e.mu.Unlock()

	before := e.match.clone()
	prevMeta := e.meta
	if err := fn(e.match); err != nil {
		e.match = before
		return e.meta, Snapshot{}, err
	}
	e.refresh(s.now())
	if err := s.persist(ctx, e); err != nil {
		e.match = before
		e.meta = prevMeta
		s.log.WithFields(logrus.Fields{"match_id": id}).WithError(err).Error("persist failed, match rolled back")
		return e.meta, Snapshot{}, err
	}
	return e.meta, e.match.Snapshot(), nil
}

// List returns metadata of every match, oldest first.
func (s *Store) List() []Meta {
	s.mu.RLock()
	entries := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	out := make([]Meta, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		out = append(out, e.meta)
		e.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Len is the number of matches held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// PinHash returns the bcrypt hash of the scorer PIN, empty when none was set.
func (s *Store) PinHash(id string) (string, error) {
	e, err := s.acquire(id)
	if err != nil {
		return "", err
	}
	defer e.mu.Unlock()
	return e.pinHash, nil
}

// Delete evicts a match and its persisted record. It waits for a running
// Update of the same match, so a late persist cannot bring the record back.
func (s *Store) Delete(ctx context.Context, id string) error {
	e, err := s.acquire(id)
	if err != nil {
		return err
	}
	defer e.mu.Unlock()

	if s.repo != nil {
		err := s.repo.WithTransaction(func(tx MatchRepository) error {
			rec, err := tx.FindByID(ctx, id)
			if err != nil {
				return err
			}
			if rec == nil {
				s.log.WithFields(logrus.Fields{"match_id": id}).Warn("no persisted record to delete")
				return nil
			}
			return tx.Delete(ctx, id)
		})
		if err != nil {
			return fmt.Errorf("delete match %s: %w", id, err)
		}
	}

	e.deleted = true
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	s.log.WithFields(logrus.Fields{"match_id": id}).Info("match deleted")
	return nil
}

// Load restores persisted matches. Records that fail to decode are skipped.
func (s *Store) Load(ctx context.Context) (int, error) {
	if s.repo == nil {
		return 0, nil
	}
	recs, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("load matches: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	loaded := 0
	for _, rec := range recs {
		m := &Match{}
		if err := json.Unmarshal(rec.State, m); err != nil {
			s.log.WithFields(logrus.Fields{"match_id": rec.ID}).WithError(err).Warn("skipping undecodable match")
			continue
		}
		e := &entry{
			match:   m,
			pinHash: rec.PinHash,
			meta: Meta{
				ID:        rec.ID,
				Name:      rec.Name,
				CreatedAt: rec.CreatedAt,
				UpdatedAt: rec.UpdatedAt,
			},
		}
		e.refresh(rec.UpdatedAt)
		s.entries[rec.ID] = e
		loaded++
	}
	s.created += loaded
	return loaded, nil
}

func (s *Store) persist(ctx context.Context, e *entry) error {
	if s.repo == nil {
		return nil
	}
	state, err := json.Marshal(e.match)
	if err != nil {
		return fmt.Errorf("encode match %s: %w", e.meta.ID, err)
	}
	rec := &MatchRecord{
		ID:        e.meta.ID,
		Name:      e.meta.Name,
		TeamA:     e.meta.TeamA,
		TeamB:     e.meta.TeamB,
		Phase:     e.meta.Phase,
		Started:   e.meta.Started,
		PinHash:   e.pinHash,
		State:     state,
		CreatedAt: e.meta.CreatedAt,
		UpdatedAt: e.meta.UpdatedAt,
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		return fmt.Errorf("save match %s: %w", e.meta.ID, err)
	}
	return nil
}

func (e *entry) refresh(now time.Time) {
	e.meta.TeamA = e.match.TeamA().Name
	e.meta.TeamB = e.match.TeamB().Name
	e.meta.Phase = e.match.Phase()
	e.meta.Started = e.match.Started()
	e.meta.HasPIN = e.pinHash != ""
	e.meta.UpdatedAt = now
}
