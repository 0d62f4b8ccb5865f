package engine

import (
	"context"
	"time"

	"github.com/pathtonaja-debug/naja-sub002/internal/store"
)

// ProfileKey is the fixed KV key the guest profile record lives under.
const ProfileKey = "naja_guest_profile"

// DefaultDisplayName is the placeholder name a fresh profile starts with.
const DefaultDisplayName = "Guest"

// GuestProfile is the aggregate root of the local gamification state:
// device identity, lifetime Barakah points, the level derived from
// them, and the hasanat streak.
type GuestProfile struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	Level            int    `json:"level"`
	BarakahPoints    int    `json:"barakahPoints"`
	HasanatStreak    int    `json:"hasanatStreak"`
	LongestStreak    int    `json:"longestStreak,omitempty"`
	LastActivityDate string `json:"lastActivityDate,omitempty"`
	CreatedAt        string `json:"createdAt"`
}

// Valid reports whether a decoded record is structurally usable. A
// stale Level is fine (Load self-heals it); negative counters or a
// missing identity are not, and the record is rebuilt from defaults.
func (p GuestProfile) Valid() bool {
	return p.ID != "" &&
		p.BarakahPoints >= 0 &&
		p.HasanatStreak >= 0 &&
		p.CreatedAt != ""
}

// Progress returns position within the profile's current level.
func (p GuestProfile) Progress() LevelProgress {
	return ProgressForPoints(p.BarakahPoints)
}

// Title returns the display title for the profile's level.
func (p GuestProfile) Title() string {
	return LevelTitle(p.Level)
}

// AwardResult tells the caller whether an award crossed a level
// boundary so the UI can run its celebratory transition.
type AwardResult struct {
	Points    int          `json:"points"`
	LeveledUp bool         `json:"leveledUp"`
	NewLevel  int          `json:"newLevel"`
	Profile   GuestProfile `json:"profile"`
}

// ProfilePatch is a partial update; nil fields are left untouched.
// Identity and creation time are not patchable.
type ProfilePatch struct {
	DisplayName      *string `json:"displayName,omitempty"`
	BarakahPoints    *int    `json:"barakahPoints,omitempty"`
	HasanatStreak    *int    `json:"hasanatStreak,omitempty"`
	LastActivityDate *string `json:"lastActivityDate,omitempty"`
}

// ProfileStore owns the guest profile record. All operations read the
// persisted record, mutate, and synchronously write back; there is no
// in-memory copy to drift.
type ProfileStore struct {
	kv  store.KV
	now func() time.Time
}

func NewProfileStore(kv store.KV) *ProfileStore {
	return &ProfileStore{kv: kv, now: time.Now}
}

func (s *ProfileStore) defaultProfile(id string) GuestProfile {
	return GuestProfile{
		ID:          id,
		DisplayName: DefaultDisplayName,
		Level:       LevelFloor,
		CreatedAt:   s.now().UTC().Format(time.RFC3339),
	}
}

// Load returns the stored profile, creating a default one on first use.
// Corrupt records are replaced with defaults rather than surfaced: the
// only errors coming out of here are storage write failures. The level
// is always recomputed from points so external tampering or a stale
// cached level heals itself.
func (s *ProfileStore) Load(ctx context.Context) (GuestProfile, error) {
	p := store.ReadJSON(ctx, s.kv, ProfileKey, GuestProfile{})
	if p.ID == "" {
		id, err := store.DeviceID(ctx, s.kv)
		if err != nil {
			return GuestProfile{}, err
		}
		p = s.defaultProfile(id)
		if err := store.WriteJSON(ctx, s.kv, ProfileKey, p); err != nil {
			return GuestProfile{}, err
		}
		return p, nil
	}

	if computed := LevelForPoints(p.BarakahPoints); p.Level != computed {
		p.Level = computed
		if err := store.WriteJSON(ctx, s.kv, ProfileKey, p); err != nil {
			return GuestProfile{}, err
		}
	}
	return p, nil
}

// AddBarakahPoints adds an award to the lifetime total, recomputes the
// level, and stamps today as the last activity date. It does NOT touch
// the streak counter: callers that want the day's first activity to
// extend the streak must call UpdateStreak before awarding points,
// because once today is stamped the streak engine sees a same-day
// no-op.
func (s *ProfileStore) AddBarakahPoints(ctx context.Context, amount int) (AwardResult, error) {
	p, err := s.Load(ctx)
	if err != nil {
		return AwardResult{}, err
	}

	before := p.Level
	p.BarakahPoints += amount
	if p.BarakahPoints < 0 {
		p.BarakahPoints = 0
	}
	p.Level = LevelForPoints(p.BarakahPoints)
	p.LastActivityDate = Today(s.now())

	if err := store.WriteJSON(ctx, s.kv, ProfileKey, p); err != nil {
		return AwardResult{}, err
	}
	return AwardResult{
		Points:    amount,
		LeveledUp: p.Level > before,
		NewLevel:  p.Level,
		Profile:   p,
	}, nil
}

// UpdateStreak runs the streak engine against today and persists the
// outcome. Calling it twice on the same calendar day is a no-op.
func (s *ProfileStore) UpdateStreak(ctx context.Context) (int, error) {
	p, err := s.Load(ctx)
	if err != nil {
		return 0, err
	}

	today := Today(s.now())
	next := NextStreak(p.HasanatStreak, p.LastActivityDate, today)
	if next == p.HasanatStreak && p.LastActivityDate == today {
		return next, nil
	}

	p.HasanatStreak = next
	if next > p.LongestStreak {
		p.LongestStreak = next
	}
	p.LastActivityDate = today
	if err := store.WriteJSON(ctx, s.kv, ProfileKey, p); err != nil {
		return 0, err
	}
	return next, nil
}

// UpdateProfile shallow-merges a patch into the stored profile. A patch
// touching points recomputes the level, keeping the derived invariant
// intact on every mutation path.
func (s *ProfileStore) UpdateProfile(ctx context.Context, patch ProfilePatch) (GuestProfile, error) {
	p, err := s.Load(ctx)
	if err != nil {
		return GuestProfile{}, err
	}

	if patch.DisplayName != nil {
		p.DisplayName = *patch.DisplayName
	}
	if patch.BarakahPoints != nil {
		p.BarakahPoints = *patch.BarakahPoints
		if p.BarakahPoints < 0 {
			p.BarakahPoints = 0
		}
		p.Level = LevelForPoints(p.BarakahPoints)
	}
	if patch.HasanatStreak != nil && *patch.HasanatStreak >= 0 {
		p.HasanatStreak = *patch.HasanatStreak
		if p.HasanatStreak > p.LongestStreak {
			p.LongestStreak = p.HasanatStreak
		}
	}
	if patch.LastActivityDate != nil {
		p.LastActivityDate = *patch.LastActivityDate
	}

	if err := store.WriteJSON(ctx, s.kv, ProfileKey, p); err != nil {
		return GuestProfile{}, err
	}
	return p, nil
}

// ResetProfile discards points, level, streak, and activity date back
// to defaults while keeping the device identity, then persists and
// returns the fresh profile.
func (s *ProfileStore) ResetProfile(ctx context.Context) (GuestProfile, error) {
	prev, err := s.Load(ctx)
	if err != nil {
		return GuestProfile{}, err
	}
	p := s.defaultProfile(prev.ID)
	if err := store.WriteJSON(ctx, s.kv, ProfileKey, p); err != nil {
		return GuestProfile{}, err
	}
	return p, nil
}
