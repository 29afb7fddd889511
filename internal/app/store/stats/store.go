// internal/app/store/stats/store.go
package stats

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/Krill-lover/welccom/internal/app/store/jsonfile"
	"go.uber.org/zap"
)

// Action types with per-entity view counters. Other action types are
// free-form labels ("start_command", "help_callback", ...) counted only in
// the per-user and daily tallies.
const (
	ActionMaterialView = "material_view"
	ActionSubjectView  = "subject_view"
)

// DayStats is one calendar day's activity inside the ledger.
type DayStats struct {
	NewUsers    int      `json:"new_users"`
	ActiveUsers []string `json:"active_users"`
	Actions     int      `json:"actions"`
}

// UserStats is the per-user portion of the ledger.
type UserStats struct {
	FirstSeen    string         `json:"first_seen"`
	LastSeen     string         `json:"last_seen"`
	TotalActions int            `json:"total_actions"`
	ActionTypes  map[string]int `json:"action_types"`
}

// ledger is the whole statistics document as persisted.
type ledger struct {
	TotalUsers    int                   `json:"total_users"`
	ActiveUsers   []string              `json:"active_users"`
	DailyStats    map[string]*DayStats  `json:"daily_stats"`
	MaterialViews map[string]int        `json:"material_views"`
	SubjectViews  map[string]int        `json:"subject_views"`
	UserActions   map[string]*UserStats `json:"user_actions"`
}

func emptyLedger() ledger {
	return ledger{
		ActiveUsers:   []string{},
		DailyStats:    map[string]*DayStats{},
		MaterialViews: map[string]int{},
		SubjectViews:  map[string]int{},
		UserActions:   map[string]*UserStats{},
	}
}

// DaySummary is a read-model row for the daily report.
type DaySummary struct {
	Date        string `json:"date"`
	NewUsers    int    `json:"new_users"`
	ActiveUsers int    `json:"active_users"`
	Actions     int    `json:"actions"`
}

// ViewCount pairs an entity (material id or subject name) with its views.
type ViewCount struct {
	Key   string `json:"key"`
	Views int    `json:"views"`
}

// UserSummary is a read-model row for the top-users report.
type UserSummary struct {
	UserID       string `json:"user_id"`
	FirstSeen    string `json:"first_seen"`
	LastSeen     string `json:"last_seen"`
	TotalActions int    `json:"total_actions"`
}

// Store is the append-only usage ledger, persisted as one pretty-printed
// JSON document. It is loaded once at startup and flushed synchronously
// after every mutation; a flush failure is logged and swallowed, because
// analytics must never block a user-facing reply.
type Store struct {
	mu   sync.Mutex
	path string
	data ledger
	log  *zap.Logger

	// now is swappable in tests that need to cross day boundaries.
	now func() time.Time
}

// New loads the ledger from path, defaulting to an empty structure when
// the file is absent or unreadable.
func New(path string, logger *zap.Logger) *Store {
	s := &Store{path: path, data: emptyLedger(), log: logger, now: time.Now}
	if err := jsonfile.Read(path, &s.data); err != nil {
		if !jsonfile.IsNotExist(err) {
			logger.Error("failed to load statistics, starting empty",
				zap.String("path", path), zap.Error(err))
		}
		s.data = emptyLedger()
	}
	// Older files may omit maps; keep mutations nil-safe.
	if s.data.DailyStats == nil {
		s.data.DailyStats = map[string]*DayStats{}
	}
	if s.data.MaterialViews == nil {
		s.data.MaterialViews = map[string]int{}
	}
	if s.data.SubjectViews == nil {
		s.data.SubjectViews = map[string]int{}
	}
	if s.data.UserActions == nil {
		s.data.UserActions = map[string]*UserStats{}
	}
	return s
}

func (s *Store) today() string {
	return s.now().Format("2006-01-02")
}

// RegisterUser records that the user was seen, both lifetime and for
// today.
//
// Note the daily "new user" tally increments whenever the id is absent
// from today's active list, so a returning user counts as "new" again
// each day. The behavior is kept as-is from the system this replaces.
func (s *Store) RegisterUser(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registerUserLocked(userID)
	s.flushLocked()
}

func (s *Store) registerUserLocked(userID int64) {
	id := strconv.FormatInt(userID, 10)

	if !contains(s.data.ActiveUsers, id) {
		s.data.ActiveUsers = append(s.data.ActiveUsers, id)
	}
	s.data.TotalUsers = len(s.data.ActiveUsers)

	today := s.today()
	day, ok := s.data.DailyStats[today]
	if !ok {
		day = &DayStats{ActiveUsers: []string{}}
		s.data.DailyStats[today] = day
	}
	if !contains(day.ActiveUsers, id) {
		day.NewUsers++
		day.ActiveUsers = append(day.ActiveUsers, id)
	}
}

// RegisterAction records one user action. Registration side effects always
// run first, then the daily tally, then — for material/subject views with
// a target — the per-entity counter, then the per-user ledger.
// Pass target="" when the action has no target entity.
func (s *Store) RegisterAction(userID int64, actionType, target string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registerUserLocked(userID)

	today := s.today()
	if day, ok := s.data.DailyStats[today]; ok {
		day.Actions++
	}

	if target != "" {
		switch actionType {
		case ActionMaterialView:
			s.data.MaterialViews[target]++
		case ActionSubjectView:
			s.data.SubjectViews[target]++
		}
	}

	id := strconv.FormatInt(userID, 10)
	user, ok := s.data.UserActions[id]
	if !ok {
		user = &UserStats{FirstSeen: today, LastSeen: today, ActionTypes: map[string]int{}}
		s.data.UserActions[id] = user
	}
	user.LastSeen = today
	user.TotalActions++
	if user.ActionTypes == nil {
		user.ActionTypes = map[string]int{}
	}
	user.ActionTypes[actionType]++

	s.flushLocked()
}

// DailyStats returns the last `days` daily summaries, most recent first,
// with zero-filled entries for days that saw no activity.
func (s *Store) DailyStats(days int) []DaySummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]DaySummary, 0, days)
	base := s.now()
	for i := 0; i < days; i++ {
		date := base.AddDate(0, 0, -i).Format("2006-01-02")
		row := DaySummary{Date: date}
		if day, ok := s.data.DailyStats[date]; ok {
			row.NewUsers = day.NewUsers
			row.ActiveUsers = len(day.ActiveUsers)
			row.Actions = day.Actions
		}
		out = append(out, row)
	}
	return out
}

// PopularMaterials returns up to limit materials by descending view count.
func (s *Store) PopularMaterials(limit int) []ViewCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := sortedViews(s.data.MaterialViews)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// PopularSubjects returns per-subject view counts, most viewed first.
func (s *Store) PopularSubjects() []ViewCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedViews(s.data.SubjectViews)
}

// MaterialViews returns the live view counter for one material.
func (s *Store) MaterialViews(materialID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.MaterialViews[materialID]
}

// TotalUsers returns the count of users ever seen.
func (s *Store) TotalUsers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.TotalUsers
}

// ActiveUsersToday returns how many distinct users acted today.
func (s *Store) ActiveUsersToday() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if day, ok := s.data.DailyStats[s.today()]; ok {
		return len(day.ActiveUsers)
	}
	return 0
}

// TopUsers returns up to limit users by descending total action count.
func (s *Store) TopUsers(limit int) []UserSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]UserSummary, 0, len(s.data.UserActions))
	for id, u := range s.data.UserActions {
		out = append(out, UserSummary{
			UserID:       id,
			FirstSeen:    u.FirstSeen,
			LastSeen:     u.LastSeen,
			TotalActions: u.TotalActions,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalActions != out[j].TotalActions {
			return out[i].TotalActions > out[j].TotalActions
		}
		return out[i].UserID < out[j].UserID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Flush writes the ledger out, returning the error instead of swallowing
// it. Used on graceful shutdown where the caller wants to know.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return jsonfile.Write(s.path, &s.data)
}

// flushLocked persists after a mutation. Failures are logged and
// swallowed; losing one analytics increment must not fail the reply.
func (s *Store) flushLocked() {
	if err := jsonfile.Write(s.path, &s.data); err != nil {
		s.log.Error("failed to save statistics", zap.String("path", s.path), zap.Error(err))
	}
}

func sortedViews(m map[string]int) []ViewCount {
	out := make([]ViewCount, 0, len(m))
	for k, v := range m {
		out = append(out, ViewCount{Key: k, Views: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Views != out[j].Views {
			return out[i].Views > out[j].Views
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func contains(list []string, v string) bool {
	for _, have := range list {
		if have == v {
			return true
		}
	}
	return false
}
