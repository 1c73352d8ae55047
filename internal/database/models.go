package database

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/vijay-prabhu/roommate-match/internal/profile"
)

// SwipeAction is a user's decision on a candidate
type SwipeAction string

const (
	ActionLike SwipeAction = "like"
	ActionPass SwipeAction = "pass"
)

// Valid reports whether a is a known action
func (a SwipeAction) Valid() bool {
	return a == ActionLike || a == ActionPass
}

// MatchStatus represents where a pair of users stands
type MatchStatus string

const (
	MatchNone     MatchStatus = "none"
	MatchPending  MatchStatus = "pending"
	MatchAccepted MatchStatus = "accepted"
	MatchRejected MatchStatus = "rejected"
)

// Swipe records one user's decision on another
type Swipe struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	TargetUserID  string      `json:"target_user_id"`
	Action        SwipeAction `json:"action"`
	Compatibility *int        `json:"compatibility,omitempty"` // Score at the time of the swipe
	CreatedAt     time.Time   `json:"created_at"`
}

// Stats represents aggregate statistics
type Stats struct {
	TotalProfiles    int     `json:"total_profiles"`
	Cities           int     `json:"cities"`
	TotalSwipes      int     `json:"total_swipes"`
	Likes            int     `json:"likes"`
	Passes           int     `json:"passes"`
	MutualMatches    int     `json:"mutual_matches"`
	AvgCompatibility float64 `json:"avg_compatibility"`
}

// ListOptions contains options for listing profiles
type ListOptions struct {
	City   *string
	Limit  int
	Offset int
}

// NullString is a helper to convert an optional string to sql.NullString
func NullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// NullInt64 is a helper to convert *int to sql.NullInt64
func NullInt64(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

// IntPtr converts sql.NullInt64 to *int
func IntPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	v := int(ni.Int64)
	return &v
}

// encodeTags stores a tag set as a JSON array, never null
func encodeTags(t profile.Tags) (string, error) {
	if t == nil {
		t = profile.Tags{}
	}
	data, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeTags(s string) (profile.Tags, error) {
	if s == "" {
		return nil, nil
	}
	var t profile.Tags
	if err := json.Unmarshal([]byte(s), &t); err != nil {
		return nil, err
	}
	return t, nil
}
