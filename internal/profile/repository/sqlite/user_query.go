package sqlite

import (
	"encoding/json"
	"strings"
	"time"

	"campus-advisor/internal/profile"
)

const selectUser = `
SELECT u.id, u.email, u.name, u.created_at, u.updated_at,
       COALESCE(p.major, ''), COALESCE(p.year, ''), COALESCE(p.interests, '[]'),
       COALESCE(p.stress_level, 'medium'), COALESCE(p.goals, ''), COALESCE(p.updated_at, u.updated_at)
FROM users u
LEFT JOIN user_profiles p ON p.user_id = u.id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (profile.User, error) {
	var (
		u                                profile.User
		created, updated, profileUpdated int64
		interests                        string
	)
	if err := row.Scan(
		&u.ID, &u.Email, &u.Name, &created, &updated,
		&u.Profile.Major, &u.Profile.Year, &interests,
		&u.Profile.StressLevel, &u.Profile.Goals, &profileUpdated,
	); err != nil {
		return profile.User{}, err
	}
	u.CreatedAt = time.UnixMilli(created)
	u.UpdatedAt = time.UnixMilli(updated)
	u.Profile.UpdatedAt = time.UnixMilli(profileUpdated)
	u.Profile.Interests = decodeInterests(interests)
	return u, nil
}

func encodeInterests(in []string) string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	b, _ := json.Marshal(out)
	return string(b)
}

func decodeInterests(raw string) []string {
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return []string{}
	}
	if out == nil {
		return []string{}
	}
	return out
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
