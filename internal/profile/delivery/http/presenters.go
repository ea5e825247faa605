package http

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"campus-advisor/internal/profile"
)

// --- Request DTOs ---

type registerReq struct {
	Name      string   `json:"name"      binding:"required,min=2,max=100"`
	Email     string   `json:"email"     binding:"required,email"`
	Major     string   `json:"major"     binding:"max=100"`
	Year      string   `json:"year"      binding:"omitempty,oneof=Freshman Sophomore Junior Senior Graduate"`
	Interests []string `json:"interests"`
}

func (r registerReq) toInput() profile.RegisterInput {
	return profile.RegisterInput{
		Name:      r.Name,
		Email:     r.Email,
		Major:     r.Major,
		Year:      r.Year,
		Interests: r.Interests,
	}
}

// stressLevel accepts "low"/"medium"/"high", a numeric string, or a JSON number.
type stressLevel string

func (s *stressLevel) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*s = stressLevel(strconv.Itoa(int(n)))
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return fmt.Errorf("stress_level: %w", err)
	}
	*s = stressLevel(str)
	return nil
}

type updateReq struct {
	Name        *string      `json:"name"`
	Major       *string      `json:"major"`
	Year        *string      `json:"year"`
	Interests   []string     `json:"interests"`
	StressLevel *stressLevel `json:"stress_level"`
	Goals       *string      `json:"goals"`
}

func (r updateReq) toInput(userID string) profile.UpdateInput {
	in := profile.UpdateInput{
		UserID:    userID,
		Name:      r.Name,
		Major:     r.Major,
		Year:      r.Year,
		Interests: r.Interests,
		Goals:     r.Goals,
	}
	if r.StressLevel != nil {
		s := strings.TrimSpace(string(*r.StressLevel))
		in.StressLevel = &s
	}
	return in
}

// --- Response DTOs ---

type profileResp struct {
	Major       string    `json:"major"`
	Year        string    `json:"year"`
	Interests   []string  `json:"interests"`
	StressLevel string    `json:"stress_level"`
	Goals       string    `json:"goals"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type userResp struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Profile   profileResp `json:"profile"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func newUserResp(u profile.User) userResp {
	interests := u.Profile.Interests
	if interests == nil {
		interests = []string{}
	}
	return userResp{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Profile: profileResp{
			Major:       u.Profile.Major,
			Year:        u.Profile.Year,
			Interests:   interests,
			StressLevel: u.Profile.StressLevel,
			Goals:       u.Profile.Goals,
			UpdatedAt:   u.Profile.UpdatedAt,
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type userEnvelope struct {
	User userResp `json:"user"`
}
