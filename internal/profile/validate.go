package profile

import (
	"net/mail"
	"strconv"
	"strings"
)

// ValidYear reports whether y is empty or one of the known academic years.
func ValidYear(y string) bool {
	switch y {
	case "", YearFreshman, YearSophomore, YearJunior, YearSenior, YearGraduate:
		return true
	}
	return false
}

// ValidStressLevel accepts low/medium/high or an integer score from 0 to 10.
func ValidStressLevel(s string) bool {
	switch strings.ToLower(s) {
	case StressLow, StressMedium, StressHigh:
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 10
}

// ValidEmail reports whether s is a bare email address.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// ValidName requires at least two non-blank characters.
func ValidName(s string) bool {
	return len([]rune(strings.TrimSpace(s))) >= 2
}
