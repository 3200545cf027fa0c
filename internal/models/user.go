package models

// Platform is a user's preferred gaming platform.
type Platform string

const (
	PlatformPC          Platform = "PC"
	PlatformPlayStation Platform = "PlayStation"
	PlatformXbox        Platform = "Xbox"
	PlatformNintendo    Platform = "Nintendo"
	PlatformMobile      Platform = "Mobile"
	PlatformNone        Platform = "None"
)

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformPC, PlatformPlayStation, PlatformXbox, PlatformNintendo, PlatformMobile, PlatformNone:
		return true
	}
	return false
}

// ScheduleBlock is one self-reported gaming time range. Overlapping blocks
// are permitted; only the day name and HH:MM shape are validated.
type ScheduleBlock struct {
	ID    string `json:"id"`
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

var weekdays = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

// ValidDay reports whether day is one of the seven weekday names.
func ValidDay(day string) bool {
	return weekdays[day]
}

// User is a sanitized profile, safe to return to any caller.
type User struct {
	ID               string          `json:"id"`
	Username         string          `json:"username"`
	ProfilePicture   string          `json:"profilePicture"`
	Description      string          `json:"description"`
	IsPublic         bool            `json:"isPublic"`
	Schedule         []ScheduleBlock `json:"schedule"`
	FavoritePlatform Platform        `json:"favoritePlatform"`
}

// UserRecord is a User together with its password hash. Only the login path
// sees it; everything else works with the sanitized User.
type UserRecord struct {
	User
	PasswordHash string `json:"passwordHash"`
}

// UserUpdate carries the optional fields of a profile update. Nil means
// "leave unchanged". PasswordHash is already hashed by the caller.
type UserUpdate struct {
	Username         *string
	ProfilePicture   *string
	Description      *string
	IsPublic         *bool
	Schedule         *[]ScheduleBlock
	FavoritePlatform *Platform
	PasswordHash     *string
}

// PublicProfile pairs a public user with their game lists, as shown on the
// profile browsing pages.
type PublicProfile struct {
	User  User      `json:"user"`
	Lists GameState `json:"lists"`
}
