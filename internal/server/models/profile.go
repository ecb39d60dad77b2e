package models

import "time"

// Profile is the per-user profile row. SkinType is "" when unset; when
// present it is one of the shared skin-type enumeration values, enforced
// by the profile service before a write reaches the repository.
type Profile struct {
	UserID       string
	Email        string
	FullName     string
	SkinType     string
	SkinConcerns []string
	AgeRange     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
