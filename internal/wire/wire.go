// Package wire defines the JSON request/response shapes exchanged between
// the Beauty Ease client and the backend API. Both sides import this
// package so the two cannot drift apart.
package wire

import "time"

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokenResponse carries a short-lived JWT access token and an opaque
// refresh token.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
}

type Profile struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	SkinType     string    `json:"skin_type,omitempty"`
	SkinConcerns []string  `json:"skin_concerns,omitempty"`
	AgeRange     string    `json:"age_range,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfilePatch is a partial profile update. Nil fields are left unchanged.
type ProfilePatch struct {
	FullName     *string   `json:"full_name,omitempty"`
	SkinType     *string   `json:"skin_type,omitempty"`
	SkinConcerns *[]string `json:"skin_concerns,omitempty"`
	AgeRange     *string   `json:"age_range,omitempty"`
}

// Recommendations bundles the advice attached to a scan result.
type Recommendations struct {
	Products           []string `json:"products"`
	Treatments         []string `json:"treatments"`
	HomeRemedies       []string `json:"home_remedies"`
	DoctorConsultation bool     `json:"doctor_consultation"`
}

type SaveScanRequest struct {
	SkinType        string          `json:"skin_type" validate:"required"`
	Concerns        []string        `json:"concerns" validate:"required,min=1,max=3"`
	Score           int             `json:"score" validate:"gte=0,lte=100"`
	Confidence      int             `json:"confidence" validate:"gte=0,lte=100"`
	Recommendations Recommendations `json:"recommendations"`
	ImageKey        string          `json:"image_key,omitempty"`
}

type Scan struct {
	ID              string          `json:"id"`
	AnalysisDate    time.Time       `json:"analysis_date"`
	SkinType        string          `json:"skin_type"`
	Concerns        []string        `json:"concerns"`
	Score           int             `json:"score"`
	Confidence      int             `json:"confidence"`
	Recommendations Recommendations `json:"recommendations"`
	ImageKey        string          `json:"image_key,omitempty"`
}

// UploadURLResponse carries a presigned PUT URL for a captured still and
// the storage key to reference it by.
type UploadURLResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// DownloadURLResponse carries a presigned GET URL for a stored still.
type DownloadURLResponse struct {
	URL string `json:"url"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
