// ABOUTME: BodyMeasurement, ProgressPhoto, and UserProfile models.
// ABOUTME: Measurements and photos are immutable once created, newest first.
package models

import (
	"time"

	"github.com/google/uuid"
)

// BodyMeasurement is a point-in-time snapshot of body metrics. All
// measurements are optional; weight and body fat in kg/%, the rest in cm.
type BodyMeasurement struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Weight  *float64  `json:"weight,omitempty"`
	BodyFat *float64  `json:"body_fat,omitempty"`
	Chest   *float64  `json:"chest,omitempty"`
	Waist   *float64  `json:"waist,omitempty"`
	Arms    *float64  `json:"arms,omitempty"`
	Thighs  *float64  `json:"thighs,omitempty"`
}

// NewBodyMeasurement creates an empty measurement stamped now.
func NewBodyMeasurement() *BodyMeasurement {
	return &BodyMeasurement{
		ID:   uuid.New().String(),
		Date: time.Now(),
	}
}

// ProgressPhoto references a progress image by path or URL.
type ProgressPhoto struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	ImageURL string    `json:"image_url"`
	Label    string    `json:"label,omitempty"`
}

// NewProgressPhoto creates a photo entry stamped now.
func NewProgressPhoto(imageURL, label string) *ProgressPhoto {
	return &ProgressPhoto{
		ID:       uuid.New().String(),
		Date:     time.Now(),
		ImageURL: imageURL,
		Label:    label,
	}
}

// UserProfile holds the singleton athlete profile. Edits replace the
// whole value; there is no partial patch.
type UserProfile struct {
	Height       float64 `json:"height"`
	TargetWeight float64 `json:"target_weight"`
}

// DefaultProfile is substituted when a loaded state has no profile.
func DefaultProfile() UserProfile {
	return UserProfile{Height: 175, TargetWeight: 75}
}
