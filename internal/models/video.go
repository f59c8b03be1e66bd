// Package models defines the data models persisted in the local history
// database.
package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Settings keys persisted in the settings table.
const (
	SettingLastDirectory = "last_directory"
	SettingBiasValue     = "bias_value"
)

// Rating bounds accepted from the user.
const (
	RatingMin = 0.0
	RatingMax = 10.0
)

// Video is a single history entry for an opened (or manually added) video
// file.
type Video struct {
	// ID is a globally unique identifier, assigned on first insertion.
	ID string

	// Path is the absolute filesystem path. Unique among active entries.
	Path string

	// Name is the display name shown in listings. Editable; renaming also
	// renames the underlying file.
	Name string

	// Rating is the user rating in [RatingMin, RatingMax], or nil when
	// unrated.
	Rating *float64

	// Deleted marks the entry as soft-deleted. Deleted entries are hidden
	// from listings but kept for undo.
	Deleted bool

	// CreatedAt is the first insertion time in UTC.
	CreatedAt time.Time

	// LastOpenedAt is the most recent open time in UTC.
	LastOpenedAt time.Time
}

// Validate checks field shape before the entry is persisted.
func (v Video) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.ID, validation.Required),
		validation.Field(&v.Path, validation.Required),
		validation.Field(&v.Name, validation.Required),
		validation.Field(&v.Rating, validation.By(ratingInRange)),
	)
}

// ValidateRating checks a rating value supplied by the user. A nil rating
// clears the field and is always valid.
func ValidateRating(r *float64) error {
	return ratingInRange(r)
}

func ratingInRange(value any) error {
	r, ok := value.(*float64)
	if !ok || r == nil {
		return nil
	}
	return validation.Validate(*r, validation.Min(RatingMin), validation.Max(RatingMax))
}
