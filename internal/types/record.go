package types

import (
	"time"
)

// HealthRecord is one bowel movement entry. Records arrive already parsed
// from the backend; the analysis core treats them as immutable values for
// the duration of one request.
type HealthRecord struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	BristolType  int        `json:"bristolType"`
	Volume       *string    `json:"volume,omitempty"`
	Color        *string    `json:"color,omitempty"`
	Consistency  *string    `json:"consistency,omitempty"`
	Floaters     *bool      `json:"floaters,omitempty"`
	Pain         *int       `json:"pain,omitempty"`
	Strain       *int       `json:"strain,omitempty"`
	Satisfaction *int       `json:"satisfaction,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	RecordedAt   *time.Time `json:"recordedAt,omitempty"`
}

// MealRecord is one meal entry supplied for correlation analysis.
type MealRecord struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Name       *string    `json:"name,omitempty"`
	MealTime   time.Time  `json:"mealTime"`
	Category   *string    `json:"category,omitempty"`
	Cuisine    *string    `json:"cuisine,omitempty"`
	SpicyLevel *int       `json:"spicyLevel,omitempty"`
	FiberRich  bool       `json:"fiberRich"`
	Dairy      bool       `json:"dairy"`
	Gluten     bool       `json:"gluten"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

// SymptomRecord is one symptom entry, optionally linked to a health record.
type SymptomRecord struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	HealthRecordID *string    `json:"bowelMovementId,omitempty"`
	Type           string     `json:"type"`
	Severity       int        `json:"severity"`
	Notes          *string    `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	RecordedAt     *time.Time `json:"recordedAt,omitempty"`
}
