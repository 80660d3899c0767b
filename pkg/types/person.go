package types

import "errors"

// Validation errors
var (
	ErrEmptyID       = errors.New("id cannot be empty")
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrEmptyEndpoint = errors.New("relation endpoints cannot be empty")
	ErrSamePerson    = errors.New("relation endpoints must be distinct persons")
	ErrUnknownType   = errors.New("unknown relation type")
)

// Gender of a person. Missing data is represented as GenderUnknown, never
// as an empty string.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// Person is a member of the family tree. Persons are owned by the caller;
// the engine only ever reads them.
type Person struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Gender Gender `json:"gender"`

	// BirthYear and DeathYear are optional; nil means unknown.
	BirthYear *int `json:"birthYear,omitempty"`
	DeathYear *int `json:"deathYear,omitempty"`

	// Families lists the family-cluster ids this person belongs to.
	Families []string `json:"families,omitempty"`
}

// Validate checks if the Person has all required fields set.
func (p *Person) Validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// ValidateForCreate checks if the Person has all required fields for creation.
func (p *Person) ValidateForCreate() error {
	if p.ID == "" {
		return ErrEmptyID
	}
	return p.Validate()
}

// NormalizedGender returns the person's gender, mapping an unset value to
// GenderUnknown so rule lookups never see an empty string.
func (p *Person) NormalizedGender() Gender {
	switch p.Gender {
	case GenderMale, GenderFemale:
		return p.Gender
	default:
		return GenderUnknown
	}
}
