// Package types provides type definitions for structured data used throughout the cv-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// CvData is the structured resume returned by the optimization call.
// It is produced exactly once per successful call and never mutated afterwards;
// rendering and export consume it as-is.
type CvData struct {
	FullName       string           `json:"fullName" validate:"required"`
	ContactInfo    ContactInfo      `json:"contactInfo" validate:"required"`
	Summary        string           `json:"summary" validate:"required"`
	WorkExperience []WorkExperience `json:"workExperience" validate:"dive"`
	Education      []Education      `json:"education" validate:"dive"`
	Skills         []string         `json:"skills"`
}

// ContactInfo holds the candidate's contact details.
type ContactInfo struct {
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	LinkedIn string `json:"linkedin,omitempty"`
	Location string `json:"location" validate:"required"`
}

// WorkExperience is a single employment entry. Responsibilities preserve the
// order in which the model emitted them.
type WorkExperience struct {
	JobTitle         string   `json:"jobTitle" validate:"required"`
	Company          string   `json:"company" validate:"required"`
	Location         string   `json:"location,omitempty"`
	Dates            string   `json:"dates" validate:"required"`
	Responsibilities []string `json:"responsibilities"`
}

// Education is a single education entry.
type Education struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Dates       string `json:"dates" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that every required field is populated.
// Array fields may be empty but must be present; call Normalize first so that
// absent arrays are materialized as empty slices.
func (c *CvData) Validate() error {
	return validate.Struct(c)
}

// Normalize replaces nil slices with empty ones so that downstream consumers
// never see an absent array.
func (c *CvData) Normalize() {
	if c.WorkExperience == nil {
		c.WorkExperience = []WorkExperience{}
	}
	if c.Education == nil {
		c.Education = []Education{}
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
	for i := range c.WorkExperience {
		if c.WorkExperience[i].Responsibilities == nil {
			c.WorkExperience[i].Responsibilities = []string{}
		}
	}
}
