package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCv() *CvData {
	return &CvData{
		FullName: "Jane Doe",
		ContactInfo: ContactInfo{
			Email:    "jane@example.com",
			Phone:    "+1 555 0100",
			Location: "Portland, OR",
		},
		Summary: "Backend engineer with 8 years of distributed systems experience.",
		WorkExperience: []WorkExperience{
			{
				JobTitle: "Senior Engineer",
				Company:  "Acme",
				Dates:    "2019 - Present",
				Responsibilities: []string{
					"Led migration of the billing service to event sourcing",
				},
			},
		},
		Education: []Education{
			{Institution: "State University", Degree: "BSc Computer Science", Dates: "2011 - 2015"},
		},
		Skills: []string{"Go", "PostgreSQL"},
	}
}

func TestCvData_Validate_Populated(t *testing.T) {
	cv := sampleCv()
	require.NoError(t, cv.Validate())
}

func TestCvData_Validate_MissingFullName(t *testing.T) {
	cv := sampleCv()
	cv.FullName = ""
	assert.Error(t, cv.Validate())
}

func TestCvData_Validate_MissingContactEmail(t *testing.T) {
	cv := sampleCv()
	cv.ContactInfo.Email = ""
	assert.Error(t, cv.Validate())
}

func TestCvData_Validate_MissingExperienceDates(t *testing.T) {
	cv := sampleCv()
	cv.WorkExperience[0].Dates = ""
	assert.Error(t, cv.Validate())
}

func TestCvData_Validate_EmptyArraysAllowed(t *testing.T) {
	cv := sampleCv()
	cv.WorkExperience = []WorkExperience{}
	cv.Education = []Education{}
	cv.Skills = []string{}
	assert.NoError(t, cv.Validate())
}

func TestCvData_Validate_OptionalLinkedIn(t *testing.T) {
	cv := sampleCv()
	cv.ContactInfo.LinkedIn = ""
	assert.NoError(t, cv.Validate())
}

func TestCvData_Normalize_NilSlices(t *testing.T) {
	cv := &CvData{
		WorkExperience: []WorkExperience{{JobTitle: "Dev", Company: "X", Dates: "2020"}},
	}
	cv.Normalize()

	assert.NotNil(t, cv.Skills)
	assert.NotNil(t, cv.Education)
	assert.NotNil(t, cv.WorkExperience[0].Responsibilities)
	assert.Empty(t, cv.Skills)
}
