package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcardoso/swipehire/internal/model"
)

func TestFormatSalary(t *testing.T) {
	cases := []struct {
		min, max int
		want     string
	}{
		{0, 0, "Salary not disclosed"},
		{100000, 140000, "$100k - $140k"},
		{95000, 0, "$95k+"},
		{0, 110000, "Up to $110k"},
	}
	for _, tc := range cases {
		j := model.Job{SalaryMin: tc.min, SalaryMax: tc.max}
		assert.Equal(t, tc.want, j.FormatSalary())
	}
}

func TestFormatLocation(t *testing.T) {
	onsite := model.Job{Location: model.Location{City: "Boston", State: "MA"}}
	assert.Equal(t, "Boston, MA", onsite.FormatLocation())

	remote := model.Job{Location: model.Location{City: "Denver", State: "CO", Remote: true}}
	assert.Equal(t, "Denver, CO (Remote)", remote.FormatLocation())
}

func TestFullTextIsLowercaseAndCoversSearchFields(t *testing.T) {
	j := model.Job{
		Title:        "Senior Frontend Developer",
		Company:      model.Company{Name: "TechFlow Inc."},
		Description:  "Build web applications.",
		Requirements: []string{"TypeScript proficiency"},
		Location:     model.Location{City: "San Francisco", State: "CA"},
		JobType:      "Full-time",
	}

	text := j.FullText()
	assert.Contains(t, text, "senior frontend developer")
	assert.Contains(t, text, "techflow inc.")
	assert.Contains(t, text, "typescript")
	assert.Contains(t, text, "san francisco")
	assert.NotContains(t, text, "Senior")
}
