package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcardoso/swipehire/internal/filter"
	"github.com/mcardoso/swipehire/internal/model"
)

var jobs = []model.Job{
	{
		ID:           "1",
		Title:        "Senior Frontend Developer",
		Company:      model.Company{Name: "TechFlow Inc."},
		Description:  "Build web applications with React.",
		Requirements: []string{"5+ years React experience", "TypeScript proficiency"},
		SalaryMin:    100000,
		SalaryMax:    140000,
		Location:     model.Location{City: "San Francisco", State: "CA", Remote: true},
		JobType:      "Full-time",
	},
	{
		ID:          "2",
		Title:       "Product Manager",
		Company:     model.Company{Name: "InnovateLabs"},
		Description: "Drive product strategy for our fintech platform.",
		SalaryMin:   120000,
		SalaryMax:   160000,
		Location:    model.Location{City: "New York", State: "NY"},
		JobType:     "Full-time",
	},
	{
		ID:          "3",
		Title:       "Design Intern",
		Company:     model.Company{Name: "DesignStudio"},
		Description: "Support the design team.",
		Location:    model.Location{City: "Austin", State: "TX", Remote: true},
		JobType:     "Internship",
	},
}

func ids(jobs []model.Job) []string {
	var out []string
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestEmptyOptionsReturnEverything(t *testing.T) {
	assert.Equal(t, jobs, filter.Apply(jobs, filter.Options{}))
}

func TestQueryMatchesAcrossFields(t *testing.T) {
	cases := []struct {
		query string
		want  []string
	}{
		{"frontend", []string{"1"}},    // title
		{"innovatelabs", []string{"2"}}, // company
		{"fintech", []string{"2"}},     // description
		{"austin", []string{"3"}},      // city
		{"typescript", []string{"1"}},  // requirements
		{"  React ", []string{"1"}},    // trimmed, case-insensitive
		{"cobol", nil},
	}
	for _, tc := range cases {
		got := filter.Apply(jobs, filter.Options{Query: tc.query})
		assert.Equal(t, tc.want, ids(got), "query %q", tc.query)
	}
}

func TestCriteriaFilters(t *testing.T) {
	remote := filter.Apply(jobs, filter.Options{Remote: true})
	assert.Equal(t, []string{"1", "3"}, ids(remote))

	fullTime := filter.Apply(jobs, filter.Options{JobType: "full-time,contract"})
	assert.Equal(t, []string{"1", "2"}, ids(fullTime))

	city := filter.Apply(jobs, filter.Options{City: "new york"})
	assert.Equal(t, []string{"2"}, ids(city))

	// Undisclosed salaries (job 3) are excluded by a salary floor.
	paid := filter.Apply(jobs, filter.Options{MinSalary: 150000})
	assert.Equal(t, []string{"2"}, ids(paid))
}

func TestCriteriaCombine(t *testing.T) {
	got := filter.Apply(jobs, filter.Options{Query: "react", Remote: true, JobType: "full-time"})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	none := filter.Apply(jobs, filter.Options{Query: "react", City: "new york"})
	assert.Empty(t, none)
}
