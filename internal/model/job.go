package model

import (
	"fmt"
	"strings"
	"time"
)

// Company identifies the employer behind a posting.
type Company struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
	Size    string `json:"size"`
}

// Location is where the job is based.
type Location struct {
	City   string `json:"city"`
	State  string `json:"state"`
	Remote bool   `json:"isRemote"`
}

// Job represents a single job posting from the catalog.
// Postings are immutable once loaded; a zero salary bound means undisclosed.
type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      Company   `json:"company"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	SalaryMin    int       `json:"salaryMin,omitempty"`
	SalaryMax    int       `json:"salaryMax,omitempty"`
	Location     Location  `json:"location"`
	JobType      string    `json:"jobType"`
	Benefits     []string  `json:"benefits,omitempty"`
	PostedDate   time.Time `json:"postedDate"`
}

// FullText returns all searchable text fields concatenated in lowercase.
func (j Job) FullText() string {
	return strings.ToLower(
		j.Title + " " + j.Company.Name + " " + j.Description + " " +
			j.JobType + " " + j.Location.City + " " + j.Location.State + " " +
			strings.Join(j.Requirements, " "),
	)
}

// FormatSalary renders the salary range for display.
func (j Job) FormatSalary() string {
	switch {
	case j.SalaryMin == 0 && j.SalaryMax == 0:
		return "Salary not disclosed"
	case j.SalaryMin > 0 && j.SalaryMax > 0:
		return fmt.Sprintf("$%dk - $%dk", j.SalaryMin/1000, j.SalaryMax/1000)
	case j.SalaryMin > 0:
		return fmt.Sprintf("$%dk+", j.SalaryMin/1000)
	default:
		return fmt.Sprintf("Up to $%dk", j.SalaryMax/1000)
	}
}

// FormatLocation renders "City, ST" with a remote marker when applicable.
func (j Job) FormatLocation() string {
	loc := j.Location.City + ", " + j.Location.State
	if j.Location.Remote {
		loc += " (Remote)"
	}
	return loc
}
