// Package filter implements browse-page search over the catalog. It is
// presentation-side only: queue derivation never goes through here.
package filter

import (
	"strings"

	"github.com/mcardoso/swipehire/internal/model"
)

// Options holds all filter criteria. Empty fields mean "no filter".
type Options struct {
	Query     string // free-text search over title, company, description, city, requirements
	JobType   string // comma-separated, e.g. "full-time,contract"
	City      string // text to match against the posting city
	Remote    bool   // keep only remote postings
	MinSalary int    // keep postings whose range can reach this amount
}

// Apply filters postings, returning only those that match all criteria.
func Apply(jobs []model.Job, opts Options) []model.Job {
	if opts.isEmpty() {
		return jobs
	}

	var result []model.Job
	for _, j := range jobs {
		if matchJob(j, opts) {
			result = append(result, j)
		}
	}
	return result
}

func matchJob(j model.Job, opts Options) bool {
	if opts.Query != "" && !strings.Contains(j.FullText(), strings.ToLower(strings.TrimSpace(opts.Query))) {
		return false
	}
	if opts.JobType != "" && !containsAny(strings.ToLower(j.JobType), opts.JobType) {
		return false
	}
	if opts.City != "" && !strings.Contains(strings.ToLower(j.Location.City), strings.ToLower(opts.City)) {
		return false
	}
	if opts.Remote && !j.Location.Remote {
		return false
	}
	if opts.MinSalary > 0 {
		top := j.SalaryMax
		if top == 0 {
			top = j.SalaryMin
		}
		if top < opts.MinSalary {
			return false
		}
	}
	return true
}

// containsAny checks if text contains any of the comma-separated terms.
func containsAny(text, terms string) bool {
	for _, term := range strings.Split(terms, ",") {
		term = strings.TrimSpace(strings.ToLower(term))
		if term != "" && strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func (o Options) isEmpty() bool {
	return o.Query == "" && o.JobType == "" && o.City == "" && !o.Remote && o.MinSalary == 0
}
