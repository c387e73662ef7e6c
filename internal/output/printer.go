package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mcardoso/swipehire/internal/model"
)

// Printer renders jobs and applications for the terminal.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// Card renders the current job as a swipe card, with an optional preview
// line for the next job in the queue.
func (p *Printer) Card(job model.Job, next *model.Job) {
	line := strings.Repeat("─", 60)
	fmt.Fprintln(p.w, "┌"+line+"┐")
	fmt.Fprintf(p.w, "  %s\n", job.Title)
	fmt.Fprintf(p.w, "  %s · %s\n", job.Company.Name, job.Company.Size)
	fmt.Fprintf(p.w, "  %s · %s · %s\n", job.FormatLocation(), job.FormatSalary(), job.JobType)
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "  %s\n", job.Description)
	if len(job.Requirements) > 0 {
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w, "  Key Requirements:")
		for _, req := range job.Requirements {
			fmt.Fprintf(p.w, "   • %s\n", req)
		}
	}
	if len(job.Benefits) > 0 {
		fmt.Fprintln(p.w)
		fmt.Fprintf(p.w, "  Benefits: %s\n", strings.Join(job.Benefits, ", "))
	}
	fmt.Fprintln(p.w, "└"+line+"┘")
	if next != nil {
		fmt.Fprintf(p.w, "  next: %s @ %s\n", next.Title, next.Company.Name)
	}
}

// JobList renders browse results as a table.
func (p *Printer) JobList(jobs []model.Job) error {
	if len(jobs) == 0 {
		fmt.Fprintln(p.w, "No jobs found.")
		return nil
	}

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tLOCATION\tSALARY")
	fmt.Fprintln(w, "--\t-----\t-------\t--------\t------")
	for _, j := range jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			j.ID, j.Title, j.Company.Name, j.FormatLocation(), j.FormatSalary())
	}
	return w.Flush()
}

// Applications renders the application list as a table, newest first.
func (p *Printer) Applications(apps []model.Application) error {
	if len(apps) == 0 {
		fmt.Fprintln(p.w, "No applications yet.")
		return nil
	}

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tJOB\tCOMPANY\tSTATUS\tAPPLIED")
	fmt.Fprintln(w, "--\t---\t-------\t------\t-------")
	for _, a := range apps {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.JobTitle, a.CompanyName, a.Status, a.AppliedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
