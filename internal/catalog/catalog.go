// Package catalog holds the immutable set of job postings available in a
// session. The catalog is loaded once at startup and never mutated; queue
// state is always derived from it.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mcardoso/swipehire/internal/model"
)

//go:embed seed.json
var seedJSON []byte

// Catalog is an ordered, read-only list of postings with id lookup.
type Catalog struct {
	jobs []model.Job
	byID map[string]int
}

// New builds a catalog from postings, preserving their order. Posting
// descriptions and requirements are sanitized to plain text.
func New(jobs []model.Job) *Catalog {
	c := &Catalog{
		jobs: make([]model.Job, len(jobs)),
		byID: make(map[string]int, len(jobs)),
	}
	for i, j := range jobs {
		j.Description = StripHTML(j.Description)
		for k, req := range j.Requirements {
			j.Requirements[k] = StripHTML(req)
		}
		c.jobs[i] = j
		c.byID[j.ID] = i
	}
	return c
}

// Load decodes a JSON array of postings from r.
func Load(r io.Reader) (*Catalog, error) {
	var jobs []model.Job
	if err := json.NewDecoder(r).Decode(&jobs); err != nil {
		return nil, fmt.Errorf("catalog: decoding postings: %w", err)
	}
	return New(jobs), nil
}

// LoadFile reads a posting catalog from a JSON file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: opening %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Load(bytes.NewReader(seedJSON))
	if err != nil {
		// The seed is compiled in; failing to parse it is a build defect.
		panic(err)
	}
	return c
}

// All returns the postings in catalog order. The slice is a copy; the
// postings themselves are shared and must be treated as read-only.
func (c *Catalog) All() []model.Job {
	out := make([]model.Job, len(c.jobs))
	copy(out, c.jobs)
	return out
}

// ByID looks up a posting by id.
func (c *Catalog) ByID(id string) (model.Job, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Job{}, false
	}
	return c.jobs[i], true
}

// Len returns the number of postings.
func (c *Catalog) Len() int {
	return len(c.jobs)
}
