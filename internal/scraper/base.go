// Shared Listing Record used by every source
// Fixed column order so the persisted schema stays stable across appends

package scraper

// Columns is the persisted field order, headers included. Every row
// written to a partition follows this order regardless of which source
// produced it.
var Columns = []string{"job_url", "title", "company", "location", "date_posted", "job_type", "description"}

// Job is one normalized job posting, the unit flowing through the pipeline.
// All fields are plain strings; absent values are empty strings.
type Job struct {
	URL         string
	Title       string
	Company     string
	Location    string
	DatePosted  string
	JobType     string
	Description string
	Source      string
}

// Row coerces the record into Columns order. Source stays implicit (it
// only identifies which scanner produced the row) and is not persisted.
func (j Job) Row() []string {
	return []string{j.URL, j.Title, j.Company, j.Location, j.DatePosted, j.JobType, j.Description}
}
