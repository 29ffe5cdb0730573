package boards

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchNormalizesDates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, searchPath, r.URL.Path)

		var req SearchRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Medical coding", req.SearchTerm)
		assert.Equal(t, []string{"indeed", "linkedin"}, req.SiteName)

		//date_posted arrives in three shapes: string, null, bare number
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":3,"jobs":[
			{"job_url":"https://a","title":"Medical Coder","date_posted":"2026-08-27","site":"indeed"},
			{"job_url":"https://b","title":"CDI Specialist","date_posted":null,"site":"linkedin"},
			{"job_url":"https://c","title":"Coding Auditor","date_posted":20260827,"site":"indeed"}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	jobs, err := client.Search(context.Background(), SearchRequest{
		SiteName:      []string{"indeed", "linkedin"},
		SearchTerm:    "Medical coding",
		Location:      "Hyderabad",
		ResultsWanted: 20,
		HoursOld:      72,
	})

	assert.NoError(t, err)
	assert.Len(t, jobs, 3)
	assert.Equal(t, "2026-08-27", jobs[0].DatePosted)
	assert.Equal(t, "", jobs[1].DatePosted)
	assert.Equal(t, "20260827", jobs[2].DatePosted)
	assert.Equal(t, "indeed", jobs[0].Source)
}

func TestSearchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "scrape blocked", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	jobs, err := client.Search(context.Background(), SearchRequest{SearchTerm: "Medical coding"})

	assert.Error(t, err)
	assert.Nil(t, jobs)
	assert.Contains(t, err.Error(), "502")
}
