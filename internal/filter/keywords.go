package filter

// Keywords holds the static relevance lists. They are injected into the
// Classifier so tests can substitute smaller lists without touching the
// matching logic. All entries must be lower-case.
type Keywords struct {
	Positive []string
	Negative []string
}

// Default returns the production lists for the medical coding and
// clinical documentation niche. Negatives are software-role titles and
// are only ever checked against titles (see Classifier.Keep).
func Default() Keywords {
	return Keywords{
		Positive: []string{
			"medical coding",
			"medical coder",
			"medical billing",
			"clinical documentation",
			"cdi specialist",
			"icd-10",
			"icd 10",
			"cpt",
			"hcc coding",
			"risk adjustment",
			"inpatient coder",
			"outpatient coder",
			"coding auditor",
			"coding analyst",
			"health information management",
			"medical records",
			"revenue cycle",
			"cpc certified",
			"ccs certified",
		},
		Negative: []string{
			"software engineer",
			"software developer",
			"web developer",
			"frontend",
			"front end",
			"backend developer",
			"back end developer",
			"full stack",
			"fullstack",
			"devops",
			"data engineer",
			"machine learning",
			"programmer",
			"java developer",
			"python developer",
			".net developer",
			"sde",
		},
	}
}
