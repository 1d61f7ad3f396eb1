package models

// Publication is a submitted publication as returned by the publication service.
// Attributes holds every field whose JSON value is truthy, keyed by its JSON name.
type Publication struct {
	ID         string            `json:"publication_id"`
	Status     string            `json:"status"`
	CiteAs     string            `json:"citeAs"`
	Proof      string            `json:"proofOfPublication,omitempty"`
	Attributes map[string]string `json:"-"`
}

// Patent is a patent record owned by a faculty member.
type Patent struct {
	ID             string            `json:"patent_id"`
	Status         string            `json:"status"`
	InventionTitle string            `json:"inventionTitle"`
	NumOfInventors int               `json:"numOfInventors"`
	Proof          string            `json:"proofOfPatent,omitempty"`
	Attributes     map[string]string `json:"-"`
}
