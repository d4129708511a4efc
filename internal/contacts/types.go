package contacts

// RawRow maps a spreadsheet column header to the cell value for one row.
// Rows are produced by the spreadsheet ingestor and are read-only to the
// extraction pipeline.
type RawRow map[string]string

// Contact is a validated recipient derived from one spreadsheet row.
// Contacts are never mutated after extraction; a mapping change discards
// the whole list and re-derives it from the raw rows.
type Contact struct {
	Phone         string `json:"phone"`
	Name          string `json:"name"`
	CustomMessage string `json:"custom_message,omitempty"`
}

// Stats summarizes one extraction pass over the raw rows.
type Stats struct {
	TotalRows int `json:"total_rows"`
	Accepted  int `json:"accepted"`
	Rejected  int `json:"rejected"`
}
