package contacts

import "strings"

// Extract derives the contact list from raw rows under the given mapping.
//
// Rows with an empty phone cell are skipped silently; rows whose phone
// fails validation increment the rejected counter and are skipped too.
// The whole batch never fails on a bad row — partial success is the
// default. Extract is pure: same rows and mapping always produce the
// same list, so callers re-run it from scratch whenever the mapping
// changes instead of patching the previous result.
func Extract(rows []RawRow, m ColumnMapping) ([]Contact, Stats) {
	stats := Stats{TotalRows: len(rows)}
	out := []Contact{}

	// No phone column, nothing to extract.
	if m.Phone == "" {
		return out, stats
	}

	for _, row := range rows {
		rawPhone := strings.TrimSpace(row[m.Phone])
		if rawPhone == "" {
			continue
		}

		res := NormalizePhone(rawPhone)
		if !res.Valid {
			stats.Rejected++
			continue
		}

		c := Contact{Phone: res.Cleaned}
		if m.Name != "" {
			c.Name = strings.TrimSpace(row[m.Name])
		}
		if m.Message != "" {
			c.CustomMessage = strings.TrimSpace(row[m.Message])
		}
		out = append(out, c)
	}

	stats.Accepted = len(out)
	return out, stats
}
