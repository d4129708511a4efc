package contacts

// ColumnMapping associates the semantic fields of a contact with column
// headers. An empty string means the slot is unset. Name and Message are
// optional; extraction requires Phone.
type ColumnMapping struct {
	Phone   string `json:"phone"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Detected reports whether auto-detection found anything at all. The UI
// uses this to show the "detected automatically" badge.
func (m ColumnMapping) Detected() bool {
	return m.Phone != "" || m.Name != "" || m.Message != ""
}

// AutoDetect builds a best-effort mapping from an ordered header list.
// Each header is classified once; it claims the slot for its category
// only if no earlier header already did (first match wins per slot).
func AutoDetect(headers []string) ColumnMapping {
	var m ColumnMapping
	for _, h := range headers {
		switch DetectColumnType(h) {
		case ColumnPhone:
			if m.Phone == "" {
				m.Phone = h
			}
		case ColumnName:
			if m.Name == "" {
				m.Name = h
			}
		case ColumnMessage:
			if m.Message == "" {
				m.Message = h
			}
		}
	}
	return m
}
