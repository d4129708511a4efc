package contacts

import "strings"

// ColumnType classifies what a spreadsheet column header refers to.
type ColumnType string

const (
	ColumnPhone   ColumnType = "phone"
	ColumnName    ColumnType = "name"
	ColumnMessage ColumnType = "message"
	ColumnUnknown ColumnType = "unknown"
)

// Pattern sets per category, English and Arabic. Matching is substring
// based against a normalized header (lowercased, underscores and hyphens
// removed), so "Phone_Number" and "phonenumber" both hit "phone".
var (
	phonePatterns = []string{
		"phone", "mobile", "رقم", "هاتف", "جوال", "موبايل", "tel", "cell",
	}
	namePatterns = []string{
		"name", "اسم", "إسم", "مشترك", "عميل", "customer", "client",
	}
	messagePatterns = []string{
		"message", "sms", "رسالة", "نص", "text", "msg", "content",
	}
)

// detectionOrder fixes the category priority: a header matching several
// categories is assigned to the earliest one.
var detectionOrder = []struct {
	columnType ColumnType
	patterns   []string
}{
	{ColumnPhone, phonePatterns},
	{ColumnName, namePatterns},
	{ColumnMessage, messagePatterns},
}

var headerNormalizer = strings.NewReplacer("_", "", "-", "")

// DetectColumnType classifies a single header string. It is total: every
// input maps to phone, name, message or unknown.
func DetectColumnType(header string) ColumnType {
	normalized := headerNormalizer.Replace(strings.ToLower(header))

	for _, cat := range detectionOrder {
		for _, p := range cat.patterns {
			if strings.Contains(normalized, p) {
				return cat.columnType
			}
		}
	}
	return ColumnUnknown
}
