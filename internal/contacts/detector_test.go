package contacts

import "testing"

func TestDetectColumnType(t *testing.T) {
	tests := []struct {
		header string
		want   ColumnType
	}{
		{"Phone", ColumnPhone},
		{"phone_number", ColumnPhone},
		{"Mobile", ColumnPhone},
		{"Tel", ColumnPhone},
		{"رقم الهاتف", ColumnPhone},
		{"الجوال", ColumnPhone},
		{"Name", ColumnName},
		{"customer_name", ColumnName},
		{"اسم", ColumnName},
		{"اسم العميل", ColumnName},
		{"Client", ColumnName},
		{"Message", ColumnMessage},
		{"SMS-Text", ColumnMessage},
		{"نص الرسالة", ColumnMessage},
		{"msg_body", ColumnMessage},
		{"Address", ColumnUnknown},
		{"", ColumnUnknown},
		{"عنوان", ColumnUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := DetectColumnType(tt.header); got != tt.want {
				t.Errorf("DetectColumnType(%q) = %s, want %s", tt.header, got, tt.want)
			}
		})
	}
}

// A header hitting several categories goes to the earliest one in the
// fixed phone → name → message priority order.
func TestDetectColumnTypePriority(t *testing.T) {
	// "phone message" matches both phone and message patterns.
	if got := DetectColumnType("phone message"); got != ColumnPhone {
		t.Errorf("priority: got %s, want %s", got, ColumnPhone)
	}
	// "client text" matches both name and message patterns.
	if got := DetectColumnType("client text"); got != ColumnName {
		t.Errorf("priority: got %s, want %s", got, ColumnName)
	}
}

func TestDetectColumnTypeNormalization(t *testing.T) {
	// Underscores and hyphens are removed before matching, so split
	// pattern words still match.
	if got := DetectColumnType("P_H_O_N_E"); got != ColumnPhone {
		t.Errorf("normalization: got %s, want %s", got, ColumnPhone)
	}
}
