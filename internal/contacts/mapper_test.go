package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoDetect(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    ColumnMapping
	}{
		{
			"all three detected",
			[]string{"Name", "Phone", "Message"},
			ColumnMapping{Phone: "Phone", Name: "Name", Message: "Message"},
		},
		{
			"arabic headers",
			[]string{"اسم", "phone", "Mobile"},
			ColumnMapping{Phone: "phone", Name: "اسم"},
		},
		{
			"first match wins per slot",
			[]string{"Phone", "Mobile", "Tel"},
			ColumnMapping{Phone: "Phone"},
		},
		{
			"unknown headers leave slots empty",
			[]string{"Address", "City", "Zip"},
			ColumnMapping{},
		},
		{
			"order preserved across categories",
			[]string{"msg", "اسم العميل", "رقم الجوال"},
			ColumnMapping{Phone: "رقم الجوال", Name: "اسم العميل", Message: "msg"},
		},
		{
			"no headers",
			nil,
			ColumnMapping{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AutoDetect(tt.headers))
		})
	}
}

func TestColumnMappingDetected(t *testing.T) {
	assert.False(t, ColumnMapping{}.Detected())
	assert.True(t, ColumnMapping{Phone: "Phone"}.Detected())
	assert.True(t, ColumnMapping{Message: "msg"}.Detected())
}
