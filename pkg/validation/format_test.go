package validation

import (
	"testing"

	"github.com/iwvelando/project-pricing/pkg/constants"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"Pretty format", constants.OutputFormatPretty, false},
		{"CSV format", constants.OutputFormatCSV, false},
		{"Empty", "", true},
		{"Unknown", "xml", true},
		{"Case mismatch", "Pretty", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateOutputFormat(%q) expected error", tt.format)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateOutputFormat(%q) returned error: %v", tt.format, err)
			}
		})
	}
}
