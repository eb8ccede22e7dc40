package timex_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ferdiebergado/inkwell/internal/pkg/timex"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"minutes", `"15m"`, 15 * time.Minute, false},
		{"hours", `"24h"`, 24 * time.Hour, false},
		{"compound", `"1h30m"`, 90 * time.Minute, false},
		{"not a duration", `"soon"`, 0, true},
		{"not a string", `15`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var d timex.Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if d.Duration != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, d.Duration, tt.want)
			}
		})
	}
}
