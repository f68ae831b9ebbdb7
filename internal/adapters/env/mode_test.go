package env

import (
	"testing"

	"github.com/3-lines-studio/folio/internal/core"
)

func TestDetectMode(t *testing.T) {
	tests := []struct {
		value string
		want  core.Mode
	}{
		{"1", core.ModeDev},
		{"", core.ModeProd},
		{"0", core.ModeProd},
		{"true", core.ModeProd},
	}

	for _, tt := range tests {
		t.Setenv(DevVar, tt.value)
		if got := DetectMode(); got != tt.want {
			t.Errorf("DetectMode() with %s=%q = %v, want %v", DevVar, tt.value, got, tt.want)
		}
	}
}
