package common_test

import (
	"testing"

	"cssb/common"
)

func TestParseOutputFmt(t *testing.T) {
	for _, name := range common.OutputFmtNames() {
		f, err := common.ParseOutputFmt(name)
		if err != nil {
			t.Errorf("ParseOutputFmt(%q) failed: %v", name, err)
		}
		if f.String() != name {
			t.Errorf("round trip for %q gave %q", name, f.String())
		}
		if !f.IsValid() {
			t.Errorf("IsValid() = false for %q", name)
		}
	}

	if _, err := common.ParseOutputFmt("xml"); err == nil {
		t.Error("ParseOutputFmt(\"xml\") succeeded, want error")
	}
}

func TestOutputFmt_Ext(t *testing.T) {
	tests := []struct {
		f    common.OutputFmt
		want string
	}{
		{common.OutputFmtText, ".txt"},
		{common.OutputFmtCss, ".css"},
		{common.OutputFmtJson, ".json"},
	}
	for _, tt := range tests {
		if got := tt.f.Ext(); got != tt.want {
			t.Errorf("%s.Ext() = %q, want %q", tt.f, got, tt.want)
		}
	}
}
