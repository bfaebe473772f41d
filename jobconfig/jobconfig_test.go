package jobconfig

import (
	"testing"
)

func TestParse_SectionedFormat(t *testing.T) {
	content := "[layerRenderParams]\njobDir = tower\nnumFast = 120\n"

	model, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	value, ok := model.Get("layerRenderParams", "jobDir")
	if !ok {
		t.Fatal("expected jobDir to be found")
	}
	if value != "tower" {
		t.Errorf("jobDir = %q, want %q", value, "tower")
	}
}

func TestParse_BareKeyValueFormat(t *testing.T) {
	content := "jobDir = tower\nnumFast = 120\n"

	model, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	value, ok := model.Get("layerRenderParams", "jobDir")
	if !ok {
		t.Fatal("expected jobDir to resolve through the fallback section")
	}
	if value != "tower" {
		t.Errorf("jobDir = %q, want %q", value, "tower")
	}
}

// A sectioned config and its bare key=value equivalent must answer lookups
// identically.
func TestParse_FormatEquivalence(t *testing.T) {
	sectioned, err := Parse([]byte("[layerRenderParams]\njobDir = calib\nnumFast = 42\n"))
	if err != nil {
		t.Fatalf("Parse(sectioned) failed: %v", err)
	}
	bare, err := Parse([]byte("jobDir = calib\nnumFast = 42\n"))
	if err != nil {
		t.Fatalf("Parse(bare) failed: %v", err)
	}

	for _, key := range []string{"jobDir", "numFast"} {
		a, aok := sectioned.Get("layerRenderParams", key)
		b, bok := bare.Get("layerRenderParams", key)
		if aok != bok || a != b {
			t.Errorf("lookup %q differs: sectioned=(%q,%v) bare=(%q,%v)", key, a, aok, b, bok)
		}
	}
}

func TestGet_ThreeTierFallback(t *testing.T) {
	content := "[layerRenderParams]\njobDir = primary\n[other]\nexpTime = 2.5\n"

	model, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tests := []struct {
		name      string
		section   string
		key       string
		wantValue string
		wantOK    bool
	}{
		{
			name:      "named section hit",
			section:   "layerRenderParams",
			key:       "jobDir",
			wantValue: "primary",
			wantOK:    true,
		},
		{
			name:      "any-section fallback",
			section:   "layerRenderParams",
			key:       "expTime",
			wantValue: "2.5",
			wantOK:    true,
		},
		{
			name:    "missing everywhere",
			section: "layerRenderParams",
			key:     "numSlow",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := model.Get(tt.section, tt.key)
			if ok != tt.wantOK {
				t.Fatalf("Get() ok = %v, want %v", ok, tt.wantOK)
			}
			if value != tt.wantValue {
				t.Errorf("Get() = %q, want %q", value, tt.wantValue)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	// A line with no key-value delimiter fails both parse attempts.
	if _, err := Parse([]byte("[layerRenderParams]\nthis line has no delimiter\n")); err == nil {
		t.Fatal("expected a parse error")
	}
}
