package checks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
)

const testConfig = "[layerRenderParams]\njobDir = tower\nnumFast = 5\n"

func writeJobArchive(t *testing.T, name string, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create archive: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for entry, content := range entries {
		w, err := zw.Create(entry)
		if err != nil {
			t.Fatalf("failed to create entry %s: %v", entry, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("failed to write entry %s: %v", entry, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to finalize archive: %v", err)
	}

	return path
}

func validJobEntries() map[string]string {
	entries := map[string]string{
		"config.ini":                 testConfig,
		"prusaslicer.ini":            "layer_height = 0.05\n",
		"thumbnail/thumbnail.png":    "png",
		"preview/preview400x400.png": "png",
	}
	for i := 0; i < 5; i++ {
		entries[fmt.Sprintf("tower%05d.png", i)] = "png"
	}
	return entries
}

func TestValidateFile_ValidPackage(t *testing.T) {
	v := newTestValidator()
	path := writeJobArchive(t, "tower.sl1s", validJobEntries())

	rep := v.ValidateFile(path)

	if !rep.Passed() {
		t.Errorf("expected a clean pass, got errors: %+v", rep.Errors())
	}
	if len(rep.Warnings()) != 0 {
		t.Errorf("expected no warnings, got: %+v", rep.Warnings())
	}
}

func TestValidateFile_MissingFile(t *testing.T) {
	v := newTestValidator()

	rep := v.ValidateFile(filepath.Join(t.TempDir(), "absent.sl1s"))

	if len(rep.Errors()) != 1 {
		t.Fatalf("expected exactly one error, got %d: %+v", len(rep.Errors()), rep.Errors())
	}
	if !strings.Contains(rep.Errors()[0].Message, "file not found") {
		t.Errorf("unexpected error: %q", rep.Errors()[0].Message)
	}
}

func TestValidateFile_NotAnArchive(t *testing.T) {
	v := newTestValidator()
	path := filepath.Join(t.TempDir(), "garbage.sl1s")
	if err := os.WriteFile(path, []byte("not a zip at all"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	rep := v.ValidateFile(path)

	if len(rep.Errors()) != 1 {
		t.Fatalf("an unreadable archive should abort with one error, got %d: %+v",
			len(rep.Errors()), rep.Errors())
	}
	if !strings.Contains(rep.Errors()[0].Message, "not a valid ZIP archive") {
		t.Errorf("unexpected error: %q", rep.Errors()[0].Message)
	}
}

func TestValidateFile_ExtensionAdvisory(t *testing.T) {
	v := newTestValidator()
	path := writeJobArchive(t, "tower.zip", validJobEntries())

	rep := v.ValidateFile(path)

	if !rep.Passed() {
		t.Errorf("extension alone must not fail validation: %+v", rep.Errors())
	}
	if len(rep.Warnings()) != 1 || !strings.Contains(rep.Warnings()[0].Message, "extension") {
		t.Errorf("expected a single extension advisory: %+v", rep.Warnings())
	}
}

func TestValidateFile_BrokenConfigSkipsConsistency(t *testing.T) {
	v := newTestValidator()
	entries := validJobEntries()
	entries["config.ini"] = "[layerRenderParams]\nno delimiter on this line\n"
	path := writeJobArchive(t, "tower.sl1s", entries)

	rep := v.ValidateFile(path)

	if rep.Passed() {
		t.Fatal("a broken config should fail validation")
	}
	for _, finding := range rep.Errors() {
		if finding.Stage == StageConsistency {
			t.Errorf("consistency stage should be skipped when config parsing fails: %+v", finding)
		}
	}
}

func TestValidateFile_AccumulatesAcrossStages(t *testing.T) {
	v := newTestValidator()
	entries := map[string]string{
		// prusaslicer.ini missing, numFast disagrees with the four images.
		"config.ini":     "[layerRenderParams]\njobDir = tower\nnumFast = 9\n",
		"tower00000.png": "png",
		"tower00001.png": "png",
		"tower00002.png": "png",
		"tower00003.png": "png",
	}
	path := writeJobArchive(t, "tower.sl1s", entries)

	rep := v.ValidateFile(path)

	stages := make(map[string]bool)
	for _, finding := range rep.Errors() {
		stages[finding.Stage] = true
	}
	if !stages[StageRequired] || !stages[StageConsistency] {
		t.Errorf("expected findings from both required and consistency stages: %+v", rep.Errors())
	}
}

func TestInspect(t *testing.T) {
	v := newTestValidator()
	path := writeJobArchive(t, "tower.sl1s", validJobEntries())

	summary, err := v.Inspect(path)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	if summary.JobName != "tower" {
		t.Errorf("JobName = %q, want %q", summary.JobName, "tower")
	}
	if summary.DeclaredLayers != "5" {
		t.Errorf("DeclaredLayers = %q, want %q", summary.DeclaredLayers, "5")
	}
	if summary.LayerCount != 5 {
		t.Errorf("LayerCount = %d, want 5", summary.LayerCount)
	}
	if summary.MinIndex != 0 || summary.MaxIndex != 4 {
		t.Errorf("index range = [%d, %d], want [0, 4]", summary.MinIndex, summary.MaxIndex)
	}
	if summary.Entries != len(validJobEntries()) {
		t.Errorf("Entries = %d, want %d", summary.Entries, len(validJobEntries()))
	}
}

func TestInspect_NotAnArchive(t *testing.T) {
	v := newTestValidator()
	path := filepath.Join(t.TempDir(), "garbage.sl1s")
	if err := os.WriteFile(path, []byte("not a zip"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := v.Inspect(path); err == nil {
		t.Error("expected an error for an unreadable archive")
	}
}
