package driver

import (
	"os"
	"path/filepath"
	"testing"

	"subshift/internal/diag"
	"subshift/internal/shift"
	"subshift/internal/timecode"
)

const sampleInput = "1\n00:00:01,000 --> 00:00:03,500\nHello world\n\n"

func writeSample(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestShiftForwardInPlace(t *testing.T) {
	path := writeSample(t, "sample.srt", sampleInput)

	res, err := Shift(&ShiftRequest{
		Path:           path,
		Delta:          shift.Delta{Millis: 2 * timecode.Second},
		MaxDiagnostics: 16,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "1\n00:00:03,000 --> 00:00:05,500\nHello world\n\n"
	if string(got) != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if res.OutputPath != path {
		t.Errorf("OutputPath = %q, want %q", res.OutputPath, path)
	}
}

func TestShiftNegativeUnderflowRejected(t *testing.T) {
	path := writeSample(t, "sample.srt", sampleInput)

	res, err := Shift(&ShiftRequest{
		Path:           path,
		Delta:          shift.Delta{Millis: timecode.Second + 500, Negative: true},
		MaxDiagnostics: 16,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("expected a NegativeResult diagnostic")
	}
	if res.Bag.Items()[0].Code != diag.ShiftNegativeResult {
		t.Errorf("code = %s", res.Bag.Items()[0].Code.ID())
	}

	// пайплайн не должен был ничего записать
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != sampleInput {
		t.Error("input file was modified despite the error")
	}
	if res.OutputPath != "" {
		t.Errorf("OutputPath = %q, want empty", res.OutputPath)
	}
}

func TestShiftNegativeWithinBounds(t *testing.T) {
	path := writeSample(t, "sample.srt", sampleInput)

	res, err := Shift(&ShiftRequest{
		Path:           path,
		Delta:          shift.Delta{Millis: timecode.Second, Negative: true},
		MaxDiagnostics: 16,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}

	got, _ := os.ReadFile(path)
	want := "1\n00:00:00,000 --> 00:00:02,500\nHello world\n\n"
	if string(got) != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestShiftExplicitOutputPath(t *testing.T) {
	path := writeSample(t, "sample.srt", sampleInput)
	outPath := filepath.Join(filepath.Dir(path), "out.srt")

	_, err := Shift(&ShiftRequest{
		Path:           path,
		Delta:          shift.Delta{Millis: timecode.Second},
		OutputPath:     outPath,
		MaxDiagnostics: 16,
	})
	if err != nil {
		t.Fatal(err)
	}

	// вход не тронут, выход записан отдельно
	got, _ := os.ReadFile(path)
	if string(got) != sampleInput {
		t.Error("input file was modified")
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestShiftSuffixNaming(t *testing.T) {
	path := writeSample(t, "movie.srt", sampleInput)

	res, err := Shift(&ShiftRequest{
		Path:           path,
		Delta:          shift.Delta{Millis: timecode.Second},
		Suffix:         ".shifted",
		MaxDiagnostics: 16,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(filepath.Dir(path), "movie.shifted.srt")
	if res.OutputPath != want {
		t.Errorf("OutputPath = %q, want %q", res.OutputPath, want)
	}
}

func TestShiftBackup(t *testing.T) {
	path := writeSample(t, "sample.srt", sampleInput)

	_, err := Shift(&ShiftRequest{
		Path:           path,
		Delta:          shift.Delta{Millis: timecode.Second},
		Backup:         true,
		MaxDiagnostics: 16,
	})
	if err != nil {
		t.Fatal(err)
	}

	backup, err := os.ReadFile(path + ".bak")
	if err != nil {
		t.Fatalf("backup missing: %v", err)
	}
	if string(backup) != sampleInput {
		t.Errorf("backup = %q, want original input", backup)
	}
}

func TestShiftLatin1RoundTrip(t *testing.T) {
	// latin1-файл: é = 0xE9; после сдвига кодировка сохраняется
	input := "1\n00:00:01,000 --> 00:00:02,000\ncaf\xE9\n\n"
	path := writeSample(t, "legacy.srt", input)

	res, err := Shift(&ShiftRequest{
		Path:           path,
		Delta:          shift.Delta{Millis: timecode.Second},
		Encoding:       "latin1",
		MaxDiagnostics: 16,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}

	got, _ := os.ReadFile(path)
	want := "1\n00:00:02,000 --> 00:00:03,000\ncaf\xE9\n\n"
	if string(got) != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestShiftParseErrorNoWrite(t *testing.T) {
	input := "abc\n00:00:01,000 --> 00:00:02,000\nhi\n\n"
	path := writeSample(t, "bad.srt", input)

	res, err := Shift(&ShiftRequest{
		Path:           path,
		Delta:          shift.Delta{Millis: timecode.Second},
		MaxDiagnostics: 16,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("expected a diagnostic")
	}
	got, _ := os.ReadFile(path)
	if string(got) != input {
		t.Error("input file was modified despite the parse error")
	}
}

func TestShiftMissingFile(t *testing.T) {
	_, err := Shift(&ShiftRequest{
		Path:           filepath.Join(t.TempDir(), "nope.srt"),
		Delta:          shift.Delta{Millis: timecode.Second},
		MaxDiagnostics: 16,
	})
	if err == nil {
		t.Error("expected an I/O error")
	}
}

func TestShiftTimings(t *testing.T) {
	path := writeSample(t, "sample.srt", sampleInput)

	res, err := Shift(&ShiftRequest{
		Path:           path,
		Delta:          shift.Delta{Millis: timecode.Second},
		MaxDiagnostics: 16,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Timing.Phases) != 5 {
		t.Errorf("got %d phases, want 5 (load/parse/shift/serialize/write)", len(res.Timing.Phases))
	}
}
