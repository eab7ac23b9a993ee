package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

var configVars = []string{
	"REM_DATA_DIR", "REM_FILE_PATTERN", "REM_OUTPUT_DIR", "REM_MASTER_FILE", "REM_PRETTY",
	"REM_SHEETS", "REM_BLANK_THRESHOLD", "REM_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT",
}

// clearEnv blanks every variable Load reads so defaults apply.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range configVars {
		t.Setenv(name, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Input.DataDir != "data" {
		t.Errorf("Input.DataDir = %q, want %q", cfg.Input.DataDir, "data")
	}
	if cfg.Output.MasterFile != "rem_bloques.json" {
		t.Errorf("Output.MasterFile = %q, want %q", cfg.Output.MasterFile, "rem_bloques.json")
	}
	if !cfg.Output.Pretty {
		t.Error("Output.Pretty = false, want true")
	}
	wantSheets := []string{"Cuadros de resultados", "Resultados TOP 10"}
	if !slices.Equal(cfg.Extract.Sheets, wantSheets) {
		t.Errorf("Extract.Sheets = %q, want %q", cfg.Extract.Sheets, wantSheets)
	}
	if cfg.Extract.BlankThreshold != 0.8 {
		t.Errorf("Extract.BlankThreshold = %v, want %v", cfg.Extract.BlankThreshold, 0.8)
	}
	if cfg.Extract.Timeout != 0 {
		t.Errorf("Extract.Timeout = %v, want 0", cfg.Extract.Timeout)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v, want info/text", cfg.Logging)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("REM_SHEETS", " Hoja A , ,Hoja B")
	t.Setenv("REM_BLANK_THRESHOLD", "0.5")
	t.Setenv("REM_TIMEOUT", "30s")
	t.Setenv("REM_PRETTY", "false")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if want := []string{"Hoja A", "Hoja B"}; !slices.Equal(cfg.Extract.Sheets, want) {
		t.Errorf("Extract.Sheets = %q, want %q", cfg.Extract.Sheets, want)
	}
	if cfg.Extract.BlankThreshold != 0.5 {
		t.Errorf("Extract.BlankThreshold = %v, want %v", cfg.Extract.BlankThreshold, 0.5)
	}
	if cfg.Extract.Timeout != 30*time.Second {
		t.Errorf("Extract.Timeout = %v, want %v", cfg.Extract.Timeout, 30*time.Second)
	}
	if cfg.Output.Pretty {
		t.Error("Output.Pretty = true, want false")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("REM_OUTPUT_DIR")
	t.Cleanup(func() { os.Unsetenv("REM_OUTPUT_DIR") })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("REM_OUTPUT_DIR=out\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Dir != "out" {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "out")
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("REM_TIMEOUT", "soon")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail on an invalid duration")
	}
	if !strings.Contains(err.Error(), "REM_TIMEOUT") {
		t.Errorf("error = %q, want it to name REM_TIMEOUT", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Output:  OutputConfig{MasterFile: "m.json"},
		Extract: ExtractConfig{Sheets: []string{"s"}, BlankThreshold: 0.8},
		Logging: LoggingConfig{Format: "text"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	cfg.Extract.BlankThreshold = 1.5
	cfg.Extract.Timeout = -time.Second
	cfg.Logging.Format = "xml"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, name := range []string{"REM_BLANK_THRESHOLD", "REM_TIMEOUT", "LOG_FORMAT"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error = %q, want it to name %s", err, name)
		}
	}
}
