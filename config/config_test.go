package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CPT_CONFIG", "")
	t.Setenv("CPT_DATA_FILE", "")
	os.Unsetenv("CPT_DATA_FILE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if *cfg != Default() {
		t.Errorf("Load() = %+v, want %+v", *cfg, Default())
	}
}

func TestLoad_Priorities(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "cpt.yaml")
	content := "data_file: from-file.csv\ncurrency: NPR\n"
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CPT_CONFIG", filename)
	t.Setenv("CPT_DATA_FILE", "from-env.csv")
	t.Setenv("CPT_VERBOSE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	want := Default()
	want.DataFile = "from-env.csv" // env beats file
	want.Currency = "NPR"          // file beats default
	want.Verbose = true
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("CPT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Errorf("Load() expected an error for a missing config file")
	}

	filename := filepath.Join(t.TempDir(), "cpt.yaml")
	if err := os.WriteFile(filename, []byte("unknown_key: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CPT_CONFIG", filename)
	if _, err := Load(); err == nil {
		t.Errorf("Load() expected an error for an unknown key")
	}

	t.Setenv("CPT_CONFIG", "")
	t.Setenv("CPT_VERBOSE", "not-a-bool")
	if _, err := Load(); err == nil {
		t.Errorf("Load() expected an error for an invalid boolean")
	}
}
