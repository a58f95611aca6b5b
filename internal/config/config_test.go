package config

import (
	"testing"
	"time"
)

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.OutputDir != "probe-output" {
		t.Errorf("default OutputDir = %q, want %q", cfg.OutputDir, "probe-output")
	}
	if cfg.Rows != 100 {
		t.Errorf("default Rows = %d, want 100", cfg.Rows)
	}
	if cfg.Target != 30*time.Second {
		t.Errorf("default Target = %s, want 30s", cfg.Target)
	}
	if cfg.Format != FormatAuto {
		t.Errorf("default Format = %q, want %q", cfg.Format, FormatAuto)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
	if !cfg.TableEnabled {
		t.Error("default TableEnabled should be true")
	}
	if !cfg.Wait {
		t.Error("default Wait should be true")
	}
	if cfg.CheckOnly {
		t.Error("default CheckOnly should be false")
	}
}

func TestValidate_Format(t *testing.T) {
	tests := []struct {
		name    string
		format  FormatMode
		wantErr bool
	}{
		{"auto is valid", FormatAuto, false},
		{"feather is valid", FormatFeather, false},
		{"csv is valid", FormatCSV, false},
		{"empty is invalid", "", true},
		{"parquet is invalid", "parquet", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Format = tt.format
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Rows(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		wantErr bool
	}{
		{"default rows", 100, false},
		{"single row", 1, false},
		{"zero rows", 0, true},
		{"negative rows", -5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Rows = tt.rows
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Target(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Target = -time.Second
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject a negative target duration")
	}

	cfg.Target = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() should accept a zero target, got: %v", err)
	}
}

func TestValidate_OutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject an empty output directory")
	}
}

func TestResolveRunID(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		env  string
		want string
	}{
		{"positional arg wins", "run42", "99881", "run42"},
		{"env var when no arg", "", "99881", "99881"},
		{"literal fallback", "", "", DefaultRunID},
		{"whitespace env ignored", "", "   ", DefaultRunID},
		{"arbitrary string accepted", "any string at all", "", "any string at all"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(RunIDEnvVar, tt.env)
			got := ResolveRunID(tt.arg)
			if got != tt.want {
				t.Errorf("ResolveRunID(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestFormatMode_Resolved(t *testing.T) {
	if got := FormatAuto.Resolved(); got != FormatFeather {
		t.Errorf("FormatAuto.Resolved() = %q, want %q", got, FormatFeather)
	}
	if got := FormatCSV.Resolved(); got != FormatCSV {
		t.Errorf("FormatCSV.Resolved() = %q, want %q", got, FormatCSV)
	}
}

func TestFormatMode_Ext(t *testing.T) {
	tests := []struct {
		format FormatMode
		want   string
	}{
		{FormatAuto, "feather"},
		{FormatFeather, "feather"},
		{FormatCSV, "csv"},
	}
	for _, tt := range tests {
		if got := tt.format.Ext(); got != tt.want {
			t.Errorf("%q.Ext() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormatValue_Set(t *testing.T) {
	tests := []struct {
		in      string
		want    FormatMode
		wantErr bool
	}{
		{"auto", FormatAuto, false},
		{"FEATHER", FormatFeather, false},
		{"csv", FormatCSV, false},
		{"tsv", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var m FormatMode
			err := (&formatValue{&m}).Set(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && m != tt.want {
				t.Errorf("Set(%q) -> %q, want %q", tt.in, m, tt.want)
			}
		})
	}
}

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "probe-output", "probe-output"},
		{"single trailing slash", "probe-output/", "probe-output"},
		{"multiple trailing slashes", "/scratch/out///", "/scratch/out"},
		{"root path", "/", "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDirArg(tt.in); got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
