package naming

import "testing"

func TestSanitizeID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercase passthrough",
			input: "cluster-01",
			want:  "cluster-01",
		},
		{
			name:  "case fold",
			input: "Production-DC",
			want:  "production-dc",
		},
		{
			name:  "dots become dashes",
			input: "ESXi-Host_01.corp",
			want:  "esxi-host_01-corp",
		},
		{
			name:  "spaces and slashes collapse",
			input: "Rack 12 / Row B",
			want:  "rack-12-row-b",
		},
		{
			name:  "consecutive separators collapse",
			input: "a..b--c",
			want:  "a-b-c",
		},
		{
			name:  "leading and trailing junk trimmed",
			input: "  vm-app-01  ",
			want:  "vm-app-01",
		},
		{
			name:  "underscores preserved",
			input: "asset_tag_42",
			want:  "asset_tag_42",
		},
		{
			name:  "unicode replaced",
			input: "zürich-dc",
			want:  "z-rich-dc",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only junk",
			input: "***",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeID(tt.input); got != tt.want {
				t.Errorf("SanitizeID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeIDDeterministic(t *testing.T) {
	if SanitizeID("ESXi-Host_01.corp") != SanitizeID("ESXi-Host_01.corp") {
		t.Error("SanitizeID should be deterministic")
	}
	if SanitizeID("A") != SanitizeID("a") {
		t.Error("SanitizeID should case-fold: A and a must produce the same id")
	}
}

func TestPrefixed(t *testing.T) {
	got := Prefixed("host", "ESXi-01.corp")
	want := "host-esxi-01-corp"
	if got != want {
		t.Errorf("Prefixed() = %q, want %q", got, want)
	}
}

func TestNormalizeDisplayName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"corp suffix", "db01.corp", "db01"},
		{"local suffix", "esxi-03.local", "esxi-03"},
		{"internal suffix", "web.internal", "web"},
		{"lan suffix", "nas.lan", "nas"},
		{"case-insensitive suffix match", "DB01.CORP", "DB01"},
		{"no suffix", "db01.example.com", "db01.example.com"},
		{"suffix in the middle stays", "corp.db01", "corp.db01"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDisplayName(tt.input); got != tt.want {
				t.Errorf("NormalizeDisplayName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
