package naming

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Line", "Line"},
		{"spaces trimmed", "  Rough  ", "Rough"},
		{"path separators", "bg/sky", "bg_sky"},
		{"windows separators", `fx\glow`, "fx_glow"},
		{"drive colon", "C:frames", "C_frames"},
		{"removed characters", `a<b>c"d?e|f`, "abcdef"},
		{"empty", "", "layer"},
		{"only unsafe", `???`, "layer"},
		{"trailing dots", "shadow...", "shadow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUniqueSetClaim(t *testing.T) {
	set := NewUniqueSet()

	if got := set.Claim("Line"); got != "Line" {
		t.Errorf("first claim = %q, want Line", got)
	}
	if got := set.Claim("Line"); got != "Line_2" {
		t.Errorf("second claim = %q, want Line_2", got)
	}
	if got := set.Claim("Line"); got != "Line_3" {
		t.Errorf("third claim = %q, want Line_3", got)
	}
	if got := set.Claim("Color"); got != "Color" {
		t.Errorf("unrelated claim = %q, want Color", got)
	}
}

func TestUniqueSetDistinctOverMessyInput(t *testing.T) {
	inputs := []string{"Line", "Line", "", "", "bg/sky", "bg_sky", "???", "Line"}

	set := NewUniqueSet()
	seen := make(map[string]struct{}, len(inputs))
	for _, raw := range inputs {
		name := set.Claim(Sanitize(raw))
		if name == "" {
			t.Fatalf("Claim produced empty name for %q", raw)
		}
		if strings.ContainsAny(name, `/\:*?"<>|`) {
			t.Fatalf("Claim produced unsafe name %q for %q", name, raw)
		}
		if _, dup := seen[name]; dup {
			t.Fatalf("Claim produced duplicate name %q", name)
		}
		seen[name] = struct{}{}
	}
}

func TestSchemeFilename(t *testing.T) {
	tests := []struct {
		name   string
		scheme Scheme
		layer  string
		seq    int
		want   string
	}{
		{
			"name plus sequence",
			DefaultScheme("png"),
			"Line", 1,
			"Line_0001.png",
		},
		{
			"sequence only",
			Scheme{Variant: VariantSeqOnly, Separator: "_", Extension: "png"},
			"Line", 12,
			"0012.png",
		},
		{
			"prefix and suffix",
			Scheme{Variant: VariantNameSeq, Prefix: "cut01", Suffix: "v2", Separator: "-", Extension: "tga"},
			"Color", 3,
			"cut01-Color-v2-0003.tga",
		},
		{
			"dotted extension",
			Scheme{Variant: VariantSeqOnly, Extension: ".png"},
			"x", 1,
			"0001.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scheme.Filename(tt.layer, tt.seq); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSchemeValidate(t *testing.T) {
	if err := DefaultScheme("png").Validate(); err != nil {
		t.Errorf("default scheme invalid: %v", err)
	}
	if err := (Scheme{Variant: "frames", Extension: "png"}).Validate(); err == nil {
		t.Error("unknown variant accepted")
	}
	if err := (Scheme{Variant: VariantSeqOnly}).Validate(); err == nil {
		t.Error("missing extension accepted")
	}
}
