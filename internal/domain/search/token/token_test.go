package token

import (
	"slices"
	"testing"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Vibratör", "vibrator"},
		{"GECİKTİRİCİ", "geciktirici"},
		{"Işık", "isik"},
		{"şüt", "sut"},
		{"masaj yağı", "masaj yagi"},
		{"plain ascii", "plain ascii"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single word", "vibratör", []string{"vibrator"}},
		{"multi word", "Modern Vibratör Seti", []string{"modern", "vibrator", "seti"}},
		{"punctuation splits", "masaj-yağı, %50", []string{"masaj", "yagi", "50"}},
		{"short tokens dropped", "a b cd", []string{"cd"}},
		{"digits kept", "model 3000", []string{"model", "3000"}},
		{"whitespace only", "   \t ", nil},
		{"empty", "", nil},
		{"only short tokens", "a b c", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenize_EmptyMeansNil(t *testing.T) {
	if got := Tokenize("!!! ?? ."); got != nil {
		t.Fatalf("Tokenize(punctuation) = %v, want nil", got)
	}
}
