package text

import (
	"testing"
)

func TestCharDirection(t *testing.T) {
	tests := []struct {
		name string
		char rune
		want Direction
	}{
		{"Arabic alif", 'ا', RTL},
		{"Arabic meem", 'م', RTL},
		{"Hebrew alef", 'א', RTL},
		{"Hebrew shin", 'ש', RTL},
		{"Syriac alaph", 'ܐ', RTL},
		{"Latin A", 'A', LTR},
		{"Latin é", 'é', LTR},
		{"Cyrillic я", 'я', LTR},
		{"Greek Omega", 'Ω', LTR},
		{"CJK 中", '中', LTR},
		{"Hiragana あ", 'あ', LTR},
		{"Space", ' ', Neutral},
		{"Digit 5", '5', Neutral},
		{"Arabic-Indic digit", '٣', Neutral},
		{"Period", '.', Neutral},
		{"Guillemet", '«', Neutral},
		{"Combining acute", '\u0301', Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CharDirection(tt.char); got != tt.want {
				t.Errorf("CharDirection(%q U+%04X) = %v, want %v", tt.char, tt.char, got, tt.want)
			}
		})
	}
}

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Direction
	}{
		{"empty", "", Neutral},
		{"digits and punctuation", "123, 456!", Neutral},
		{"english", "Hello world.", LTR},
		{"hebrew", "שלום עולם", RTL},
		{"arabic with digits", "مرحبا 2024", RTL},
		{"mostly hebrew", "שלום עולם, hi", RTL},
		{"mostly english", "Hello world, שלום", LTR},
		{"tie", "ab אב", LTR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDirection(tt.text); got != tt.want {
				t.Errorf("DetectDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCounter(t *testing.T) {
	var c Counter
	if got := c.Direction(); got != Neutral {
		t.Errorf("zero Counter = %v, want Neutral", got)
	}

	c.Add("פרק ראשון")
	c.Add("Chapter")
	c.Add("זה היה יום קר")
	if got := c.Direction(); got != RTL {
		t.Errorf("Counter.Direction() = %v, want RTL", got)
	}
}

func TestDirectionString(t *testing.T) {
	tests := map[Direction]string{
		LTR:          "ltr",
		RTL:          "rtl",
		Neutral:      "auto",
		Direction(9): "unknown",
	}
	for d, want := range tests {
		if got := d.String(); got != want {
			t.Errorf("Direction(%d).String() = %q, want %q", int(d), got, want)
		}
	}
}
