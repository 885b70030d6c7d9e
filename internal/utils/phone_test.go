package utils

import "testing"

func TestFormatPhone(t *testing.T) {
	cases := map[string]string{
		"11999998888":     "(11) 99999-8888",
		"1199999888":      "(11) 99999-888",
		"119999988887777": "(11) 99999-8888",
		"11":              "(11",
		"1199999":         "(11) 99999",
		"(11) 99999-8888": "(11) 99999-8888",
	}
	for input, expect := range cases {
		if got := FormatPhone(input); got != expect {
			t.Errorf("FormatPhone(%q) = %q, want %q", input, got, expect)
		}
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{"11999998888", "1133334444", "(11) 99999-8888"}
	for _, p := range valid {
		if !ValidPhone(p) {
			t.Errorf("expected %q to be valid", p)
		}
	}
	invalid := []string{"", "123", "123456789", "123456789012"}
	for _, p := range invalid {
		if ValidPhone(p) {
			t.Errorf("expected %q to be invalid", p)
		}
	}
}

func TestStripPhone(t *testing.T) {
	if got := StripPhone("(11) 99999-8888"); got != "11999998888" {
		t.Errorf("StripPhone = %q, want 11999998888", got)
	}
}
