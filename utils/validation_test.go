package utils

import "testing"

func TestValidateBookingContact(t *testing.T) {
	if _, ok := ValidateBookingContact("Ana Silva", "ana@example.pt", "+351912345678"); !ok {
		t.Fatal("expected valid contact to pass")
	}

	cases := []struct {
		name, email, phone string
	}{
		{"", "ana@example.pt", "+351912345678"},
		{"   ", "ana@example.pt", "+351912345678"},
		{"Ana Silva", "", "+351912345678"},
		{"Ana Silva", "\t", "+351912345678"},
		{"Ana Silva", "ana@example.pt", ""},
		{"Ana Silva", "ana@example.pt", "  "},
	}
	for _, tc := range cases {
		if msg, ok := ValidateBookingContact(tc.name, tc.email, tc.phone); ok {
			t.Errorf("expected rejection for %q/%q/%q", tc.name, tc.email, tc.phone)
		} else if msg == "" {
			t.Errorf("expected a message for %q/%q/%q", tc.name, tc.email, tc.phone)
		}
	}

	// No email format check at this stage
	if _, ok := ValidateBookingContact("Ana Silva", "not-an-email", "+351912345678"); !ok {
		t.Fatal("email format should not be validated here")
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"+351912345678", "912345678", "+351 912 345 678", "(351) 912-345-678"}
	for _, p := range valid {
		if !ValidatePhone(p) {
			t.Errorf("expected %q to be valid", p)
		}
	}

	invalid := []string{"", "abc", "+0123", "7"}
	for _, p := range invalid {
		if ValidatePhone(p) {
			t.Errorf("expected %q to be invalid", p)
		}
	}
}
