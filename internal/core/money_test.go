package core

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		err   error
	}{
		{"12.34", 1234, nil},
		{"12,34", 1234, nil},
		{"1000", 100000, nil},
		{"0", 0, nil},
		{"0.00", 0, nil},
		{".5", 50, nil},
		{"12.345", 1234, nil}, // rounds down
		{"12.346", 1235, nil}, // rounds up
		{" 42 ", 4200, nil},
		{"", 0, ErrMissingAmount},
		{"   ", 0, ErrMissingAmount},
		{"-5", 0, ErrInvalidAmount},
		{"+5", 0, ErrInvalidAmount},
		{"abc", 0, ErrInvalidAmount},
		{"1.2.3", 0, ErrInvalidAmount},
		{".", 0, ErrInvalidAmount},
		{"12a", 0, ErrInvalidAmount},
		{"99999999999999999999", 0, ErrInvalidAmount},
	}
	for i, tc := range cases {
		m, err := ParseAmount(tc.in)
		if !errors.Is(err, tc.err) {
			t.Fatalf("case %d (%q) expected err %v, got %v", i, tc.in, tc.err, err)
		}
		if err == nil && m.Cents != tc.cents {
			t.Fatalf("case %d (%q) expected %d cents, got %d", i, tc.in, tc.cents, m.Cents)
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "₹0.00"},
		{50, "₹0.50"},
		{100000, "₹1,000.00"},
		{12345678, "₹1,23,456.78"},
		{123456789, "₹12,34,567.89"},
	}
	for i, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Fatalf("case %d expected %s, got %s", i, tc.want, got)
		}
	}
}

func TestMoneyAdd(t *testing.T) {
	got := Money{Cents: 150}.Add(Money{Cents: 75})
	if got.Cents != 225 {
		t.Fatalf("expected 225, got %d", got.Cents)
	}
}
