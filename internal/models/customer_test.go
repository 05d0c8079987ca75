package models

import "testing"

func TestValidAgeBoundaries(t *testing.T) {
	cases := []struct {
		age  int
		want bool
	}{
		{17, false},
		{18, true},
		{100, true},
		{101, false},
	}

	for _, tc := range cases {
		if got := ValidAge(tc.age); got != tc.want {
			t.Errorf("ValidAge(%d) = %v, want %v", tc.age, got, tc.want)
		}
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{"+92 300 1234567", "03001234567", "0300-123-4567"}
	for _, phone := range valid {
		if !ValidPhone(phone) {
			t.Errorf("ValidPhone(%q) = false, want true", phone)
		}
	}

	invalid := []string{"", "12345", "phone-number", "0300@1234567"}
	for _, phone := range invalid {
		if ValidPhone(phone) {
			t.Errorf("ValidPhone(%q) = true, want false", phone)
		}
	}
}

func TestValidGender(t *testing.T) {
	if !ValidGender("male") || !ValidGender("female") {
		t.Fatal("male and female must be accepted")
	}
	if ValidGender("other") || ValidGender("") {
		t.Fatal("unexpected gender values must be rejected")
	}
}

func TestValidNameAndAddress(t *testing.T) {
	if ValidName("A") {
		t.Fatal("single-character name must be rejected")
	}
	if !ValidName("Ali") {
		t.Fatal("expected a normal name to be accepted")
	}
	if ValidAddress("short") {
		t.Fatal("address below the minimum length must be rejected")
	}
	if !ValidAddress("House 12, Street 4, Gulberg") {
		t.Fatal("expected a full address to be accepted")
	}
}

func TestOrderPending(t *testing.T) {
	order := Order{Status: OrderStatusPending}
	if !order.Pending() {
		t.Fatal("pending order should report Pending")
	}

	for _, status := range []string{OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled} {
		order.Status = status
		if order.Pending() {
			t.Fatalf("order with status %q should not report Pending", status)
		}
	}
}
