package services

import (
	"reflect"
	"testing"
)

func TestAvailableSlots_FullDay(t *testing.T) {
	slots, err := AvailableSlots("09:00", "18:00", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestAvailableSlots_ExcludesBooked(t *testing.T) {
	booked := map[string]bool{"09:00": true, "10:00": true}
	slots, err := AvailableSlots("09:00", "18:00", booked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 7 {
		t.Fatalf("expected 7 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if booked[s] {
			t.Fatalf("booked slot %s should not be offered", s)
		}
	}
	if slots[0] != "11:00" {
		t.Fatalf("expected first slot 11:00, got %s", slots[0])
	}
}

func TestAvailableSlots_Defaults(t *testing.T) {
	slots, err := AvailableSlots("", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 9 || slots[0] != "09:00" || slots[8] != "17:00" {
		t.Fatalf("expected default 09:00-18:00 grid, got %v", slots)
	}
}

func TestAvailableSlots_MinutesTruncated(t *testing.T) {
	slots, err := AvailableSlots("09:30", "11:45", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"09:00", "10:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestAvailableSlots_ClosedBeforeOpen(t *testing.T) {
	slots, err := AvailableSlots("18:00", "09:00", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}
}

func TestAvailableSlots_StrictlyIncreasing(t *testing.T) {
	slots, err := AvailableSlots("06:00", "22:00", map[string]bool{"12:00": true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i] <= slots[i-1] {
			t.Fatalf("slots not strictly increasing: %v", slots)
		}
	}
	for _, s := range slots {
		if s == "22:00" {
			t.Fatal("closing hour must not be offered")
		}
	}
}

func TestAvailableSlots_Malformed(t *testing.T) {
	for _, tc := range []struct{ open, close string }{
		{"nine", "18:00"},
		{"09:00", "late"},
		{"25:00", "18:00"},
		{"0900", "18:00"},
	} {
		if _, err := AvailableSlots(tc.open, tc.close, nil); err == nil {
			t.Fatalf("expected error for hours %q-%q", tc.open, tc.close)
		}
	}
}
