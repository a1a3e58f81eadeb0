package services

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	defaultOpeningTime = "09:00"
	defaultClosingTime = "18:00"
)

// AvailableSlots returns the hour-aligned "HH:00" labels between the opening
// and closing hour that are not in booked. Slots are hourly regardless of
// service duration: a 90-minute service booked at 09:00 does not block 10:00.
// Minutes in the operating hours are truncated, so "09:30" opens at the 09:00
// grid line. The closing hour itself is never offered.
func AvailableSlots(openingTime, closingTime string, booked map[string]bool) ([]string, error) {
	if openingTime == "" {
		openingTime = defaultOpeningTime
	}
	if closingTime == "" {
		closingTime = defaultClosingTime
	}

	openingHour, err := parseHour(openingTime)
	if err != nil {
		return nil, err
	}
	closingHour, err := parseHour(closingTime)
	if err != nil {
		return nil, err
	}

	slots := []string{}
	for hour := openingHour; hour < closingHour; hour++ {
		label := fmt.Sprintf("%02d:00", hour)
		if !booked[label] {
			slots = append(slots, label)
		}
	}
	return slots, nil
}

// parseHour extracts the hour component of an "HH:MM" string.
func parseHour(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil || len(parts) != 2 || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid time string: %q", s)
	}
	return hour, nil
}
