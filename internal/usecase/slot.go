package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"turf-booking/internal/data/entity"
	"turf-booking/pkg/utils"

	"github.com/go-playground/validator/v10"
)

var slotPattern = regexp.MustCompile(`(?i)^([1-9]|1[0-2])(am|pm)-([1-9]|1[0-2])(am|pm)$`)

func init() {
	if err := utils.RegisterValidation("slot", validateSlotTag); err != nil {
		panic(fmt.Sprintf("register slot validation: %v", err))
	}
}

func validateSlotTag(fl validator.FieldLevel) bool {
	_, _, err := ParseSlot(fl.Field().String())
	return err == nil
}

// ListSlots returns the turf's slot catalog in authored order.
func ListSlots(turf *entity.Turf) []string {
	slots := make([]string, len(turf.Slots))
	copy(slots, turf.Slots)
	return slots
}

// ParseSlot converts a label such as "9am-10am" into 24-hour start and end
// hours and rejects labels whose end is not after their start.
func ParseSlot(label string) (start, end int, err error) {
	match := slotPattern.FindStringSubmatch(strings.TrimSpace(label))
	if match == nil {
		return 0, 0, fmt.Errorf("slot %q must look like 8am-9am", label)
	}

	start = to24(match[1], match[2])
	end = to24(match[3], match[4])
	if end <= start {
		return 0, 0, fmt.Errorf("slot %q must end after it starts", label)
	}
	return start, end, nil
}

// to24 maps 12am to 0, 12pm to 12 and adds 12 to the other pm hours.
func to24(hour, meridiem string) int {
	h, _ := strconv.Atoi(hour)
	pm := strings.EqualFold(meridiem, "pm")
	switch {
	case h == 12 && !pm:
		return 0
	case h == 12 && pm:
		return 12
	case pm:
		return h + 12
	default:
		return h
	}
}

// ValidateSlotLabel checks one candidate label against an existing catalog.
func ValidateSlotLabel(label string, catalog []string) error {
	if _, _, err := ParseSlot(label); err != nil {
		return &ValidationError{Field: "slots", Message: err.Error()}
	}
	normalized := normalizeSlot(label)
	for _, existing := range catalog {
		if normalizeSlot(existing) == normalized {
			return &ValidationError{Field: "slots", Message: fmt.Sprintf("slot %q already exists", label)}
		}
	}
	return nil
}

// ValidateCatalog validates a whole slot list and returns it normalized
// (trimmed, lower case) in the given order.
func ValidateCatalog(labels []string) ([]string, error) {
	if len(labels) == 0 {
		return nil, &ValidationError{Field: "slots", Message: "at least one time slot must be provided"}
	}

	catalog := make([]string, 0, len(labels))
	for _, label := range labels {
		if err := ValidateSlotLabel(label, catalog); err != nil {
			return nil, err
		}
		catalog = append(catalog, normalizeSlot(label))
	}
	return catalog, nil
}

func normalizeSlot(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
