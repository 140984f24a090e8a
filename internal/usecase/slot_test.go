package usecase

import (
	"testing"

	"turf-booking/internal/data/entity"
	"turf-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		label      string
		start, end int
		wantErr    bool
	}{
		{label: "8am-9am", start: 8, end: 9},
		{label: "11am-12pm", start: 11, end: 12},
		{label: "12am-1am", start: 0, end: 1},
		{label: "12pm-1pm", start: 12, end: 13},
		{label: "6PM-10PM", start: 18, end: 22},
		{label: " 9am-10am ", start: 9, end: 10},
		{label: "9am-9am", wantErr: true},
		{label: "10pm-9pm", wantErr: true},
		{label: "11pm-12am", wantErr: true},
		{label: "0am-1am", wantErr: true},
		{label: "13pm-2pm", wantErr: true},
		{label: "8-9", wantErr: true},
		{label: "8am - 9am", wantErr: true},
		{label: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			start, end, err := ParseSlot(tt.label)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestValidateSlotLabel(t *testing.T) {
	catalog := []string{"8am-9am", "9am-10am"}

	assert.NoError(t, ValidateSlotLabel("10am-11am", catalog))

	var invalid *ValidationError
	require.ErrorAs(t, ValidateSlotLabel("9AM-10AM", catalog), &invalid)
	assert.Equal(t, "slots", invalid.Field)
	assert.Contains(t, invalid.Message, "already exists")

	require.ErrorAs(t, ValidateSlotLabel("11am-10am", catalog), &invalid)
	assert.Contains(t, invalid.Message, "end after")
}

func TestValidateCatalog(t *testing.T) {
	catalog, err := ValidateCatalog([]string{"6PM-7PM", " 7pm-8pm"})
	require.NoError(t, err)
	assert.Equal(t, []string{"6pm-7pm", "7pm-8pm"}, catalog)

	_, err = ValidateCatalog(nil)
	var invalid *ValidationError
	assert.ErrorAs(t, err, &invalid)

	_, err = ValidateCatalog([]string{"6pm-7pm", "6PM-7PM"})
	assert.ErrorAs(t, err, &invalid)
}

func TestListSlotsReturnsCopy(t *testing.T) {
	turf := &entity.Turf{Slots: []string{"8am-9am", "9am-10am"}}

	slots := ListSlots(turf)
	slots[0] = "changed"

	assert.Equal(t, "8am-9am", turf.Slots[0])
}

func TestSlotValidatorTag(t *testing.T) {
	type body struct {
		Slots []string `json:"slots" validate:"required,dive,slot"`
	}

	assert.Empty(t, utils.ValidateStruct(body{Slots: []string{"8am-9am"}}))

	errs := utils.ValidateStruct(body{Slots: []string{"8am-9am", "9am-8am"}})
	assert.Contains(t, errs, "slots[1]")
}
