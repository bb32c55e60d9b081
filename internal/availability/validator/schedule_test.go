package validator

import (
	"io"
	"strings"
	"testing"

	"github.com/DamiHettich/damis-reserve-app/pkg/logger"
	"github.com/DamiHettich/damis-reserve-app/pkg/model"
)

func newValidator() *ScheduleValidator {
	return NewScheduleValidator(logger.New(logger.Config{
		Level:  logger.ERROR,
		Format: logger.TEXT,
		Output: io.Discard,
	}))
}

func TestValidateAcceptsWellFormedSchedule(t *testing.T) {
	v := newValidator()

	err := v.Validate([]model.WeeklyScheduleEntry{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"},
		{DayOfWeek: 6, StartTime: "23:00", EndTime: "23:59"},
	})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateEmptyScheduleIsValid(t *testing.T) {
	v := newValidator()

	if err := v.Validate(nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRejectsMalformedTimes(t *testing.T) {
	v := newValidator()

	cases := []model.WeeklyScheduleEntry{
		{DayOfWeek: 1, StartTime: "9:00", EndTime: "10:00"},
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "24:00"},
		{DayOfWeek: 1, StartTime: "09:60", EndTime: "10:00"},
		{DayOfWeek: 1, StartTime: "morning", EndTime: "10:00"},
	}

	for _, entry := range cases {
		if err := v.Validate([]model.WeeklyScheduleEntry{entry}); err == nil {
			t.Errorf("expected error for entry %+v", entry)
		}
	}
}

func TestValidateRejectsInvertedRange(t *testing.T) {
	v := newValidator()

	err := v.Validate([]model.WeeklyScheduleEntry{
		{DayOfWeek: 1, StartTime: "10:00", EndTime: "09:00"},
	})
	if err == nil {
		t.Fatal("expected error for endTime before startTime")
	}
	if !strings.Contains(err.Error(), "endTime must be after startTime") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestValidateRejectsOutOfRangeDay(t *testing.T) {
	v := newValidator()

	err := v.Validate([]model.WeeklyScheduleEntry{
		{DayOfWeek: 7, StartTime: "09:00", EndTime: "10:00"},
	})
	if err == nil {
		t.Fatal("expected error for dayOfWeek 7")
	}
}

func TestValidateReportsAllInvalidEntries(t *testing.T) {
	v := newValidator()

	err := v.Validate([]model.WeeklyScheduleEntry{
		{DayOfWeek: 1, StartTime: "bad", EndTime: "10:00"},
		{DayOfWeek: 2, StartTime: "09:00", EndTime: "10:00"},
		{DayOfWeek: 3, StartTime: "10:00", EndTime: "09:00"},
	})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	var errs ValidationErrors
	if !asValidationErrors(err, &errs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(errs) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0].Field, "entries[0]") {
		t.Errorf("expected first error on entry 0, got %s", errs[0].Field)
	}
	if !strings.Contains(errs[1].Field, "entries[2]") {
		t.Errorf("expected second error on entry 2, got %s", errs[1].Field)
	}
}

func asValidationErrors(err error, target *ValidationErrors) bool {
	v, ok := err.(ValidationErrors)
	if ok {
		*target = v
	}
	return ok
}
