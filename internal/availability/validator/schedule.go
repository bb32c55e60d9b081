package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/DamiHettich/damis-reserve-app/pkg/logger"
	"github.com/DamiHettich/damis-reserve-app/pkg/model"
)

var hhmmRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// ScheduleValidator checks the serialized weekly schedule before it is
// handed to the persistence publisher.
type ScheduleValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewScheduleValidator(log *logger.Logger) *ScheduleValidator {
	v := validator.New()

	if err := v.RegisterValidation("hhmm", validateHHMM); err != nil {
		log.Fatal("Failed to register 'hhmm' validator", "error", err)
	}

	return &ScheduleValidator{
		validate: v,
		logger:   log,
	}
}

func validateHHMM(fl validator.FieldLevel) bool {
	return hhmmRegex.MatchString(fl.Field().String())
}

func (v *ScheduleValidator) Validate(entries []model.WeeklyScheduleEntry) error {
	var all ValidationErrors

	for i, entry := range entries {
		if err := v.validate.Struct(entry); err != nil {
			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) {
				all = append(all, v.translate(i, validationErrs)...)
				continue
			}
			return err
		}

		if entry.StartTime >= entry.EndTime {
			all = append(all, ValidationError{
				Field:   fmt.Sprintf("entries[%d].endTime", i),
				Message: "endTime must be after startTime",
			})
		}
	}

	if len(all) > 0 {
		return all
	}
	return nil
}

func (v *ScheduleValidator) translate(index int, errs validator.ValidationErrors) ValidationErrors {
	var out ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "hhmm":
			message = fmt.Sprintf("%s must be in HH:mm format", err.Field())
		}

		out = append(out, ValidationError{
			Field:   fmt.Sprintf("entries[%d].%s", index, err.Field()),
			Message: message,
		})
	}

	return out
}
