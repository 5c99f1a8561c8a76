package validator

import (
	"regexp"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
)

var (
	ClockRX = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
	URLRX   = regexp.MustCompile(`^https?://\S+$`)
)

type Validator struct {
	Errors map[string]string
}

func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError keeps the first message recorded for a key.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Err returns nil when valid, otherwise a *model.ValidationError carrying the errors.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return &model.ValidationError{Fields: v.Errors}
}

func In(value string, list ...string) bool {
	for i := range list {
		if value == list[i] {
			return true
		}
	}
	return false
}

func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}
