// Package validation holds the field rules applied to an Employee before it is written.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"employeedir/src/core/domain"
)

// phonePattern is the E.164 shape accepted for phone numbers.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// rule pairs a validator tag with the message reported when it fails.
// Rules with skipBlank only run once the field holds a value.
type rule struct {
	tag       string
	message   string
	skipBlank bool
}

type fieldRules struct {
	name  string
	value func(e *domain.Employee) any
	rules []rule
}

var employeeRules = []fieldRules{
	{
		name:  "firstName",
		value: func(e *domain.Employee) any { return e.FirstName },
		rules: []rule{
			{tag: "notblank", message: "First Name is required"},
			{tag: "max=50", message: "First Name must be at most 50 characters", skipBlank: true},
		},
	},
	{
		name:  "lastName",
		value: func(e *domain.Employee) any { return e.LastName },
		rules: []rule{
			{tag: "notblank", message: "Last Name is required"},
			{tag: "max=50", message: "Last Name must be at most 50 characters", skipBlank: true},
		},
	},
	{
		name:  "hireDate",
		value: func(e *domain.Employee) any { return e.HireDate },
		rules: []rule{
			{tag: "required", message: "Hire Date is required"},
			{tag: "before_today", message: "Hire Date cannot be in the future", skipBlank: true},
		},
	},
	{
		name:  "phone",
		value: func(e *domain.Employee) any { return e.Phone },
		rules: []rule{
			{tag: "notblank", message: "Phone number is required"},
			{tag: "e164_phone", message: "Phone number must be in E.164 format (e.g., +123456789)", skipBlank: true},
		},
	},
	{
		name:  "address",
		value: func(e *domain.Employee) any { return e.Address },
		rules: []rule{
			{tag: "notblank", message: "Address is required"},
			{tag: "max=255", message: "Address must be at most 255 characters", skipBlank: true},
		},
	},
	{
		name:  "departmentId",
		value: func(e *domain.Employee) any { return e.DepartmentID },
		rules: []rule{
			{tag: "gt=0", message: "Department must be selected"},
		},
	},
}

// EmployeeValidator checks a candidate Employee against the directory's field rules.
// It does no I/O and is safe for concurrent use.
type EmployeeValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

// Option configures an EmployeeValidator.
type Option func(*EmployeeValidator)

// WithClock overrides the clock used to decide what "today" is.
func WithClock(now func() time.Time) Option {
	return func(v *EmployeeValidator) {
		v.now = now
	}
}

// NewEmployeeValidator builds a validator with the custom tags registered.
func NewEmployeeValidator(opts ...Option) *EmployeeValidator {
	v := &EmployeeValidator{
		validate: validator.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}

	mustRegister(v.validate, "notblank", validators.NotBlank)
	mustRegister(v.validate, "e164_phone", isE164Phone)
	mustRegister(v.validate, "before_today", v.isBeforeToday)

	return v
}

// Validate runs every rule of every field and returns the violations found,
// or nil when the employee is valid.
func (v *EmployeeValidator) Validate(e *domain.Employee) domain.FieldErrors {
	errs := domain.FieldErrors{}
	for _, f := range employeeRules {
		value := f.value(e)
		for _, r := range f.rules {
			if r.skipBlank && isBlank(value) {
				continue
			}
			if err := v.validate.Var(value, r.tag); err != nil {
				errs.Add(f.name, r.message)
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// mustRegister panics when tag cannot be registered; the rule table would
// otherwise reference a tag validator.Var does not know.
func mustRegister(validate *validator.Validate, tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// isBeforeToday compares calendar dates, with today taken in UTC.
func (v *EmployeeValidator) isBeforeToday(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return domain.DateOnly(t).Before(domain.DateOnly(v.now().UTC()))
}

func isE164Phone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func isBlank(value any) bool {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v) == ""
	case time.Time:
		return v.IsZero()
	default:
		return false
	}
}
