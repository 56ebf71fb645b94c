// Package validation turns struct tags into the field -> messages map the API
// returns with 422 responses.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	MsgBlank        = "can't be blank"
	MsgInvalid      = "is invalid"
	MsgNotInList    = "is not included in the list"
	MsgTaken        = "has already been taken"
	MsgMustExist    = "must exist"
	MsgNonNegative  = "must be greater than or equal to 0"
	msgTooShortTmpl = "is too short (minimum is %s characters)"
)

// Errors maps a JSON field name to its messages.
type Errors map[string][]string

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+strings.Join(e[k], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) Add(field, msg string) {
	for _, m := range e[field] {
		if m == msg {
			return
		}
	}
	e[field] = append(e[field], msg)
}

// Err returns nil when nothing was recorded.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// As extracts validation errors from err.
func As(err error) (Errors, bool) {
	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}

type enumValue interface {
	Valid() bool
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			f := fl.Field()
			if f.Kind() != reflect.String {
				return true
			}
			return strings.TrimSpace(f.String()) != ""
		})
		_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
			e, ok := fl.Field().Interface().(enumValue)
			if !ok {
				return false
			}
			return e.Valid()
		})
		validate = v
	})
	return validate
}

// Struct validates s and returns Errors (or nil).
func Struct(s any) error {
	errs := Errors{}
	Collect(s, errs)
	return errs.Err()
}

// Collect validates s and adds any failures to errs.
func Collect(s any, errs Errors) {
	err := instance().Struct(s)
	if err == nil {
		return
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.Add("base", MsgInvalid)
		return
	}
	for _, fe := range fieldErrs {
		errs.Add(fe.Field(), message(fe))
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return MsgBlank
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf(msgTooShortTmpl, fe.Param())
		}
		if fe.Param() == "0" {
			return MsgNonNegative
		}
		return "must be greater than or equal to " + fe.Param()
	case "enum", "oneof":
		return MsgNotInList
	default:
		return MsgInvalid
	}
}
