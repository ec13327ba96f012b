// Package validation holds the request validation rules shared by all
// handlers. Rules are installed on the go-playground validator that gin uses
// for `binding` tags.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// now is swapped in tests.
var now = time.Now

// Nullable is implemented by partial-update fields that know whether they
// were explicitly set to null.
type Nullable interface {
	IsNull() bool
}

// Emptier is implemented by partial-update fields that know whether they
// were supplied with a zero value.
type Emptier interface {
	IsEmpty() bool
}

// Valuer is implemented by wrapper types whose inner value should be
// validated instead of the wrapper itself.
type Valuer interface {
	ValidationValue() any
}

// Register installs the shared rules on v:
//   - field names in errors are taken from json tags
//   - "notfuture" accepts integers not greater than the current year
//   - wrapperTypes are validated through their ValidationValue
//   - payloads reject null on fields not tagged `patch:"nullable"` and empty
//     values on fields tagged `patch:"required"`
func Register(v *validator.Validate, wrapperTypes []any, payloads []any) error {
	v.RegisterTagNameFunc(jsonName)

	if err := v.RegisterValidation("notfuture", notFuture); err != nil {
		return err
	}
	if len(wrapperTypes) > 0 {
		v.RegisterCustomTypeFunc(unwrap, wrapperTypes...)
	}
	if len(payloads) > 0 {
		v.RegisterStructValidation(checkPatchFields, payloads...)
	}
	return nil
}

func jsonName(sf reflect.StructField) string {
	name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return sf.Name
	}
	return name
}

func notFuture(fl validator.FieldLevel) bool {
	field := fl.Field()
	year := int64(now().Year())
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() <= year
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return field.Uint() <= uint64(year)
	}
	return false
}

func unwrap(field reflect.Value) any {
	if v, ok := field.Interface().(Valuer); ok {
		return v.ValidationValue()
	}
	return nil
}

func checkPatchFields(sl validator.StructLevel) {
	current := sl.Current()
	typ := current.Type()
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		field := current.Field(i).Interface()
		rules := sf.Tag.Get("patch")

		if n, ok := field.(Nullable); ok && n.IsNull() && !strings.Contains(rules, "nullable") {
			sl.ReportError(field, jsonName(sf), sf.Name, "notnull", "")
			continue
		}
		if e, ok := field.(Emptier); ok && e.IsEmpty() && strings.Contains(rules, "required") {
			sl.ReportError(field, jsonName(sf), sf.Name, "notempty", "")
		}
	}
}

// Errors flattens validator errors into a map of field path to message.
// It returns nil when err holds no validation errors.
func Errors(err error) map[string]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[fieldPath(fe)] = message(fe)
	}
	return out
}

// fieldPath drops the payload type name from the namespace,
// e.g. "orderPayload.order_items[0].menu_id" becomes "order_items[0].menu_id".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notnull":
		return "cannot be null"
	case "notempty":
		return "cannot be empty"
	case "notfuture":
		return "cannot be in the future"
	}
	return "failed on the '" + fe.Tag() + "' rule"
}
