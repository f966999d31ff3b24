package toolgate

import (
	"fmt"
	"math"
	"strings"
)

// ErrorKind classifies why a candidate invocation was refused or failed.
type ErrorKind string

const (
	ErrUnknownAction       ErrorKind = "UnknownAction"
	ErrMissingArgument     ErrorKind = "MissingArgument"
	ErrUnexpectedArgument  ErrorKind = "UnexpectedArgument"
	ErrTypeMismatch        ErrorKind = "TypeMismatch"
	ErrInjectionSuspected  ErrorKind = "InjectionSuspected"
	ErrConstraintViolation ErrorKind = "ConstraintViolation"
	ErrExecutionFailed     ErrorKind = "ExecutionFailed"
)

// ValidationError is the first rule a candidate invocation broke.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Args holds type-checked argument values keyed by parameter name.
type Args map[string]any

// String returns a string argument; the zero value if absent.
func (a Args) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// Int returns an int argument; the zero value if absent.
func (a Args) Int(name string) int {
	v, _ := a[name].(int)
	return v
}

// ValidatedInvocation exists only after validation succeeded. It is the sole
// currency the gate accepts for execution, so nothing can reach a capability
// function without having passed the schema first.
type ValidatedInvocation struct {
	name ToolName
	args Args
}

func (v *ValidatedInvocation) Name() ToolName { return v.name }
func (v *ValidatedInvocation) Args() Args     { return v.args }

// validate applies the fixed rule order and stops at the first failure:
// whitelist, required, unexpected, type, `://` injection, constraints.
// It never coerces or truncates a bad value.
func validate(rawName string, rawArgs map[string]any) (*ValidatedInvocation, *ValidationError) {
	if !IsKnown(rawName) {
		return nil, &ValidationError{
			Kind:    ErrUnknownAction,
			Message: fmt.Sprintf("tool %q is not in the whitelist", rawName),
		}
	}
	name := ToolName(rawName)

	schema, ok := SchemaFor(name)
	if !ok {
		// unreachable once the gate's startup check has run
		return nil, &ValidationError{
			Kind:    ErrUnknownAction,
			Message: fmt.Sprintf("no schema bound to tool %q", rawName),
		}
	}

	fields := make(map[string]*Field, len(schema.Fields))
	for i := range schema.Fields {
		fields[schema.Fields[i].Name] = &schema.Fields[i]
	}

	for _, f := range schema.Fields {
		if !f.Required {
			continue
		}
		if _, present := rawArgs[f.Name]; !present {
			return nil, &ValidationError{
				Kind:    ErrMissingArgument,
				Message: fmt.Sprintf("%s: required argument %q is missing", rawName, f.Name),
			}
		}
	}

	for key := range rawArgs {
		if _, known := fields[key]; !known {
			return nil, &ValidationError{
				Kind:    ErrUnexpectedArgument,
				Message: fmt.Sprintf("%s does not accept argument %q", rawName, key),
			}
		}
	}

	checked := make(Args, len(schema.Fields))
	for _, f := range schema.Fields {
		raw, present := rawArgs[f.Name]
		if !present {
			continue
		}
		switch f.Kind {
		case KindString:
			s, ok := raw.(string)
			if !ok {
				return nil, &ValidationError{
					Kind:    ErrTypeMismatch,
					Message: fmt.Sprintf("argument %q must be a string", f.Name),
				}
			}
			checked[f.Name] = s
		case KindInt:
			n, ok := asInt(raw)
			if !ok {
				return nil, &ValidationError{
					Kind:    ErrTypeMismatch,
					Message: fmt.Sprintf("argument %q must be an integer", f.Name),
				}
			}
			checked[f.Name] = n
		}
	}

	// the `://` reject-rule runs before any allow-pattern: an embedded URL in
	// a free-text field is treated as smuggling no matter what else matches
	for _, f := range schema.Fields {
		if f.Kind != KindString {
			continue
		}
		s, present := checked[f.Name].(string)
		if !present {
			continue
		}
		if strings.Contains(s, "://") {
			return nil, &ValidationError{
				Kind:    ErrInjectionSuspected,
				Message: fmt.Sprintf("argument %q must not contain a URL", f.Name),
			}
		}
		if f.RejectHTTPPrefix && strings.HasPrefix(s, "http") {
			return nil, &ValidationError{
				Kind:    ErrInjectionSuspected,
				Message: fmt.Sprintf("argument %q must not start with a URL", f.Name),
			}
		}
	}

	for _, f := range schema.Fields {
		raw, present := checked[f.Name]
		if !present {
			continue
		}
		switch f.Kind {
		case KindString:
			s := raw.(string)
			if f.MinLen > 0 && len(s) < f.MinLen {
				return nil, &ValidationError{
					Kind:    ErrConstraintViolation,
					Message: fmt.Sprintf("argument %q is shorter than %d characters", f.Name, f.MinLen),
				}
			}
			if f.MaxLen > 0 && len(s) > f.MaxLen {
				return nil, &ValidationError{
					Kind:    ErrConstraintViolation,
					Message: fmt.Sprintf("argument %q is longer than %d characters", f.Name, f.MaxLen),
				}
			}
			if f.Pattern != nil && !f.Pattern.MatchString(s) {
				return nil, &ValidationError{
					Kind:    ErrConstraintViolation,
					Message: fmt.Sprintf("argument %q contains invalid characters (%s)", f.Name, f.PatternDesc),
				}
			}
		case KindInt:
			n := raw.(int)
			if n < f.Min || n > f.Max {
				return nil, &ValidationError{
					Kind:    ErrConstraintViolation,
					Message: fmt.Sprintf("argument %q must be between %d and %d", f.Name, f.Min, f.Max),
				}
			}
		}
	}

	// defaults for absent optional values, after everything present is valid
	for _, f := range schema.Fields {
		if f.Required {
			continue
		}
		if _, present := checked[f.Name]; !present && f.Kind == KindInt && f.Default != 0 {
			checked[f.Name] = f.Default
		}
	}

	return &ValidatedInvocation{name: name, args: checked}, nil
}

// asInt accepts the integer encodings that survive a JSON round trip.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
