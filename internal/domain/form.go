package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ValueKind discriminates the raw value held for a form field.
type ValueKind int

const (
	TextValue ValueKind = iota
	NumberValue
	BoolValue
)

// Value is a raw field value as entered: string, number or boolean.
// Format checking against the field's declared kind happens later, in the
// validation engine, so a Value can hold text that does not yet parse.
type Value struct {
	Kind ValueKind
	Text string
	Num  float64
	Bool bool
}

func Text(s string) Value    { return Value{Kind: TextValue, Text: s} }
func Number(f float64) Value { return Value{Kind: NumberValue, Num: f} }
func Bool(b bool) Value      { return Value{Kind: BoolValue, Bool: b} }

// Empty reports whether the value counts as absent for required-field
// checks. Booleans are never empty; an unchecked agreement is a present
// false, not a missing value.
func (v Value) Empty() bool {
	switch v.Kind {
	case TextValue:
		return strings.TrimSpace(v.Text) == ""
	default:
		return false
	}
}

// String renders the value for display and logging.
func (v Value) String() string {
	switch v.Kind {
	case NumberValue:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case BoolValue:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Text
	}
}

// Form is the registration form state: a mapping from wire field name to
// raw value. It is plain mutable state owned by whoever constructed it;
// all checking lives in the validation engine and the submission
// pipeline. The set of legal names is closed by the schema registry.
type Form struct {
	values map[string]Value
}

func NewForm() *Form {
	return &Form{values: make(map[string]Value)}
}

func (f *Form) Set(name string, v Value) {
	f.values[name] = v
}

func (f *Form) Get(name string) (Value, bool) {
	v, ok := f.values[name]
	return v, ok
}

func (f *Form) Delete(name string) {
	delete(f.values, name)
}

func (f *Form) Len() int { return len(f.values) }

// Names returns the populated field names in lexical order.
func (f *Form) Names() []string {
	names := make([]string, 0, len(f.values))
	for name := range f.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy, used to snapshot the form at submit
// time so later edits cannot affect an in-flight request.
func (f *Form) Clone() *Form {
	c := NewForm()
	for name, v := range f.values {
		c.values[name] = v
	}
	return c
}

// MarshalJSON encodes the form as a flat JSON object, numbers as numbers
// and booleans as booleans. This is the draft-file format, not the wire
// payload; the submission pipeline builds the payload separately.
func (f *Form) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(f.values))
	for name, v := range f.values {
		switch v.Kind {
		case NumberValue:
			out[name] = v.Num
		case BoolValue:
			out[name] = v.Bool
		default:
			out[name] = v.Text
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON mirrors MarshalJSON.
func (f *Form) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f.values = make(map[string]Value, len(raw))
	for name, v := range raw {
		switch t := v.(type) {
		case bool:
			f.values[name] = Bool(t)
		case float64:
			f.values[name] = Number(t)
		case string:
			f.values[name] = Text(t)
		case nil:
			// null means the field was cleared; treat as absent.
		default:
			return fmt.Errorf("field %q: unsupported value type %T", name, v)
		}
	}
	return nil
}
