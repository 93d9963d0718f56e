package tool

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/invopop/jsonschema"
	"github.com/mitchellh/mapstructure"
)

var reflector = &jsonschema.Reflector{
	Anonymous:                  true,
	DoNotReference:             true,
	RequiredFromJSONSchemaTags: true,
	AllowAdditionalProperties:  false,
}

// reflectSchema builds the input schema for an argument struct.
func reflectSchema(args any) *jsonschema.Schema {
	s := reflector.Reflect(args)
	s.Version = ""
	return s
}

// validateArgs checks args against schema and returns every problem found.
// Unknown argument names are rejected.
func validateArgs(tool string, schema *jsonschema.Schema, args map[string]any) error {
	var problems []string

	unknown := make([]string, 0)
	for name := range args {
		if _, ok := property(schema, name); !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		problems = append(problems, fmt.Sprintf("%s: unknown argument", name))
	}

	for _, name := range schema.Required {
		if v, ok := args[name]; !ok || v == nil {
			problems = append(problems, fmt.Sprintf("%s: is required", name))
		}
	}

	if schema.Properties != nil {
		for p := schema.Properties.Oldest(); p != nil; p = p.Next() {
			v, ok := args[p.Key]
			if !ok || v == nil {
				continue
			}
			if msg := checkValue(p.Value, v); msg != "" {
				problems = append(problems, fmt.Sprintf("%s: %s", p.Key, msg))
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Tool: tool, Problems: problems}
	}
	return nil
}

func property(schema *jsonschema.Schema, name string) (*jsonschema.Schema, bool) {
	if schema.Properties == nil {
		return nil, false
	}
	return schema.Properties.Get(name)
}

// checkValue returns a description of why v violates s, or "".
func checkValue(s *jsonschema.Schema, v any) string {
	switch s.Type {
	case "string":
		str, ok := v.(string)
		if !ok {
			return "must be a string"
		}
		n := uint64(utf8.RuneCountInString(str))
		if s.MinLength != nil && n < *s.MinLength {
			if *s.MinLength == 1 {
				return "must not be empty"
			}
			return fmt.Sprintf("must be at least %d characters", *s.MinLength)
		}
		if s.MaxLength != nil && n > *s.MaxLength {
			return fmt.Sprintf("must be at most %d characters (got %d)", *s.MaxLength, n)
		}
		if len(s.Enum) > 0 && !inEnum(s.Enum, str) {
			return fmt.Sprintf("must be one of %s", enumList(s.Enum))
		}
	case "integer", "number":
		f, ok := toFloat(v)
		if !ok {
			return "must be a number"
		}
		if s.Type == "integer" && f != math.Trunc(f) {
			return "must be an integer"
		}
		if lo, err := s.Minimum.Float64(); s.Minimum != "" && err == nil && f < lo {
			return fmt.Sprintf("must be >= %s", s.Minimum)
		}
		if hi, err := s.Maximum.Float64(); s.Maximum != "" && err == nil && f > hi {
			return fmt.Sprintf("must be <= %s", s.Maximum)
		}
	case "boolean":
		if _, ok := v.(bool); !ok {
			return "must be a boolean"
		}
	}
	return ""
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func inEnum(enum []any, s string) bool {
	for _, e := range enum {
		if e == s {
			return true
		}
	}
	return false
}

func enumList(enum []any) string {
	parts := make([]string, len(enum))
	for i, e := range enum {
		parts[i] = fmt.Sprint(e)
	}
	return strings.Join(parts, ", ")
}

// withDefaults returns a copy of args with schema defaults filled in for
// absent arguments.
func withDefaults(schema *jsonschema.Schema, args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		out[k] = v
	}
	if schema.Properties == nil {
		return out
	}
	for p := schema.Properties.Oldest(); p != nil; p = p.Next() {
		if v, ok := out[p.Key]; (ok && v != nil) || p.Value.Default == nil {
			continue
		}
		out[p.Key] = defaultValue(p.Value)
	}
	return out
}

func defaultValue(s *jsonschema.Schema) any {
	num, ok := s.Default.(json.Number)
	if !ok {
		return s.Default
	}
	if s.Type == "integer" {
		if i, err := strconv.ParseInt(string(num), 10, 64); err == nil {
			return i
		}
	}
	f, _ := num.Float64()
	return f
}

// decodeArgs decodes args into the struct pointed to by out using json tags.
func decodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(args)
}
