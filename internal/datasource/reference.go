package datasource

import (
	"fmt"
	"strings"
)

// Specifier selects which part of a structured table is returned
type Specifier string

const (
	SpecifierAll     Specifier = "#All"     // header row and data rows
	SpecifierData    Specifier = "#Data"    // data rows only
	SpecifierHeaders Specifier = "#Headers" // header row only
)

// Reference addresses either a structured table ("iris[#All]")
// or a plain sheet range ("Sheet1!A1:E151")
type Reference struct {
	Table     string
	Specifier Specifier
	Sheet     string
	Range     string
}

// ParseReference parses a table reference as typed into a spreadsheet formula
func ParseReference(s string) (Reference, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Reference{}, fmt.Errorf("empty table reference")
	}

	if sheet, rng, ok := strings.Cut(s, "!"); ok {
		sheet = strings.Trim(sheet, "'")
		rng = strings.ReplaceAll(rng, "$", "")
		if sheet == "" || rng == "" {
			return Reference{}, fmt.Errorf("invalid range reference %q", s)
		}
		return Reference{Sheet: sheet, Range: strings.ToUpper(rng)}, nil
	}

	name, spec, hasSpec := strings.Cut(s, "[")
	name = strings.TrimSpace(name)
	if name == "" {
		return Reference{}, fmt.Errorf("invalid table reference %q: missing table name", s)
	}
	if !hasSpec {
		return Reference{Table: name, Specifier: SpecifierData}, nil
	}

	if !strings.HasSuffix(spec, "]") {
		return Reference{}, fmt.Errorf("invalid table reference %q: unterminated specifier", s)
	}
	spec = strings.TrimSpace(strings.TrimSuffix(spec, "]"))

	for _, known := range []Specifier{SpecifierAll, SpecifierData, SpecifierHeaders} {
		if strings.EqualFold(spec, string(known)) {
			return Reference{Table: name, Specifier: known}, nil
		}
	}
	return Reference{}, fmt.Errorf("invalid table reference %q: unsupported specifier %q", s, spec)
}

// MustParseReference is like ParseReference but panics on error
func MustParseReference(s string) Reference {
	ref, err := ParseReference(s)
	if err != nil {
		panic(err)
	}
	return ref
}

// IsRange reports whether the reference is a sheet range rather than a named table
func (r Reference) IsRange() bool {
	return r.Sheet != ""
}

func (r Reference) String() string {
	if r.IsRange() {
		if strings.ContainsAny(r.Sheet, " !") {
			return fmt.Sprintf("'%s'!%s", r.Sheet, r.Range)
		}
		return r.Sheet + "!" + r.Range
	}
	return fmt.Sprintf("%s[%s]", r.Table, r.Specifier)
}
