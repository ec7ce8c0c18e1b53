// Package contract decides whether free-form model text carries a JSON
// object of a required shape.
//
// Lookup order for a raw response:
//  1. the whole trimmed text, decoded as JSON;
//  2. the substring between the first '{' and the last '}', accepted only
//     when its brace counts balance;
//  3. when the whole text is a JSON string, the object embedded in it.
//
// Every step that decodes is validated; the first that passes the schema
// wins.
//
// Step 2 is a heuristic, not a parser: a '{' or '}' inside a string value
// can unbalance the count and reject a well-formed object. Step 1 exists so
// that such objects still pass when the model returned nothing else.
package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Stage identifies where a response failed the contract.
type Stage string

const (
	StageDecode Stage = "decode"
	StageSchema Stage = "schema"
)

// ErrViolation reports that a response does not satisfy a contract.
type ErrViolation struct {
	Schema string
	Stage  Stage
	Raw    string
	Err    error
}

func (e *ErrViolation) Error() string {
	return fmt.Sprintf("contract %q: %s failed: %v", e.Schema, e.Stage, e.Err)
}

func (e *ErrViolation) Unwrap() error { return e.Err }

// Extract locates the first '{' and the last '}' in raw and returns the
// enclosed text when the two occur in order and the substring holds as
// many '{' as '}'.
func Extract(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	candidate := strings.TrimSpace(raw[start : end+1])
	if strings.Count(candidate, "{") != strings.Count(candidate, "}") {
		return "", false
	}
	return candidate, true
}

// Candidate returns the extracted object text, or raw itself when
// extraction fails.
func Candidate(raw string) string {
	if c, ok := Extract(raw); ok {
		return c
	}
	return raw
}

// Decode finds a JSON value in raw, validates it against schema and decodes
// it into out. out may be nil when only validation is wanted. Failures are
// returned as *ErrViolation; a schema failure is reported in preference to a
// decode failure.
func Decode(raw string, schema *Schema, out any) error {
	compiled, err := schema.compiled()
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	var decodeErr, schemaErr error
	for _, text := range candidates(raw) {
		value, err := decodeGeneric(text)
		if err != nil {
			if decodeErr == nil {
				decodeErr = fmt.Errorf("invalid JSON: %w", err)
			}
			continue
		}
		if err := compiled.Validate(value); err != nil {
			if schemaErr == nil {
				schemaErr = err
			}
			continue
		}

		if out == nil {
			return nil
		}
		if err := json.Unmarshal([]byte(text), out); err != nil {
			return &ErrViolation{Schema: schema.Name, Stage: StageDecode, Raw: raw, Err: err}
		}
		return nil
	}

	if schemaErr != nil {
		return &ErrViolation{Schema: schema.Name, Stage: StageSchema, Raw: raw, Err: schemaErr}
	}
	return &ErrViolation{Schema: schema.Name, Stage: StageDecode, Raw: raw, Err: decodeErr}
}

// candidates lists the texts to try, in lookup order and without repeats.
// A reply that is itself a JSON string also contributes the object
// embedded in that string.
func candidates(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	out := []string{trimmed}
	add := func(text string) {
		for _, seen := range out {
			if seen == text {
				return
			}
		}
		out = append(out, text)
	}

	add(Candidate(raw))

	var inner string
	if err := json.Unmarshal([]byte(trimmed), &inner); err == nil {
		if c, ok := Extract(inner); ok {
			add(c)
		}
	}
	return out
}

// decodeGeneric decodes a single JSON value, rejecting trailing data.
// Numbers stay json.Number so the schema validator sees exact values.
func decodeGeneric(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	return v, nil
}
