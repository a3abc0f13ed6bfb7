// Package schema validates the model's final JSON output against the
// plan contract before anything is rendered.
//
// The model promises, by prompt instruction only, to emit a single JSON
// object with six required top-level fields. That promise carries no
// structural guarantee, so the decoded object is checked here field by
// field and every failure is reported, not just the first:
//
//	data := map[string]any{...} // decoded model output
//	if err := schema.ValidatePlan(data); err != nil {
//	    // treat as a parse failure; keep the raw text
//	}
//
// The type system is deliberately small: strings, whole numbers, floats,
// objects, homogeneous slices, and a union type for fields that accept
// more than one shape (the weather field may be a plain summary string or
// a structured snapshot).
package schema
