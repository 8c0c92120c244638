package schema

import "strings"

// Analyze walks the types array of an introspection response and returns the
// fields whose resolved type is an object or list. Results keep the input
// order (type order, then field order within the type) and are not
// de-duplicated across types, so the output is deterministic for a given
// response.
func Analyze(types []Type) []TestableField {
	var testable []TestableField

	for _, t := range types {
		if strings.HasPrefix(t.Name, internalTypePrefix) {
			continue
		}
		for _, f := range t.Fields {
			if isTestable(f.Type) {
				testable = append(testable, TestableField{
					TypeName:  t.Name,
					FieldName: f.Name,
				})
			}
		}
	}

	return testable
}

// isTestable reports whether a field resolves to an object or list type.
// Exactly one level of wrapper unwrap is inspected: a doubly wrapped type
// such as NON_NULL(NON_NULL(LIST(...))) is not detected. Kept that way for
// compatibility with the reference behavior.
func isTestable(ref TypeRef) bool {
	if ref.Kind == KindObject || ref.Kind == KindList {
		return true
	}
	if ref.OfType != nil && (ref.OfType.Kind == KindObject || ref.OfType.Kind == KindList) {
		return true
	}
	return false
}
