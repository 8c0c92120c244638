// Package schema models the subset of a GraphQL introspection response the
// probe needs and selects the fields worth attacking.
package schema

// Type kinds as reported by introspection. Only OBJECT and LIST matter for
// testability; NON_NULL and LIST also appear as wrappers around other kinds.
const (
	KindObject = "OBJECT"
	KindList   = "LIST"
)

// internalTypePrefix marks GraphQL's built-in types (__Schema, __Type, ...),
// which are excluded from analysis.
const internalTypePrefix = "__"

// Envelope is the top-level shape of an introspection response. A nil Schema
// after decoding means the server did not expose one.
type Envelope struct {
	Data *Data `json:"data"`
}

// Data holds the __schema member of a successful introspection response.
type Data struct {
	Schema *Schema `json:"__schema"`
}

// Schema is the introspected schema. Only the types array is consumed.
type Schema struct {
	Types []Type `json:"types"`
}

// Type is a named schema type. Fields is nil for scalars, enums and input
// types; such types contribute nothing to the analysis.
type Type struct {
	Kind   string  `json:"kind"`
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Field is a single field of an object type.
type Field struct {
	Name string  `json:"name"`
	Type TypeRef `json:"type"`
}

// TypeRef is GraphQL's recursive wrapped-type representation: NON_NULL and
// LIST wrappers each nest one further TypeRef in OfType.
type TypeRef struct {
	Kind   string   `json:"kind"`
	Name   string   `json:"name"`
	OfType *TypeRef `json:"ofType"`
}

// TestableField identifies a (type, field) pair whose resolution is expensive
// enough to be worth probing. Immutable once computed.
type TestableField struct {
	TypeName  string `json:"type_name"`
	FieldName string `json:"field_name"`
}
