package payloads

// IntrospectionOperationName is sent both as the operationName of the
// introspection request and, for endpoint compatibility, as the
// x-apollo-operation-name header on every request.
const IntrospectionOperationName = "IntrospectionQuery"

// IntrospectionQuery is the standard full introspection document. The TypeRef
// fragment resolves wrapper types (NON_NULL, LIST) up to three ofType levels
// deep.
const IntrospectionQuery = `
query IntrospectionQuery {
    __schema {
        queryType {
            name
        }
        mutationType {
            name
        }
        subscriptionType {
            name
        }
        types {
            ...FullType
        }
        directives {
            name
            description
            locations
            args {
                ...InputValue
            }
        }
    }
}

fragment FullType on __Type {
    kind
    name
    description
    fields(includeDeprecated: true) {
        name
        description
        args {
            ...InputValue
        }
        type {
            ...TypeRef
        }
        isDeprecated
        deprecationReason
    }
    inputFields {
        ...InputValue
    }
    interfaces {
        ...TypeRef
    }
    enumValues(includeDeprecated: true) {
        name
        description
        isDeprecated
        deprecationReason
    }
    possibleTypes {
        ...TypeRef
    }
}

fragment InputValue on __InputValue {
    name
    description
    type {
        ...TypeRef
    }
    defaultValue
}

fragment TypeRef on __Type {
    kind
    name
    ofType {
        kind
        name
        ofType {
            kind
            name
            ofType {
                kind
                name
            }
        }
    }
}
`

// TypeNameQuery is a minimal query used to confirm that an endpoint speaks
// GraphQL at all.
const TypeNameQuery = `{__typename}`

// CommonGraphQLPaths contains commonly used paths for GraphQL endpoints,
// probed in order during discovery.
var CommonGraphQLPaths = []string{
	"/graphql",
	"/api/graphql",
	"/graphql/v1",
	"/graphql/v2",
	"/api",
	"/query",
	"/graph",
	"/graphql.php",
	"/graphql.json",
}
