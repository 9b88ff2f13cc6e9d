package graphql

import (
	"net/http"

	"go.appointy.com/jaal"
	"go.appointy.com/jaal/introspection"
	"go.appointy.com/jaal/schemabuilder"
)

// RegisterSchema wires every type and operation into the schema builder.
// Order matters only in that objects and inputs must exist before the
// operations that reference them.
func RegisterSchema(sb *schemabuilder.Schema, r *Resolver) {
	RegisterObjects(sb)
	RegisterInputs(sb)

	RegisterQuery(sb, r)
	RegisterMutation(sb, r)
}

// NewHandler builds the executable schema with introspection and returns the
// HTTP handler serving it.
func NewHandler(r *Resolver) (http.Handler, error) {
	sb := schemabuilder.NewSchema()
	RegisterSchema(sb, r)

	schema, err := sb.Build()
	if err != nil {
		return nil, err
	}

	introspection.AddIntrospectionToSchema(schema)

	return jaal.HTTPHandler(schema), nil
}
