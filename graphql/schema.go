/**
 * Copyright (c) 2024, The Quiver Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

// SchemaConfig provides the specification to define a Schema.
type SchemaConfig struct {
	// Query is the root type for read operations. It is the only mandatory root.
	Query *Object

	// Mutation is the root type for write operations, if any.
	Mutation *Object

	// Subscription is the root type for subscription operations, if any.
	Subscription *Object

	// Types lists additional types to include in the schema that are not reachable from the
	// roots, such as Object types only ever referenced through an Interface.
	Types []NamedType

	// Extensions is stored verbatim and returned from Schema.Extensions.
	Extensions Extensions
}

// Schema owns a complete type graph. Construction walks every type reachable from the roots,
// forcing all lazy definitions, so any deferred construction error surfaces here instead of at
// first field access during execution.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Schema
type Schema struct {
	query        *Object
	mutation     *Object
	subscription *Object
	extensions   Extensions

	// typeMap indexes every named type in the schema by name.
	typeMap map[string]NamedType

	// possibleTypes maps the name of an abstract type to the Object types that may stand behind
	// it. Interface entries cover the implementing objects that are part of the schema.
	possibleTypes map[string][]*Object
}

// NewSchema builds a Schema from the given config.
func NewSchema(config SchemaConfig) (*Schema, error) {
	if config.Query == nil {
		return nil, newValidationError("Query root type must be provided.")
	}

	schema := &Schema{
		query:         config.Query,
		mutation:      config.Mutation,
		subscription:  config.Subscription,
		extensions:    config.Extensions,
		typeMap:       map[string]NamedType{},
		possibleTypes: map[string][]*Object{},
	}

	if err := schema.addType(config.Query); err != nil {
		return nil, err
	}
	if config.Mutation != nil {
		if err := schema.addType(config.Mutation); err != nil {
			return nil, err
		}
	}
	if config.Subscription != nil {
		if err := schema.addType(config.Subscription); err != nil {
			return nil, err
		}
	}
	for _, t := range config.Types {
		if err := schema.addType(t); err != nil {
			return nil, err
		}
	}

	return schema, nil
}

// MustNewSchema is a panic-on-fail version of NewSchema.
func MustNewSchema(config SchemaConfig) *Schema {
	schema, err := NewSchema(config)
	if err != nil {
		panic(err)
	}
	return schema
}

// addType registers the named type behind t and recursively every type it references. Cycles are
// cut by the typeMap check; a type already registered under the same identity is skipped.
func (schema *Schema) addType(t Type) error {
	if t == nil {
		return nil
	}
	named := NamedTypeOf(t)
	if named == nil {
		return newValidationError("Expected %s to be a GraphQL named type.", Inspect(t))
	}

	name := named.Name()
	if existing, found := schema.typeMap[name]; found {
		if existing != named {
			return newValidationError(
				"Schema must contain uniquely named types but contains multiple types named %q.",
				name)
		}
		return nil
	}
	schema.typeMap[name] = named

	switch named := named.(type) {
	case *Object:
		ifaces, err := named.Interfaces()
		if err != nil {
			return err
		}
		for _, iface := range ifaces {
			schema.possibleTypes[iface.Name()] = append(schema.possibleTypes[iface.Name()], named)
			if err := schema.addType(iface); err != nil {
				return err
			}
		}
		fields, err := named.Fields()
		if err != nil {
			return err
		}
		if err := schema.addFieldTypes(fields); err != nil {
			return err
		}

	case *Interface:
		fields, err := named.Fields()
		if err != nil {
			return err
		}
		if err := schema.addFieldTypes(fields); err != nil {
			return err
		}

	case *Union:
		members, err := named.PossibleTypes()
		if err != nil {
			return err
		}
		schema.possibleTypes[named.Name()] = members
		for _, member := range members {
			if err := schema.addType(member); err != nil {
				return err
			}
		}

	case *InputObject:
		fields, err := named.Fields()
		if err != nil {
			return err
		}
		for _, field := range fields {
			if err := schema.addType(field.Type()); err != nil {
				return err
			}
		}
	}
	// Scalar and Enum reference no further types.

	return nil
}

func (schema *Schema) addFieldTypes(fields FieldList) error {
	for _, field := range fields {
		if err := schema.addType(field.Type()); err != nil {
			return err
		}
		for i := range field.Args() {
			if err := schema.addType(field.Args()[i].Type()); err != nil {
				return err
			}
		}
	}
	return nil
}

// Query returns the root type for read operations.
func (schema *Schema) Query() *Object {
	return schema.query
}

// Mutation returns the root type for write operations, or nil.
func (schema *Schema) Mutation() *Object {
	return schema.mutation
}

// Subscription returns the root type for subscription operations, or nil.
func (schema *Schema) Subscription() *Object {
	return schema.subscription
}

// Extensions returns the metadata attached to the schema.
func (schema *Schema) Extensions() Extensions {
	return schema.extensions
}

// TypeMap returns every named type in the schema indexed by name. The returned map is owned by
// the schema and must not be modified.
func (schema *Schema) TypeMap() map[string]NamedType {
	return schema.typeMap
}

// Type finds a named type in the schema, or returns nil.
func (schema *Schema) Type(name string) NamedType {
	return schema.typeMap[name]
}

// PossibleTypes returns the Object types that may stand behind the given abstract type. For an
// Interface the result covers the implementing objects that are part of the schema.
func (schema *Schema) PossibleTypes(t AbstractType) []*Object {
	return schema.possibleTypes[t.Name()]
}

// IsPossibleType reports whether object may stand behind the given abstract type in this schema.
func (schema *Schema) IsPossibleType(t AbstractType, object *Object) bool {
	for _, possible := range schema.possibleTypes[t.Name()] {
		if possible == object {
			return true
		}
	}
	return false
}
