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

import (
	"github.com/quiverhq/quiver/graphql/ast"
)

// ObjectConfig provides the specification to define an Object type.
type ObjectConfig struct {
	// Name of the defining Object type
	Name string

	// Description of the Object type
	Description string

	// Interfaces that the Object implements
	Interfaces InterfacesProvider

	// Fields of the Object, in the order they should be reported
	Fields FieldsProvider

	// Extensions is stored verbatim and returned from Object.Extensions.
	Extensions Extensions

	// Definition is the syntax node the type was defined from, if any.
	Definition ast.TypeDefinition

	// ExtensionNodes are the syntax nodes which extended the definition, if any.
	ExtensionNodes []ast.TypeExtension
}

// Object is the most frequently used composite type. Its values are represented as a list of
// named fields, each of which yields a value of its own type.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Objects
type Object struct {
	config     ObjectConfig
	fields     lazy[FieldList]
	interfaces lazy[[]*Interface]
}

var (
	_ Type          = (*Object)(nil)
	_ NamedType     = (*Object)(nil)
	_ CompositeType = (*Object)(nil)
)

// NewObject defines an Object type from the given config. Fields and interfaces are not resolved
// here; a config may reference types that do not exist yet as long as they do by the time Fields
// or Interfaces is first called.
func NewObject(config ObjectConfig) (*Object, error) {
	if err := checkName("Object", config.Name); err != nil {
		return nil, err
	}
	return &Object{config: config}, nil
}

// MustNewObject is a panic-on-fail version of NewObject.
func MustNewObject(config ObjectConfig) *Object {
	object, err := NewObject(config)
	if err != nil {
		panic(err)
	}
	return object
}

// graphqlType implements Type.
func (*Object) graphqlType() {}

// graphqlNamedType implements NamedType.
func (*Object) graphqlNamedType() {}

// graphqlCompositeType implements CompositeType.
func (*Object) graphqlCompositeType() {}

// Name implements TypeWithName.
func (object *Object) Name() string {
	return object.config.Name
}

// Description implements TypeWithDescription.
func (object *Object) Description() string {
	return object.config.Description
}

// String implements fmt.Stringer.
func (object *Object) String() string {
	return object.config.Name
}

// Extensions returns the metadata attached to the type definition.
func (object *Object) Extensions() Extensions {
	return object.config.Extensions
}

// TypeDefinitionNode implements NamedType.
func (object *Object) TypeDefinitionNode() ast.TypeDefinition {
	return object.config.Definition
}

// TypeExtensionNodes implements NamedType.
func (object *Object) TypeExtensionNodes() []ast.TypeExtension {
	return object.config.ExtensionNodes
}

// Fields returns the fields of the Object in definition order. The first call normalizes the
// configured fields; the result, including any error, is computed once and reused.
func (object *Object) Fields() (FieldList, error) {
	return object.fields.resolve(func() (FieldList, error) {
		provider := object.config.Fields
		if provider == nil {
			return nil, nil
		}
		return buildFields(provider.provideFields(), object.config.Name)
	})
}

// Interfaces returns the interfaces the Object implements.
func (object *Object) Interfaces() ([]*Interface, error) {
	return object.interfaces.resolve(func() ([]*Interface, error) {
		provider := object.config.Interfaces
		if provider == nil {
			return nil, nil
		}
		ifaces := provider.provideInterfaces()
		for i, iface := range ifaces {
			if iface == nil {
				return nil, newValidationError(
					"Type %s must only implement Interface types, it cannot implement %s.",
					object.config.Name, Inspect(ifaces[i]))
			}
			for _, seen := range ifaces[:i] {
				if seen == iface {
					return nil, newValidationError(
						"Type %s can only implement %s once.", object.config.Name, iface.Name())
				}
			}
		}
		return ifaces, nil
	})
}
