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

// InterfaceConfig provides the specification to define an Interface type.
type InterfaceConfig struct {
	// Name of the defining Interface type
	Name string

	// Description of the Interface type
	Description string

	// Fields that any Object implementing the Interface must provide
	Fields FieldsProvider

	// TypeResolver determines the concrete Object type of a value at runtime. When nil, the
	// execution layer falls back to probing the possible types.
	TypeResolver TypeResolver

	// Extensions is stored verbatim and returned from Interface.Extensions.
	Extensions Extensions

	// Definition is the syntax node the type was defined from, if any.
	Definition ast.TypeDefinition

	// ExtensionNodes are the syntax nodes which extended the definition, if any.
	ExtensionNodes []ast.TypeExtension
}

// Interface is an abstract type that declares a set of fields an implementing Object must
// include.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Interfaces
type Interface struct {
	config InterfaceConfig
	fields lazy[FieldList]
}

var (
	_ Type          = (*Interface)(nil)
	_ NamedType     = (*Interface)(nil)
	_ CompositeType = (*Interface)(nil)
	_ AbstractType  = (*Interface)(nil)
)

// NewInterface defines an Interface type from the given config.
func NewInterface(config InterfaceConfig) (*Interface, error) {
	if err := checkName("Interface", config.Name); err != nil {
		return nil, err
	}
	return &Interface{config: config}, nil
}

// MustNewInterface is a panic-on-fail version of NewInterface.
func MustNewInterface(config InterfaceConfig) *Interface {
	iface, err := NewInterface(config)
	if err != nil {
		panic(err)
	}
	return iface
}

// graphqlType implements Type.
func (*Interface) graphqlType() {}

// graphqlNamedType implements NamedType.
func (*Interface) graphqlNamedType() {}

// graphqlCompositeType implements CompositeType.
func (*Interface) graphqlCompositeType() {}

// graphqlAbstractType implements AbstractType.
func (*Interface) graphqlAbstractType() {}

// Name implements TypeWithName.
func (iface *Interface) Name() string {
	return iface.config.Name
}

// Description implements TypeWithDescription.
func (iface *Interface) Description() string {
	return iface.config.Description
}

// String implements fmt.Stringer.
func (iface *Interface) String() string {
	return iface.config.Name
}

// Extensions returns the metadata attached to the type definition.
func (iface *Interface) Extensions() Extensions {
	return iface.config.Extensions
}

// TypeDefinitionNode implements NamedType.
func (iface *Interface) TypeDefinitionNode() ast.TypeDefinition {
	return iface.config.Definition
}

// TypeExtensionNodes implements NamedType.
func (iface *Interface) TypeExtensionNodes() []ast.TypeExtension {
	return iface.config.ExtensionNodes
}

// TypeResolver returns the configured type resolver, or nil.
func (iface *Interface) TypeResolver() TypeResolver {
	return iface.config.TypeResolver
}

// Fields returns the declared fields in definition order. The first call normalizes the
// configured fields; the result, including any error, is computed once and reused.
func (iface *Interface) Fields() (FieldList, error) {
	return iface.fields.resolve(func() (FieldList, error) {
		provider := iface.config.Fields
		if provider == nil {
			return nil, nil
		}
		return buildFields(provider.provideFields(), iface.config.Name)
	})
}
