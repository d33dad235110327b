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

// UnionConfig provides the specification to define an Union type.
type UnionConfig struct {
	// Name of the defining Union type
	Name string

	// Description of the Union type
	Description string

	// PossibleTypes lists the Object types the Union may resolve to.
	PossibleTypes PossibleTypesProvider

	// TypeResolver determines the concrete Object type of a value at runtime. When nil, the
	// execution layer falls back to probing the possible types.
	TypeResolver TypeResolver

	// Extensions is stored verbatim and returned from Union.Extensions.
	Extensions Extensions

	// Definition is the syntax node the type was defined from, if any.
	Definition ast.TypeDefinition

	// ExtensionNodes are the syntax nodes which extended the definition, if any.
	ExtensionNodes []ast.TypeExtension
}

// Union is an abstract type whose values take one of a fixed list of Object types.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Unions
type Union struct {
	config        UnionConfig
	possibleTypes lazy[[]*Object]
}

var (
	_ Type          = (*Union)(nil)
	_ NamedType     = (*Union)(nil)
	_ CompositeType = (*Union)(nil)
	_ AbstractType  = (*Union)(nil)
)

// NewUnion defines an Union type from the given config.
func NewUnion(config UnionConfig) (*Union, error) {
	if err := checkName("Union", config.Name); err != nil {
		return nil, err
	}
	return &Union{config: config}, nil
}

// MustNewUnion is a panic-on-fail version of NewUnion.
func MustNewUnion(config UnionConfig) *Union {
	union, err := NewUnion(config)
	if err != nil {
		panic(err)
	}
	return union
}

// graphqlType implements Type.
func (*Union) graphqlType() {}

// graphqlNamedType implements NamedType.
func (*Union) graphqlNamedType() {}

// graphqlCompositeType implements CompositeType.
func (*Union) graphqlCompositeType() {}

// graphqlAbstractType implements AbstractType.
func (*Union) graphqlAbstractType() {}

// Name implements TypeWithName.
func (union *Union) Name() string {
	return union.config.Name
}

// Description implements TypeWithDescription.
func (union *Union) Description() string {
	return union.config.Description
}

// String implements fmt.Stringer.
func (union *Union) String() string {
	return union.config.Name
}

// Extensions returns the metadata attached to the type definition.
func (union *Union) Extensions() Extensions {
	return union.config.Extensions
}

// TypeDefinitionNode implements NamedType.
func (union *Union) TypeDefinitionNode() ast.TypeDefinition {
	return union.config.Definition
}

// TypeExtensionNodes implements NamedType.
func (union *Union) TypeExtensionNodes() []ast.TypeExtension {
	return union.config.ExtensionNodes
}

// TypeResolver returns the configured type resolver, or nil.
func (union *Union) TypeResolver() TypeResolver {
	return union.config.TypeResolver
}

// PossibleTypes returns the member types in definition order. The first call resolves and checks
// the configured list; the result, including any error, is computed once and reused.
func (union *Union) PossibleTypes() ([]*Object, error) {
	return union.possibleTypes.resolve(func() ([]*Object, error) {
		provider := union.config.PossibleTypes
		if provider == nil {
			return nil, nil
		}
		members := provider.providePossibleTypes()
		for i, member := range members {
			if member == nil {
				return nil, newValidationError(
					"Union type %s can only include Object types, it cannot include %s.",
					union.config.Name, Inspect(members[i]))
			}
			for _, seen := range members[:i] {
				if seen == member {
					return nil, newValidationError(
						"Union type %s can only include type %s once.",
						union.config.Name, member.Name())
				}
			}
		}
		return members, nil
	})
}
