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
	"fmt"

	"github.com/quiverhq/quiver/graphql/ast"
)

// Type is the interface provided by every GraphQL type. It is a closed variant over exactly eight
// kinds: Scalar, Object, Interface, Union, Enum, InputObject, List and NonNull. The unexported
// marker method seals the variant so every type switch in this package is exhaustive.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Types
type Type interface {
	// String representation when printing the type
	fmt.Stringer

	// graphqlType is a special mark to indicate a Type. It makes sure that only a fixed set of
	// objects can be assigned to Type.
	graphqlType()
}

// Extensions is an opaque, read-only side-channel of metadata attached to a type, field, argument
// or enum value. It is stored and returned verbatim and never interpreted.
type Extensions map[string]interface{}

// Deprecation contains information about deprecation for a field or an enum value.
//
// See https://facebook.github.io/graphql/June2018/#sec-Deprecation.
type Deprecation struct {
	// Reason provides a description of why the subject is deprecated.
	Reason string
}

// Defined returns true if the deprecation is active.
func (d *Deprecation) Defined() bool {
	return d != nil
}

// TypeWithName is implemented by the type definition for named type.
type TypeWithName interface {
	// Name of the defining type
	Name() string
}

// TypeWithDescription is implemented by the types that provide description.
type TypeWithDescription interface {
	// Description provides documentation for the type.
	Description() string
}

// NamedType is any of the six non-wrapping kinds; the unit of schema identity.
type NamedType interface {
	Type
	TypeWithName
	TypeWithDescription

	// TypeDefinitionNode returns the syntax node from which the type was defined, if it was defined
	// from a parsed document. The node is stored verbatim and never inspected.
	TypeDefinitionNode() ast.TypeDefinition

	// TypeExtensionNodes returns the syntax nodes which extended the type definition, if any.
	TypeExtensionNodes() []ast.TypeExtension

	// graphqlNamedType puts a special mark for a named type.
	graphqlNamedType()
}

// LeafType can represent a leaf value where execution of the hierarchical queries terminates.
// Scalar and Enum are the leaf types.
type LeafType interface {
	NamedType

	// Serialize coerces the given internal value into the form in which it appears in a response.
	Serialize(value interface{}) (interface{}, error)

	// ParseValue coerces a request variable value into the internal representation.
	ParseValue(value interface{}) (interface{}, error)

	// ParseLiteral coerces a value node from a request document into the internal representation.
	// The variables provide values for any request variable the node may reference.
	ParseLiteral(value ast.Value, variables VariableValues) (interface{}, error)

	// graphqlLeafType puts a special mark for a leaf type.
	graphqlLeafType()
}

// CompositeType is a type that can be the target of a field selection: Object, Interface or Union.
type CompositeType interface {
	Type
	TypeWithName
	TypeWithDescription

	// graphqlCompositeType puts a special mark for a composite type.
	graphqlCompositeType()
}

// AbstractType is a composite type whose concrete runtime type must be resolved dynamically:
// Interface or Union.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Types
type AbstractType interface {
	Type
	TypeWithName
	TypeWithDescription

	// graphqlAbstractType puts a special mark for an abstract type.
	graphqlAbstractType()
}

// WrappingType is a type that wraps another type. There are two wrapping types: List and NonNull.
// A wrapping type contributes no name of its own and owns exactly one inner type.
//
// Reference: https://facebook.github.io/graphql/draft/#sec-Wrapping-Types
type WrappingType interface {
	Type

	// UnwrappedType returns the type that is wrapped by this type.
	UnwrappedType() Type

	// graphqlWrappingType puts a special mark for a wrapping type.
	graphqlWrappingType()
}

//===----------------------------------------------------------------------------------------====//
// Wrapping Resolver
//===----------------------------------------------------------------------------------------====//

// NamedTypeOf strips all wrapping layers from the given type and returns the underlying named
// type. It returns nil for nil input. It never allocates; wrapping depth is finite so the loop
// terminates.
//
// Reference: https://facebook.github.io/graphql/draft/#sec-Wrapping-Types
func NamedTypeOf(t Type) NamedType {
	for {
		switch ttype := t.(type) {
		case *List:
			if ttype == nil {
				return nil
			}
			t = ttype.ElementType()

		case *NonNull:
			if ttype == nil {
				return nil
			}
			t = ttype.InnerType()

		default:
			named, ok := t.(NamedType)
			if !ok {
				return nil
			}
			return named
		}
	}
}

// NullableTypeOf strips exactly one outer NonNull from the given type. It is the identity for any
// other type, and nil propagates as nil.
func NullableTypeOf(t Type) Type {
	if t, ok := t.(*NonNull); ok && t != nil {
		return t.InnerType()
	}
	return t
}

//===----------------------------------------------------------------------------------------====//
// Type Predication
//===----------------------------------------------------------------------------------------====//

// IsInputType returns true if the given type can describe incoming argument and variable data.
// The predicate is wrapping-transparent: it holds for List and NonNull whenever it holds for the
// underlying named type. Scalars and enums are both input and output types; input/output
// classification is a property of usage position, not a disjoint tag.
//
// Reference: https://facebook.github.io/graphql/June2018/#IsInputType()
func IsInputType(t Type) bool {
	switch NamedTypeOf(t).(type) {
	case *Scalar, *Enum, *InputObject:
		return true
	default:
		return false
	}
}

// IsOutputType returns true if the given type can describe returned response data. The predicate
// is wrapping-transparent like IsInputType.
//
// Reference: https://facebook.github.io/graphql/draft/#IsOutputType()
func IsOutputType(t Type) bool {
	switch NamedTypeOf(t).(type) {
	case *Scalar, *Object, *Interface, *Union, *Enum:
		return true
	default:
		return false
	}
}

// IsLeafType returns true if the given type is a leaf: a scalar or an enum.
func IsLeafType(t Type) bool {
	_, ok := t.(LeafType)
	return ok
}

// IsCompositeType returns true if the given type is one of object, interface or union.
func IsCompositeType(t Type) bool {
	_, ok := t.(CompositeType)
	return ok
}

// IsAbstractType returns true if the given type is abstract: an interface or a union.
func IsAbstractType(t Type) bool {
	_, ok := t.(AbstractType)
	return ok
}

// IsNullableType returns true if the type accepts a null value, i.e., it is not a NonNull.
func IsNullableType(t Type) bool {
	_, ok := t.(*NonNull)
	return !ok
}

// IsNamedType returns true if the type is a non-wrapping type.
//
// Reference: https://facebook.github.io/graphql/draft/#sec-Wrapping-Types
func IsNamedType(t Type) bool {
	_, ok := t.(NamedType)
	return ok
}

// IsWrappingType returns true if the given type is a wrapping type.
func IsWrappingType(t Type) bool {
	_, ok := t.(WrappingType)
	return ok
}

// The following predications are simple wrappers of type assertions to the corresponding kind.
// This makes the use of predications in "if" easy. They return false for nil and never panic;
// their Assert counterparts always error on mismatch.

// IsScalarType returns true if the given type is a Scalar type.
func IsScalarType(t Type) bool {
	_, ok := t.(*Scalar)
	return ok
}

// IsObjectType returns true if the given type is an Object type.
func IsObjectType(t Type) bool {
	_, ok := t.(*Object)
	return ok
}

// IsInterfaceType returns true if the given type is an Interface type.
func IsInterfaceType(t Type) bool {
	_, ok := t.(*Interface)
	return ok
}

// IsUnionType returns true if the given type is an Union type.
func IsUnionType(t Type) bool {
	_, ok := t.(*Union)
	return ok
}

// IsEnumType returns true if the given type is an Enum type.
func IsEnumType(t Type) bool {
	_, ok := t.(*Enum)
	return ok
}

// IsInputObjectType returns true if the given type is an Input Object type.
func IsInputObjectType(t Type) bool {
	_, ok := t.(*InputObject)
	return ok
}

// IsListType returns true if the given type is a List type.
func IsListType(t Type) bool {
	_, ok := t.(*List)
	return ok
}

// IsNonNullType returns true if the given type is a NonNull type.
func IsNonNullType(t Type) bool {
	_, ok := t.(*NonNull)
	return ok
}
