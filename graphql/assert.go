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

// Each predication in types.go has an assertion counterpart here. The assertion performs the same
// check but returns the narrowed type together with an error describing the mismatch. The error
// message always embeds the Inspect rendition of the offending value so diagnostics cite the type
// notation rather than a Go pointer.

// AssertScalarType returns the given type as a Scalar, or an error if it is any other kind.
func AssertScalarType(t Type) (*Scalar, error) {
	scalar, ok := t.(*Scalar)
	if !ok {
		return nil, newValidationError("Expected %s to be a GraphQL Scalar type.", Inspect(t))
	}
	return scalar, nil
}

// AssertObjectType returns the given type as an Object, or an error if it is any other kind.
func AssertObjectType(t Type) (*Object, error) {
	object, ok := t.(*Object)
	if !ok {
		return nil, newValidationError("Expected %s to be a GraphQL Object type.", Inspect(t))
	}
	return object, nil
}

// AssertInterfaceType returns the given type as an Interface, or an error if it is any other kind.
func AssertInterfaceType(t Type) (*Interface, error) {
	iface, ok := t.(*Interface)
	if !ok {
		return nil, newValidationError("Expected %s to be a GraphQL Interface type.", Inspect(t))
	}
	return iface, nil
}

// AssertUnionType returns the given type as an Union, or an error if it is any other kind.
func AssertUnionType(t Type) (*Union, error) {
	union, ok := t.(*Union)
	if !ok {
		return nil, newValidationError("Expected %s to be a GraphQL Union type.", Inspect(t))
	}
	return union, nil
}

// AssertEnumType returns the given type as an Enum, or an error if it is any other kind.
func AssertEnumType(t Type) (*Enum, error) {
	enum, ok := t.(*Enum)
	if !ok {
		return nil, newValidationError("Expected %s to be a GraphQL Enum type.", Inspect(t))
	}
	return enum, nil
}

// AssertInputObjectType returns the given type as an InputObject, or an error if it is any other
// kind.
func AssertInputObjectType(t Type) (*InputObject, error) {
	inputObject, ok := t.(*InputObject)
	if !ok {
		return nil, newValidationError("Expected %s to be a GraphQL Input Object type.", Inspect(t))
	}
	return inputObject, nil
}

// AssertListType returns the given type as a List, or an error if it is any other kind.
func AssertListType(t Type) (*List, error) {
	list, ok := t.(*List)
	if !ok {
		return nil, newValidationError("Expected %s to be a GraphQL List type.", Inspect(t))
	}
	return list, nil
}

// AssertNonNullType returns the given type as a NonNull, or an error if it is any other kind.
func AssertNonNullType(t Type) (*NonNull, error) {
	nonNull, ok := t.(*NonNull)
	if !ok {
		return nil, newValidationError("Expected %s to be a GraphQL Non-Null type.", Inspect(t))
	}
	return nonNull, nil
}

// AssertLeafType returns the given type as a LeafType, or an error if it is not a scalar or an
// enum.
func AssertLeafType(t Type) (LeafType, error) {
	leaf, ok := t.(LeafType)
	if !ok {
		return nil, newValidationError("Expected %s to be a GraphQL leaf type.", Inspect(t))
	}
	return leaf, nil
}

// AssertCompositeType returns the given type as a CompositeType, or an error if it is not an
// object, an interface or an union.
func AssertCompositeType(t Type) (CompositeType, error) {
	composite, ok := t.(CompositeType)
	if !ok {
		return nil, newValidationError("Expected %s to be a GraphQL composite type.", Inspect(t))
	}
	return composite, nil
}

// AssertAbstractType returns the given type as an AbstractType, or an error if it is not an
// interface or an union.
func AssertAbstractType(t Type) (AbstractType, error) {
	abstract, ok := t.(AbstractType)
	if !ok {
		return nil, newValidationError("Expected %s to be a GraphQL abstract type.", Inspect(t))
	}
	return abstract, nil
}

// AssertNullableType returns the given type unchanged, or an error if it is a NonNull.
func AssertNullableType(t Type) (Type, error) {
	if _, ok := t.(*NonNull); ok {
		return nil, newValidationError("Expected %s to be a GraphQL nullable type.", Inspect(t))
	}
	return t, nil
}

// AssertNamedType returns the given type as a NamedType, or an error if it is a wrapping type.
func AssertNamedType(t Type) (NamedType, error) {
	named, ok := t.(NamedType)
	if !ok {
		return nil, newValidationError("Expected %s to be a GraphQL named type.", Inspect(t))
	}
	return named, nil
}

// AssertWrappingType returns the given type as a WrappingType, or an error if it is a named type.
func AssertWrappingType(t Type) (WrappingType, error) {
	wrapping, ok := t.(WrappingType)
	if !ok {
		return nil, newValidationError("Expected %s to be a GraphQL wrapping type.", Inspect(t))
	}
	return wrapping, nil
}

// AssertInputType returns the given type unchanged, or an error if it cannot appear in an input
// position. Wrapping types are judged by their underlying named type.
func AssertInputType(t Type) (Type, error) {
	if !IsInputType(t) {
		return nil, newValidationError("Expected %s to be a GraphQL input type.", Inspect(t))
	}
	return t, nil
}

// AssertOutputType returns the given type unchanged, or an error if it cannot appear in an output
// position. Wrapping types are judged by their underlying named type.
func AssertOutputType(t Type) (Type, error) {
	if !IsOutputType(t) {
		return nil, newValidationError("Expected %s to be a GraphQL output type.", Inspect(t))
	}
	return t, nil
}
