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

// List is a wrapping type that declares each value yielded by its wrapped type to be a sequence
// of values of the element type.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.List
type List struct {
	ofType Type
}

var (
	_ Type         = (*List)(nil)
	_ WrappingType = (*List)(nil)
)

// NewListOfType defines a List type whose element is the given type.
func NewListOfType(ofType Type) (*List, error) {
	if ofType == nil {
		return nil, newValidationError("Expected %s to be a GraphQL type.", Inspect(ofType))
	}
	return &List{ofType: ofType}, nil
}

// MustNewListOfType is a panic-on-fail version of NewListOfType.
func MustNewListOfType(ofType Type) *List {
	list, err := NewListOfType(ofType)
	if err != nil {
		panic(err)
	}
	return list
}

// graphqlType implements Type.
func (*List) graphqlType() {}

// graphqlWrappingType implements WrappingType.
func (*List) graphqlWrappingType() {}

// ElementType returns the type of the elements in the list.
func (list *List) ElementType() Type {
	return list.ofType
}

// UnwrappedType implements WrappingType.
func (list *List) UnwrappedType() Type {
	return list.ofType
}

// String implements fmt.Stringer.
func (list *List) String() string {
	return "[" + list.ofType.String() + "]"
}
