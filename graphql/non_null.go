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

// NonNull is a wrapping type that declares the values yielded by its wrapped type to never be
// null. A NonNull may wrap any type except another NonNull; double non-null is meaningless and
// rejected at construction.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Non-Null
type NonNull struct {
	ofType Type
}

var (
	_ Type         = (*NonNull)(nil)
	_ WrappingType = (*NonNull)(nil)
)

// NewNonNullOfType defines a NonNull type wrapping the given type.
func NewNonNullOfType(ofType Type) (*NonNull, error) {
	if ofType == nil {
		return nil, newValidationError("Expected %s to be a GraphQL type.", Inspect(ofType))
	}
	if _, err := AssertNullableType(ofType); err != nil {
		return nil, err
	}
	return &NonNull{ofType: ofType}, nil
}

// MustNewNonNullOfType is a panic-on-fail version of NewNonNullOfType.
func MustNewNonNullOfType(ofType Type) *NonNull {
	nonNull, err := NewNonNullOfType(ofType)
	if err != nil {
		panic(err)
	}
	return nonNull
}

// graphqlType implements Type.
func (*NonNull) graphqlType() {}

// graphqlWrappingType implements WrappingType.
func (*NonNull) graphqlWrappingType() {}

// InnerType returns the type wrapped by the NonNull.
func (nonNull *NonNull) InnerType() Type {
	return nonNull.ofType
}

// UnwrappedType implements WrappingType.
func (nonNull *NonNull) UnwrappedType() Type {
	return nonNull.ofType
}

// String implements fmt.Stringer.
func (nonNull *NonNull) String() string {
	return nonNull.ofType.String() + "!"
}
