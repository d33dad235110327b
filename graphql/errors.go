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
)

// NewCoercionError produces an error indicating that a value cannot be coerced from or into a
// GraphQL type. These are the per-operation failures that an execution layer folds into a partial,
// per-field error in the response.
func NewCoercionError(format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), ErrKindCoercion)
}

// NewCoercionErrorWithLocation is NewCoercionError with a source location attached. Literal
// coercion failures use it to point back at the offending value node in the request document.
func NewCoercionErrorWithLocation(location ErrorLocation, format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), ErrKindCoercion, location)
}

// newValidationError produces an error indicating an invariant violation found while constructing
// a type or a schema. These are fatal to the construction attempt and are never retried.
func newValidationError(format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), ErrKindValidation)
}
