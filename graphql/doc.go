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

// Package graphql implements the GraphQL type system: the eight type kinds, the wrapping algebra
// over List and Non-Null, input and output coercion for leaf types, and the Schema that ties a
// type graph together.
//
// Types are defined from Config structs. A config may reference types that do not exist yet by
// supplying a thunk in place of an eager list; the definition is resolved, once, when first
// accessed. This is what makes circular type references expressible:
//
//	var todoType *Object
//
//	todoType = MustNewObject(ObjectConfig{
//		Name: "Todo",
//		Fields: FieldsThunk(func() Fields {
//			return Fields{
//				{Name: "id", Type: MustNewNonNullOfType(ID)},
//				{Name: "blockedBy", Type: MustNewListOfType(todoType)},
//			}
//		}),
//	})
//
// NewSchema walks the graph reachable from the root types, forcing every deferred definition, so
// construction errors surface at schema build time rather than during execution.
package graphql
