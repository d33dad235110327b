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
	"context"
)

// VariableValues holds coerced values for the variables of a request. Value nodes that reference
// a variable (ast.Variable) are resolved against it during literal coercion.
type VariableValues map[string]interface{}

// Lookup finds the value for a variable, reporting whether the variable was provided at all. A
// provided variable may still carry a nil value (an explicit null).
func (values VariableValues) Lookup(name string) (interface{}, bool) {
	value, ok := values[name]
	return value, ok
}

// NoVariables is passed to ParseLiteral when coercing a literal that cannot reference variables,
// such as a default value in a type definition.
var NoVariables VariableValues

// ResolveInfo exposes the static context of the field being resolved. Execution layers construct
// one per field invocation; the type system only defines its shape.
type ResolveInfo struct {
	// Schema of the request being executed
	Schema *Schema

	// Object is the type that owns the field being resolved.
	Object *Object

	// Field is the definition of the field being resolved.
	Field *Field

	// Variables carries the coerced variable values of the request.
	Variables VariableValues
}

// FieldResolver produces the value of a field for a given source object.
type FieldResolver interface {
	Resolve(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error)
}

// FieldResolverFunc adapts a function to a FieldResolver.
type FieldResolverFunc func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error)

// Resolve implements FieldResolver.
func (f FieldResolverFunc) Resolve(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
	return f(ctx, source, info)
}

// SubscriptionSourcer produces the source event stream of a subscription field. The returned
// value is an implementation-defined stream handle; this package only defines the seam.
type SubscriptionSourcer interface {
	Subscribe(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error)
}

// SubscriptionSourcerFunc adapts a function to a SubscriptionSourcer.
type SubscriptionSourcerFunc func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error)

// Subscribe implements SubscriptionSourcer.
func (f SubscriptionSourcerFunc) Subscribe(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
	return f(ctx, source, info)
}

// TypeResolver determines which Object type an abstract-typed value takes at runtime.
type TypeResolver interface {
	ResolveType(ctx context.Context, value interface{}, info ResolveInfo) (*Object, error)
}

// TypeResolverFunc adapts a function to a TypeResolver.
type TypeResolverFunc func(ctx context.Context, value interface{}, info ResolveInfo) (*Object, error)

// ResolveType implements TypeResolver.
func (f TypeResolverFunc) ResolveType(ctx context.Context, value interface{}, info ResolveInfo) (*Object, error) {
	return f(ctx, value, info)
}
