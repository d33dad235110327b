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

// ScalarResultCoercer coerces an internal value into the form that appears in a response.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type ScalarResultCoercer interface {
	// CoerceResultValue coerces the given value for the field to return. It must return an error
	// with ErrKindCoercion for an unacceptable value.
	CoerceResultValue(value interface{}) (interface{}, error)
}

// CoerceScalarResultFunc adapts a function to a ScalarResultCoercer.
type CoerceScalarResultFunc func(value interface{}) (interface{}, error)

// CoerceResultValue implements ScalarResultCoercer.
func (f CoerceScalarResultFunc) CoerceResultValue(value interface{}) (interface{}, error) {
	return f(value)
}

// ScalarInputCoercer coerces input values given in a request into the internal representation.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type ScalarInputCoercer interface {
	// CoerceVariableValue coerces a value read from a request variable.
	CoerceVariableValue(value interface{}) (interface{}, error)

	// CoerceLiteralValue coerces a value node in a request document. The node is never an
	// ast.Variable; variable references are resolved before the coercer runs.
	CoerceLiteralValue(value ast.Value) (interface{}, error)
}

// ScalarInputCoercerFuncs bundles two functions into a ScalarInputCoercer.
type ScalarInputCoercerFuncs struct {
	CoerceVariableValueFunc func(value interface{}) (interface{}, error)
	CoerceLiteralValueFunc  func(value ast.Value) (interface{}, error)
}

// CoerceVariableValue implements ScalarInputCoercer.
func (f ScalarInputCoercerFuncs) CoerceVariableValue(value interface{}) (interface{}, error) {
	return f.CoerceVariableValueFunc(value)
}

// CoerceLiteralValue implements ScalarInputCoercer.
func (f ScalarInputCoercerFuncs) CoerceLiteralValue(value ast.Value) (interface{}, error) {
	return f.CoerceLiteralValueFunc(value)
}

// ScalarConfig provides the specification to define a Scalar type.
type ScalarConfig struct {
	// Name of the defining Scalar type
	Name string

	// Description of the Scalar type
	Description string

	// ResultCoercer serializes internal values for responses. When nil, values pass through
	// unchanged.
	ResultCoercer ScalarResultCoercer

	// InputCoercer parses input values given in requests. When nil, variable values pass through
	// unchanged and literals coerce to the untyped Go value of the node.
	InputCoercer ScalarInputCoercer

	// Extensions is stored verbatim and returned from Scalar.Extensions.
	Extensions Extensions

	// Definition is the syntax node the type was defined from, if any.
	Definition ast.TypeDefinition

	// ExtensionNodes are the syntax nodes which extended the definition, if any.
	ExtensionNodes []ast.TypeExtension
}

// Scalar represents a leaf value in GraphQL type system whose coercion behavior is supplied by
// the definer.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type Scalar struct {
	config ScalarConfig
}

var (
	_ Type      = (*Scalar)(nil)
	_ LeafType  = (*Scalar)(nil)
	_ NamedType = (*Scalar)(nil)
)

// NewScalar defines a Scalar type from the given config.
func NewScalar(config ScalarConfig) (*Scalar, error) {
	if err := checkName("Scalar", config.Name); err != nil {
		return nil, err
	}
	return &Scalar{config: config}, nil
}

// MustNewScalar is a panic-on-fail version of NewScalar.
func MustNewScalar(config ScalarConfig) *Scalar {
	scalar, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return scalar
}

// graphqlType implements Type.
func (*Scalar) graphqlType() {}

// graphqlLeafType implements LeafType.
func (*Scalar) graphqlLeafType() {}

// graphqlNamedType implements NamedType.
func (*Scalar) graphqlNamedType() {}

// Name implements TypeWithName.
func (scalar *Scalar) Name() string {
	return scalar.config.Name
}

// Description implements TypeWithDescription.
func (scalar *Scalar) Description() string {
	return scalar.config.Description
}

// String implements fmt.Stringer.
func (scalar *Scalar) String() string {
	return scalar.config.Name
}

// Extensions returns the metadata attached to the type definition.
func (scalar *Scalar) Extensions() Extensions {
	return scalar.config.Extensions
}

// TypeDefinitionNode implements NamedType.
func (scalar *Scalar) TypeDefinitionNode() ast.TypeDefinition {
	return scalar.config.Definition
}

// TypeExtensionNodes implements NamedType.
func (scalar *Scalar) TypeExtensionNodes() []ast.TypeExtension {
	return scalar.config.ExtensionNodes
}

// Serialize implements LeafType.
func (scalar *Scalar) Serialize(value interface{}) (interface{}, error) {
	if coercer := scalar.config.ResultCoercer; coercer != nil {
		return coercer.CoerceResultValue(value)
	}
	return value, nil
}

// ParseValue implements LeafType.
func (scalar *Scalar) ParseValue(value interface{}) (interface{}, error) {
	if coercer := scalar.config.InputCoercer; coercer != nil {
		return coercer.CoerceVariableValue(value)
	}
	return value, nil
}

// ParseLiteral implements LeafType. A variable node is resolved against variables first; the
// resulting value, like a value provided directly for the variable, goes through ParseValue.
func (scalar *Scalar) ParseLiteral(value ast.Value, variables VariableValues) (interface{}, error) {
	if variable, ok := value.(ast.Variable); ok {
		varValue, ok := variables.Lookup(variable.Name.Value)
		if !ok {
			return nil, NewCoercionErrorWithLocation(
				ErrorLocationOfASTNode(variable),
				"Variable %q is not provided for scalar %q.", "$"+variable.Name.Value, scalar.Name())
		}
		return scalar.ParseValue(varValue)
	}

	if coercer := scalar.config.InputCoercer; coercer != nil {
		return coercer.CoerceLiteralValue(value)
	}
	return value.Interface(), nil
}
