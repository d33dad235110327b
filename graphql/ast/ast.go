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

// Package ast defines the syntax nodes that a parser hands to the type system. The type system
// never interprets these nodes beyond dispatching on their kind; they are stored on types, fields,
// arguments and enum values verbatim and returned to callers for source-location reporting.
package ast

import (
	"strconv"
)

// SourceLocation points to the beginning of a syntax element in the source document. Both line and
// column are positive numbers starting from 1.
type SourceLocation struct {
	Line   uint
	Column uint
}

// Node is implemented by every syntax node.
type Node interface {
	// Location indicates where the node begins in the source.
	Location() SourceLocation
}

// Name represents an identifier in the source.
type Name struct {
	// Value contains the identifier text.
	Value string

	Loc SourceLocation
}

// Location implements Node.
func (n Name) Location() SourceLocation { return n.Loc }

//===----------------------------------------------------------------------------------------====//
// Value Nodes
//===----------------------------------------------------------------------------------------====//

// Value represents a node containing a value.
//
// Reference: https://facebook.github.io/graphql/June2018/#Value
type Value interface {
	Node

	// Interface returns the value as an interface{}.
	Interface() interface{}

	// valueNode is a special mark to indicate a value node. It makes sure that only value nodes can
	// be assigned to Value.
	valueNode()
}

// The following implement Value interface.
var (
	_ Value = Variable{}
	_ Value = IntValue{}
	_ Value = FloatValue{}
	_ Value = StringValue{}
	_ Value = BooleanValue{}
	_ Value = NullValue{}
	_ Value = EnumValue{}
	_ Value = ListValue{}
	_ Value = ObjectValue{}
)

// Variable refers to a request variable with a name.
//
// Reference: https://facebook.github.io/graphql/June2018/#Variable
type Variable struct {
	// Name of the referenced variable (without the leading "$")
	Name Name

	Loc SourceLocation
}

// Location implements Node.
func (value Variable) Location() SourceLocation { return value.Loc }

// Interface implements Value. It returns the name of the referenced variable.
func (value Variable) Interface() interface{} { return value.Name.Value }

// valueNode implements Value.
func (Variable) valueNode() {}

// IntValue represents a value node containing an integer.
//
// Reference: https://facebook.github.io/graphql/June2018/#IntValue
type IntValue struct {
	// Value contains the integer literal as it appears in the source.
	Value string

	Loc SourceLocation
}

// Location implements Node.
func (value IntValue) Location() SourceLocation { return value.Loc }

// Interface implements Value.
func (value IntValue) Interface() interface{} {
	v, err := value.Int32Value()
	if err != nil {
		return int32(0)
	}
	return v
}

// Int32Value parses the literal into a 32-bit signed integer.
func (value IntValue) Int32Value() (int32, error) {
	v, err := strconv.ParseInt(value.Value, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// valueNode implements Value.
func (IntValue) valueNode() {}

// String returns the literal that specifies the integer value.
func (value IntValue) String() string { return value.Value }

// FloatValue represents a value node containing a float.
//
// Reference: https://facebook.github.io/graphql/June2018/#FloatValue
type FloatValue struct {
	// Value contains the float literal as it appears in the source.
	Value string

	Loc SourceLocation
}

// Location implements Node.
func (value FloatValue) Location() SourceLocation { return value.Loc }

// Interface implements Value.
func (value FloatValue) Interface() interface{} {
	v, err := value.FloatValue()
	if err != nil {
		return float64(0)
	}
	return v
}

// FloatValue parses the literal into a 64-bit float.
func (value FloatValue) FloatValue() (float64, error) {
	return strconv.ParseFloat(value.Value, 64)
}

// valueNode implements Value.
func (FloatValue) valueNode() {}

// String returns the literal that specifies the float value.
func (value FloatValue) String() string { return value.Value }

// StringValue represents a value node containing a string.
//
// Reference: https://facebook.github.io/graphql/June2018/#StringValue
type StringValue struct {
	// Value contains the (unescaped) string value.
	Value string

	// Block is true if the value was written as a block string.
	Block bool

	Loc SourceLocation
}

// Location implements Node.
func (value StringValue) Location() SourceLocation { return value.Loc }

// Interface implements Value.
func (value StringValue) Interface() interface{} { return value.Value }

// valueNode implements Value.
func (StringValue) valueNode() {}

// BooleanValue represents a value node containing a boolean.
//
// Reference: https://facebook.github.io/graphql/June2018/#BooleanValue
type BooleanValue struct {
	Value bool

	Loc SourceLocation
}

// Location implements Node.
func (value BooleanValue) Location() SourceLocation { return value.Loc }

// Interface implements Value.
func (value BooleanValue) Interface() interface{} { return value.Value }

// valueNode implements Value.
func (BooleanValue) valueNode() {}

// NullValue represents a value node containing a null.
//
// Reference: https://facebook.github.io/graphql/June2018/#NullValue
type NullValue struct {
	Loc SourceLocation
}

// Location implements Node.
func (value NullValue) Location() SourceLocation { return value.Loc }

// Interface implements Value.
func (value NullValue) Interface() interface{} { return nil }

// valueNode implements Value.
func (NullValue) valueNode() {}

// EnumValue represents a value node containing an enum value name.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumValue
type EnumValue struct {
	// Value contains the name of the enum value.
	Value string

	Loc SourceLocation
}

// Location implements Node.
func (value EnumValue) Location() SourceLocation { return value.Loc }

// Interface implements Value.
func (value EnumValue) Interface() interface{} { return value.Value }

// valueNode implements Value.
func (EnumValue) valueNode() {}

// ListValue represents a value node containing a list of values.
//
// Reference: https://facebook.github.io/graphql/June2018/#ListValue
type ListValue struct {
	Values []Value

	Loc SourceLocation
}

// Location implements Node.
func (value ListValue) Location() SourceLocation { return value.Loc }

// Interface implements Value.
func (value ListValue) Interface() interface{} {
	result := make([]interface{}, len(value.Values))
	for i, v := range value.Values {
		result[i] = v.Interface()
	}
	return result
}

// valueNode implements Value.
func (ListValue) valueNode() {}

// ObjectField is a name-value entry in an ObjectValue.
type ObjectField struct {
	Name  Name
	Value Value
}

// Location implements Node.
func (field ObjectField) Location() SourceLocation { return field.Name.Loc }

// ObjectValue represents a value node containing an input object literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectValue
type ObjectValue struct {
	Fields []ObjectField

	Loc SourceLocation
}

// Location implements Node.
func (value ObjectValue) Location() SourceLocation { return value.Loc }

// Interface implements Value.
func (value ObjectValue) Interface() interface{} {
	result := make(map[string]interface{}, len(value.Fields))
	for _, field := range value.Fields {
		result[field.Name.Value] = field.Value.Interface()
	}
	return result
}

// valueNode implements Value.
func (ObjectValue) valueNode() {}

//===----------------------------------------------------------------------------------------====//
// Type System Definition Nodes
//===----------------------------------------------------------------------------------------====//

// TypeDefinition is the syntax node from which a named type was defined. The type system stores
// these nodes verbatim and never looks inside.
type TypeDefinition interface {
	Node

	// typeDefinitionNode puts a special mark for type definition nodes.
	typeDefinitionNode()
}

// TypeExtension is a syntax node extending a previously defined named type.
type TypeExtension interface {
	Node

	// typeExtensionNode puts a special mark for type extension nodes.
	typeExtensionNode()
}

// ScalarTypeDefinition is the definition node for a scalar type.
type ScalarTypeDefinition struct {
	Name Name
	Loc  SourceLocation
}

// ObjectTypeDefinition is the definition node for an object type.
type ObjectTypeDefinition struct {
	Name Name
	Loc  SourceLocation
}

// InterfaceTypeDefinition is the definition node for an interface type.
type InterfaceTypeDefinition struct {
	Name Name
	Loc  SourceLocation
}

// UnionTypeDefinition is the definition node for a union type.
type UnionTypeDefinition struct {
	Name Name
	Loc  SourceLocation
}

// EnumTypeDefinition is the definition node for an enum type.
type EnumTypeDefinition struct {
	Name Name
	Loc  SourceLocation
}

// InputObjectTypeDefinition is the definition node for an input object type.
type InputObjectTypeDefinition struct {
	Name Name
	Loc  SourceLocation
}

// Location implements Node.
func (def ScalarTypeDefinition) Location() SourceLocation { return def.Loc }

// Location implements Node.
func (def ObjectTypeDefinition) Location() SourceLocation { return def.Loc }

// Location implements Node.
func (def InterfaceTypeDefinition) Location() SourceLocation { return def.Loc }

// Location implements Node.
func (def UnionTypeDefinition) Location() SourceLocation { return def.Loc }

// Location implements Node.
func (def EnumTypeDefinition) Location() SourceLocation { return def.Loc }

// Location implements Node.
func (def InputObjectTypeDefinition) Location() SourceLocation { return def.Loc }

func (ScalarTypeDefinition) typeDefinitionNode()      {}
func (ObjectTypeDefinition) typeDefinitionNode()      {}
func (InterfaceTypeDefinition) typeDefinitionNode()   {}
func (UnionTypeDefinition) typeDefinitionNode()       {}
func (EnumTypeDefinition) typeDefinitionNode()        {}
func (InputObjectTypeDefinition) typeDefinitionNode() {}

// ScalarTypeExtension is the extension node for a scalar type.
type ScalarTypeExtension struct {
	Name Name
	Loc  SourceLocation
}

// ObjectTypeExtension is the extension node for an object type.
type ObjectTypeExtension struct {
	Name Name
	Loc  SourceLocation
}

// InterfaceTypeExtension is the extension node for an interface type.
type InterfaceTypeExtension struct {
	Name Name
	Loc  SourceLocation
}

// UnionTypeExtension is the extension node for a union type.
type UnionTypeExtension struct {
	Name Name
	Loc  SourceLocation
}

// EnumTypeExtension is the extension node for an enum type.
type EnumTypeExtension struct {
	Name Name
	Loc  SourceLocation
}

// InputObjectTypeExtension is the extension node for an input object type.
type InputObjectTypeExtension struct {
	Name Name
	Loc  SourceLocation
}

// Location implements Node.
func (ext ScalarTypeExtension) Location() SourceLocation { return ext.Loc }

// Location implements Node.
func (ext ObjectTypeExtension) Location() SourceLocation { return ext.Loc }

// Location implements Node.
func (ext InterfaceTypeExtension) Location() SourceLocation { return ext.Loc }

// Location implements Node.
func (ext UnionTypeExtension) Location() SourceLocation { return ext.Loc }

// Location implements Node.
func (ext EnumTypeExtension) Location() SourceLocation { return ext.Loc }

// Location implements Node.
func (ext InputObjectTypeExtension) Location() SourceLocation { return ext.Loc }

func (ScalarTypeExtension) typeExtensionNode()      {}
func (ObjectTypeExtension) typeExtensionNode()      {}
func (InterfaceTypeExtension) typeExtensionNode()   {}
func (UnionTypeExtension) typeExtensionNode()       {}
func (EnumTypeExtension) typeExtensionNode()        {}
func (InputObjectTypeExtension) typeExtensionNode() {}

// FieldDefinition is the definition node for a field in an object or interface type.
type FieldDefinition struct {
	Name Name
	Loc  SourceLocation
}

// Location implements Node.
func (def FieldDefinition) Location() SourceLocation { return def.Loc }

// InputValueDefinition is the definition node for an argument or an input object field.
type InputValueDefinition struct {
	Name Name
	Loc  SourceLocation
}

// Location implements Node.
func (def InputValueDefinition) Location() SourceLocation { return def.Loc }

// EnumValueDefinition is the definition node for a value in an enum type.
type EnumValueDefinition struct {
	Name Name
	Loc  SourceLocation
}

// Location implements Node.
func (def EnumValueDefinition) Location() SourceLocation { return def.Loc }

//===----------------------------------------------------------------------------------------====//
// Executable Nodes
//===----------------------------------------------------------------------------------------====//

// Field is the selection node for a field in a request document. The executor threads these
// through ResolveInfo; the type system stores them untouched.
type Field struct {
	// Alias is empty when the field is selected without an alias.
	Alias Name
	Name  Name
	Loc   SourceLocation
}

// Location implements Node.
func (field Field) Location() SourceLocation { return field.Loc }

// ResponseKey returns the key under which the field appears in the response.
func (field Field) ResponseKey() string {
	if len(field.Alias.Value) > 0 {
		return field.Alias.Value
	}
	return field.Name.Value
}

// OperationDefinition names an operation in a request document.
type OperationDefinition struct {
	// Operation is one of "query", "mutation" or "subscription".
	Operation string
	Name      Name
	Loc       SourceLocation
}

// Location implements Node.
func (def OperationDefinition) Location() SourceLocation { return def.Loc }

// FragmentDefinition names a fragment in a request document.
type FragmentDefinition struct {
	Name Name
	Loc  SourceLocation
}

// Location implements Node.
func (def FragmentDefinition) Location() SourceLocation { return def.Loc }
