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
	"reflect"

	"github.com/quiverhq/quiver/graphql/ast"
	"github.com/quiverhq/quiver/internal/util"
)

// EnumValueConfig describes one value of an Enum type under construction.
type EnumValueConfig struct {
	// Name of the enum value as it appears on the wire
	Name string

	// Description of the enum value
	Description string

	// Value is the internal representation backing the name. When nil, the name string itself is
	// used; assign NilEnumInternalValue to back the name with nil.
	Value interface{}

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *Deprecation

	// Extensions is stored verbatim and returned from EnumValue.Extensions.
	Extensions Extensions
}

// EnumConfig provides the specification to define an Enum type. Values keep their definition
// order in every place the built type reports them.
type EnumConfig struct {
	// Name of the defining Enum type
	Name string

	// Description of the Enum type
	Description string

	// Values is the ordered list of possible values.
	Values []EnumValueConfig

	// Extensions is stored verbatim and returned from Enum.Extensions.
	Extensions Extensions

	// Definition is the syntax node the type was defined from, if any.
	Definition ast.TypeDefinition

	// ExtensionNodes are the syntax nodes which extended the definition, if any.
	ExtensionNodes []ast.TypeExtension
}

// NilEnumInternalValue is a special value for EnumValueConfig.Value to make nil the internal
// representation of a name. This is required because an untyped nil Value already means "back the
// name with the name string itself".
var NilEnumInternalValue interface{} = nilEnumInternalValue{}

type nilEnumInternalValue struct{}

// EnumValue is a normalized value definition owned by an Enum.
type EnumValue struct {
	name        string
	description string
	value       interface{}
	deprecation *Deprecation
	extensions  Extensions
}

// Name of the enum value as it appears on the wire
func (value *EnumValue) Name() string {
	return value.name
}

// Description of the enum value
func (value *EnumValue) Description() string {
	return value.description
}

// Value returns the internal representation backing the name.
func (value *EnumValue) Value() interface{} {
	return value.value
}

// Deprecation is non-nil when the value is tagged as deprecated.
func (value *EnumValue) Deprecation() *Deprecation {
	return value.deprecation
}

// IsDeprecated returns true if the value is tagged as deprecated.
func (value *EnumValue) IsDeprecated() bool {
	return value.deprecation.Defined()
}

// Extensions returns the metadata attached to the value definition.
func (value *EnumValue) Extensions() Extensions {
	return value.extensions
}

// Enum is a leaf type whose possible values form a fixed, named set. On the wire a value travels
// as its name; internally each name is backed by an arbitrary Go value.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Enums
type Enum struct {
	name        string
	description string
	extensions  Extensions
	definition  ast.TypeDefinition
	extNodes    []ast.TypeExtension

	// values in definition order
	values []*EnumValue

	// nameLookup finds a value from its wire name.
	nameLookup map[string]*EnumValue

	// valueLookup finds a value from its internal representation. Only comparable internal values
	// are indexed; when two names share an internal value the first definition wins. Values with
	// uncomparable internal representations are found by an ordered scan instead.
	valueLookup     map[interface{}]*EnumValue
	hasUncomparable bool
}

var (
	_ Type      = (*Enum)(nil)
	_ LeafType  = (*Enum)(nil)
	_ NamedType = (*Enum)(nil)
)

// NewEnum defines an Enum type from the given config.
func NewEnum(config EnumConfig) (*Enum, error) {
	if err := checkName("Enum", config.Name); err != nil {
		return nil, err
	}

	enum := &Enum{
		name:        config.Name,
		description: config.Description,
		extensions:  config.Extensions,
		definition:  config.Definition,
		extNodes:    config.ExtensionNodes,
		values:      make([]*EnumValue, 0, len(config.Values)),
		nameLookup:  make(map[string]*EnumValue, len(config.Values)),
		valueLookup: make(map[interface{}]*EnumValue, len(config.Values)),
	}

	for _, valueConfig := range config.Values {
		if err := checkName("enum value", valueConfig.Name); err != nil {
			return nil, err
		}
		switch valueConfig.Name {
		case "true", "false", "null":
			return nil, newValidationError(
				"Enum type %s cannot include value: %s.", config.Name, valueConfig.Name)
		}
		if _, exists := enum.nameLookup[valueConfig.Name]; exists {
			return nil, newValidationError(
				"Enum type %s can include value %s only once.", config.Name, valueConfig.Name)
		}

		internal := valueConfig.Value
		if internal == nil {
			internal = valueConfig.Name
		} else if _, isNil := internal.(nilEnumInternalValue); isNil {
			internal = nil
		}

		value := &EnumValue{
			name:        valueConfig.Name,
			description: valueConfig.Description,
			value:       internal,
			deprecation: valueConfig.Deprecation,
			extensions:  valueConfig.Extensions,
		}
		enum.values = append(enum.values, value)
		enum.nameLookup[valueConfig.Name] = value

		if internal == nil || reflect.TypeOf(internal).Comparable() {
			// First definition wins when two names share an internal value. A nil interface is a
			// valid map key.
			if _, exists := enum.valueLookup[internal]; !exists {
				enum.valueLookup[internal] = value
			}
		} else {
			enum.hasUncomparable = true
		}
	}

	return enum, nil
}

// MustNewEnum is a panic-on-fail version of NewEnum.
func MustNewEnum(config EnumConfig) *Enum {
	enum, err := NewEnum(config)
	if err != nil {
		panic(err)
	}
	return enum
}

// graphqlType implements Type.
func (*Enum) graphqlType() {}

// graphqlLeafType implements LeafType.
func (*Enum) graphqlLeafType() {}

// graphqlNamedType implements NamedType.
func (*Enum) graphqlNamedType() {}

// Name implements TypeWithName.
func (enum *Enum) Name() string {
	return enum.name
}

// Description implements TypeWithDescription.
func (enum *Enum) Description() string {
	return enum.description
}

// String implements fmt.Stringer.
func (enum *Enum) String() string {
	return enum.name
}

// Extensions returns the metadata attached to the type definition.
func (enum *Enum) Extensions() Extensions {
	return enum.extensions
}

// TypeDefinitionNode implements NamedType.
func (enum *Enum) TypeDefinitionNode() ast.TypeDefinition {
	return enum.definition
}

// TypeExtensionNodes implements NamedType.
func (enum *Enum) TypeExtensionNodes() []ast.TypeExtension {
	return enum.extNodes
}

// Values returns the possible values in definition order. The returned slice is owned by the enum
// and must not be modified.
func (enum *Enum) Values() []*EnumValue {
	return enum.values
}

// Value finds a value definition from its wire name, or returns nil.
func (enum *Enum) Value(name string) *EnumValue {
	return enum.nameLookup[name]
}

// lookupByValue finds the value definition backing the given internal value. Comparable values
// hit the index; the ordered scan covers internal values that cannot be map keys.
func (enum *Enum) lookupByValue(value interface{}) *EnumValue {
	if value == nil {
		return enum.valueLookup[nil]
	}
	if reflect.TypeOf(value).Comparable() {
		if match := enum.valueLookup[value]; match != nil {
			return match
		}
		return nil
	}
	if enum.hasUncomparable {
		for _, candidate := range enum.values {
			if reflect.DeepEqual(candidate.value, value) {
				return candidate
			}
		}
	}
	return nil
}

// Serialize implements LeafType. It maps an internal value back to its wire name.
func (enum *Enum) Serialize(value interface{}) (interface{}, error) {
	if match := enum.lookupByValue(value); match != nil {
		return match.name, nil
	}
	return nil, NewCoercionError(
		"Enum %q cannot represent value: %s", enum.name, Inspect(value))
}

// ParseValue implements LeafType. It maps a wire name given as a request variable to the internal
// value.
func (enum *Enum) ParseValue(value interface{}) (interface{}, error) {
	name, ok := value.(string)
	if !ok {
		valueStr := Inspect(value)
		return nil, NewCoercionError(
			"Enum %q cannot represent non-string value: %s.%s",
			enum.name, valueStr, didYouMean("the enum value", enum.suggestValues(valueStr)))
	}

	match := enum.nameLookup[name]
	if match == nil {
		return nil, NewCoercionError(
			`Value "%s" does not exist in %q enum.%s`,
			name, enum.name, didYouMean("the enum value", enum.suggestValues(name)))
	}
	return match.value, nil
}

// ParseLiteral implements LeafType. The node must be an enum literal; notably a string literal is
// rejected with a pointed suggestion since that mix-up is common.
func (enum *Enum) ParseLiteral(value ast.Value, variables VariableValues) (interface{}, error) {
	if variable, ok := value.(ast.Variable); ok {
		varValue, ok := variables.Lookup(variable.Name.Value)
		if !ok {
			return nil, NewCoercionErrorWithLocation(
				ErrorLocationOfASTNode(variable),
				"Variable %q is not provided for enum %q.", "$"+variable.Name.Value, enum.name)
		}
		return enum.ParseValue(varValue)
	}

	enumNode, ok := value.(ast.EnumValue)
	if !ok {
		valueStr := ast.Print(value)
		return nil, NewCoercionErrorWithLocation(
			ErrorLocationOfASTNode(value),
			"Enum %q cannot represent non-enum value: %s.%s",
			enum.name, valueStr, didYouMean("the enum value", enum.suggestValues(valueStr)))
	}

	match := enum.nameLookup[enumNode.Value]
	if match == nil {
		return nil, NewCoercionErrorWithLocation(
			ErrorLocationOfASTNode(enumNode),
			`Value "%s" does not exist in %q enum.%s`,
			enumNode.Value, enum.name, didYouMean("the enum value", enum.suggestValues(enumNode.Value)))
	}
	return match.value, nil
}

// suggestValues ranks the value names closest to the unknown input.
func (enum *Enum) suggestValues(input string) []string {
	names := make([]string, len(enum.values))
	for i, value := range enum.values {
		names[i] = value.name
	}
	return util.SuggestionList(input, names)
}
