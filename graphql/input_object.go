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

// InputFields is an ordered list of field definitions to be given to an InputObjectConfig.
// Unlike FieldConfig there is structurally no resolver here; input fields carry data into the
// request and have nothing to resolve.
type InputFields []InputFieldConfig

func (f InputFields) provideInputFields() InputFields { return f }

// InputFieldConfig describes one field of an InputObject under construction.
type InputFieldConfig struct {
	// Name of the field
	Name string

	// Description of the field
	Description string

	// Type of the field value
	Type Type

	// DefaultValue specifies the value assigned to the field when the input omits it. The zero
	// value (untyped nil) means "no default"; assign NilInputFieldDefaultValue to make null the
	// default.
	DefaultValue interface{}

	// Extensions is stored verbatim and returned from InputField.Extensions.
	Extensions Extensions
}

// NilInputFieldDefaultValue is a special value for InputFieldConfig.DefaultValue to indicate that
// the field defaults to null.
var NilInputFieldDefaultValue interface{} = nilDefaultValue{}

// InputField is a normalized field definition owned by an InputObject.
type InputField struct {
	name         string
	description  string
	ttype        Type
	defaultValue interface{}
	extensions   Extensions
}

// Name of the field
func (field *InputField) Name() string {
	return field.name
}

// Description of the field
func (field *InputField) Description() string {
	return field.description
}

// Type of the field value
func (field *InputField) Type() Type {
	return field.ttype
}

// HasDefaultValue returns true if a default value was configured for the field, including an
// explicit null default.
func (field *InputField) HasDefaultValue() bool {
	return field.defaultValue != nil
}

// DefaultValue returns the default value for the field. A null default reads as nil, the same as
// no default; use HasDefaultValue to distinguish the two.
func (field *InputField) DefaultValue() interface{} {
	if _, ok := field.defaultValue.(nilDefaultValue); ok {
		return nil
	}
	return field.defaultValue
}

// rawDefaultValue exposes the stored default including the null sentinel, for config round-trip.
func (field *InputField) rawDefaultValue() interface{} {
	return field.defaultValue
}

// Extensions returns the metadata attached to the field definition.
func (field *InputField) Extensions() Extensions {
	return field.extensions
}

// IsRequired returns true if the input must supply a value for the field: its type is Non-Null
// and no default was configured.
func (field *InputField) IsRequired() bool {
	return IsNonNullType(field.ttype) && !field.HasDefaultValue()
}

// InputFieldList is an ordered list of normalized input fields.
type InputFieldList []*InputField

// Lookup finds the field with the given name, or returns nil.
func (fields InputFieldList) Lookup(name string) *InputField {
	for _, field := range fields {
		if field.name == name {
			return field
		}
	}
	return nil
}

// InputObjectConfig provides the specification to define an InputObject type.
type InputObjectConfig struct {
	// Name of the defining InputObject type
	Name string

	// Description of the InputObject type
	Description string

	// Fields of the InputObject, in the order they should be reported
	Fields InputFieldsProvider

	// Extensions is stored verbatim and returned from InputObject.Extensions.
	Extensions Extensions

	// Definition is the syntax node the type was defined from, if any.
	Definition ast.TypeDefinition

	// ExtensionNodes are the syntax nodes which extended the definition, if any.
	ExtensionNodes []ast.TypeExtension
}

// InputObject is a composite input type: a collection of named input fields carrying structured
// data into a request.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Input-Objects
type InputObject struct {
	config InputObjectConfig
	fields lazy[InputFieldList]
}

var (
	_ Type      = (*InputObject)(nil)
	_ NamedType = (*InputObject)(nil)
)

// NewInputObject defines an InputObject type from the given config.
func NewInputObject(config InputObjectConfig) (*InputObject, error) {
	if err := checkName("Input Object", config.Name); err != nil {
		return nil, err
	}
	return &InputObject{config: config}, nil
}

// MustNewInputObject is a panic-on-fail version of NewInputObject.
func MustNewInputObject(config InputObjectConfig) *InputObject {
	inputObject, err := NewInputObject(config)
	if err != nil {
		panic(err)
	}
	return inputObject
}

// graphqlType implements Type.
func (*InputObject) graphqlType() {}

// graphqlNamedType implements NamedType.
func (*InputObject) graphqlNamedType() {}

// Name implements TypeWithName.
func (io *InputObject) Name() string {
	return io.config.Name
}

// Description implements TypeWithDescription.
func (io *InputObject) Description() string {
	return io.config.Description
}

// String implements fmt.Stringer.
func (io *InputObject) String() string {
	return io.config.Name
}

// Extensions returns the metadata attached to the type definition.
func (io *InputObject) Extensions() Extensions {
	return io.config.Extensions
}

// TypeDefinitionNode implements NamedType.
func (io *InputObject) TypeDefinitionNode() ast.TypeDefinition {
	return io.config.Definition
}

// TypeExtensionNodes implements NamedType.
func (io *InputObject) TypeExtensionNodes() []ast.TypeExtension {
	return io.config.ExtensionNodes
}

// Fields returns the fields of the InputObject in definition order. The first call normalizes
// the configured fields; the result, including any error, is computed once and reused.
func (io *InputObject) Fields() (InputFieldList, error) {
	return io.fields.resolve(func() (InputFieldList, error) {
		provider := io.config.Fields
		if provider == nil {
			return nil, nil
		}
		return buildInputFields(provider.provideInputFields(), io.config.Name)
	})
}

// buildInputFields normalizes input field configs for the named owner type.
func buildInputFields(configs InputFields, owner string) (InputFieldList, error) {
	if len(configs) == 0 {
		return nil, nil
	}

	fields := make(InputFieldList, 0, len(configs))
	for _, config := range configs {
		if err := checkName("input field", config.Name); err != nil {
			return nil, err
		}
		if fields.Lookup(config.Name) != nil {
			return nil, newValidationError(
				"%s must not contain duplicate field %q.", owner, config.Name)
		}
		if config.Type == nil || !IsInputType(config.Type) {
			return nil, newValidationError(
				"The type of %s.%s must be Input Type but got: %s.",
				owner, config.Name, Inspect(config.Type))
		}

		fields = append(fields, &InputField{
			name:         config.Name,
			description:  config.Description,
			ttype:        config.Type,
			defaultValue: config.DefaultValue,
			extensions:   config.Extensions,
		})
	}
	return fields, nil
}
