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

// Fields is an ordered list of field definitions to be given to an ObjectConfig or an
// InterfaceConfig. The order in which fields appear here is the order in which they are reported
// by the built type; it is never sorted.
type Fields []FieldConfig

func (f Fields) provideFields() Fields { return f }

// FieldConfig describes one output field of an Object or Interface under construction.
type FieldConfig struct {
	// Name of the field
	Name string

	// Description of the field
	Description string

	// Type of value yielded by the field
	Type Type

	// Args is an ordered list of arguments accepted by the field.
	Args []ArgumentConfig

	// Resolver resolves the field value during execution. When nil, the execution layer applies
	// its default resolution strategy.
	Resolver FieldResolver

	// Subscriber produces the source event stream when the field belongs to the subscription
	// root type. It is ignored elsewhere.
	Subscriber SubscriptionSourcer

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation *Deprecation

	// Extensions is stored verbatim and returned from Field.Extensions.
	Extensions Extensions
}

// ArgumentConfig describes one argument accepted by a field or a directive.
type ArgumentConfig struct {
	// Name of the argument
	Name string

	// Description of the argument
	Description string

	// Type of the value that can be given to the argument
	Type Type

	// DefaultValue specifies the value to be assigned to the argument when no value is provided.
	// The zero value (untyped nil) means "no default"; assign NilArgumentDefaultValue to make null
	// the default.
	DefaultValue interface{}

	// Extensions is stored verbatim and returned from Argument.Extensions.
	Extensions Extensions
}

// NilArgumentDefaultValue is a special value for ArgumentConfig.DefaultValue to indicate that the
// argument defaults to null. This is required because an untyped nil DefaultValue already means
// "the argument has no default".
var NilArgumentDefaultValue interface{} = nilDefaultValue{}

// nilDefaultValue marks an explicit null default on an argument or an input field.
type nilDefaultValue struct{}

// Field is a normalized field definition owned by an Object or an Interface.
type Field struct {
	name        string
	description string
	ttype       Type
	args        []Argument
	resolver    FieldResolver
	subscriber  SubscriptionSourcer
	deprecation *Deprecation
	extensions  Extensions
}

// Name of the field
func (field *Field) Name() string {
	return field.name
}

// Description of the field
func (field *Field) Description() string {
	return field.description
}

// Type of value yielded by the field
func (field *Field) Type() Type {
	return field.ttype
}

// Args returns the arguments the field accepts, in definition order. The returned slice is owned
// by the field and must not be modified.
func (field *Field) Args() []Argument {
	return field.args
}

// Resolver returns the field resolver, or nil when none was configured.
func (field *Field) Resolver() FieldResolver {
	return field.resolver
}

// Subscriber returns the subscription sourcer, or nil when none was configured.
func (field *Field) Subscriber() SubscriptionSourcer {
	return field.subscriber
}

// Deprecation is non-nil when the field is tagged as deprecated.
func (field *Field) Deprecation() *Deprecation {
	return field.deprecation
}

// IsDeprecated returns true if the field is tagged as deprecated.
func (field *Field) IsDeprecated() bool {
	return field.deprecation.Defined()
}

// Extensions returns the metadata attached to the field definition.
func (field *Field) Extensions() Extensions {
	return field.extensions
}

// FieldList is an ordered list of normalized fields.
type FieldList []*Field

// Lookup finds the field with the given name, or returns nil. Field counts are small so a linear
// scan beats a side map.
func (fields FieldList) Lookup(name string) *Field {
	for _, field := range fields {
		if field.name == name {
			return field
		}
	}
	return nil
}

// Argument is a normalized argument definition owned by a field.
type Argument struct {
	name         string
	description  string
	ttype        Type
	defaultValue interface{}
	extensions   Extensions
}

// Name of the argument
func (arg *Argument) Name() string {
	return arg.name
}

// Description of the argument
func (arg *Argument) Description() string {
	return arg.description
}

// Type of the value that can be given to the argument
func (arg *Argument) Type() Type {
	return arg.ttype
}

// HasDefaultValue returns true if a default value was configured for the argument, including an
// explicit null default.
func (arg *Argument) HasDefaultValue() bool {
	return arg.defaultValue != nil
}

// DefaultValue returns the default value for the argument. A null default reads as nil, the same
// as no default; use HasDefaultValue to distinguish the two.
func (arg *Argument) DefaultValue() interface{} {
	if _, ok := arg.defaultValue.(nilDefaultValue); ok {
		return nil
	}
	return arg.defaultValue
}

// rawDefaultValue exposes the stored default including the null sentinel, for config round-trip.
func (arg *Argument) rawDefaultValue() interface{} {
	return arg.defaultValue
}

// Extensions returns the metadata attached to the argument definition.
func (arg *Argument) Extensions() Extensions {
	return arg.extensions
}

// IsRequired returns true if the caller must supply a value for the argument: its type is
// Non-Null and no default was configured. A Non-Null argument with a default (even a zero one) is
// not required, nor is any nullable argument.
//
// Reference: https://facebook.github.io/graphql/draft/#sec-Required-Arguments
func (arg *Argument) IsRequired() bool {
	return IsNonNullType(arg.ttype) && !arg.HasDefaultValue()
}

// buildFields normalizes field configs into a FieldList for the named owner type. It verifies
// names, rejects duplicates, and requires every field type to be an output type.
func buildFields(configs Fields, owner string) (FieldList, error) {
	if len(configs) == 0 {
		return nil, nil
	}

	fields := make(FieldList, 0, len(configs))
	for _, config := range configs {
		if err := checkName("field", config.Name); err != nil {
			return nil, err
		}
		if fields.Lookup(config.Name) != nil {
			return nil, newValidationError(
				"%s must not contain duplicate field %q.", owner, config.Name)
		}
		if config.Type == nil || !IsOutputType(config.Type) {
			return nil, newValidationError(
				"The type of %s.%s must be Output Type but got: %s.",
				owner, config.Name, Inspect(config.Type))
		}

		args, err := buildArguments(config.Args, owner, config.Name)
		if err != nil {
			return nil, err
		}

		fields = append(fields, &Field{
			name:        config.Name,
			description: config.Description,
			ttype:       config.Type,
			args:        args,
			resolver:    config.Resolver,
			subscriber:  config.Subscriber,
			deprecation: config.Deprecation,
			extensions:  config.Extensions,
		})
	}
	return fields, nil
}

// buildArguments normalizes argument configs for the field owner.fieldName.
func buildArguments(configs []ArgumentConfig, owner string, fieldName string) ([]Argument, error) {
	if len(configs) == 0 {
		return nil, nil
	}

	args := make([]Argument, 0, len(configs))
	for _, config := range configs {
		if err := checkName("argument", config.Name); err != nil {
			return nil, err
		}
		for i := range args {
			if args[i].name == config.Name {
				return nil, newValidationError(
					"%s.%s must not contain duplicate argument %q.", owner, fieldName, config.Name)
			}
		}
		if config.Type == nil || !IsInputType(config.Type) {
			return nil, newValidationError(
				"The type of %s.%s(%s:) must be Input Type but got: %s.",
				owner, fieldName, config.Name, Inspect(config.Type))
		}

		args = append(args, Argument{
			name:         config.Name,
			description:  config.Description,
			ttype:        config.Type,
			defaultValue: config.DefaultValue,
			extensions:   config.Extensions,
		})
	}
	return args, nil
}
