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

// Every named type can be lowered back into a config that, fed to the corresponding constructor,
// yields a type indistinguishable from the original. Lazy definitions are forced in the process;
// the returned config carries eager, already-normalized lists in their original order. Defaults
// round-trip exactly, including the explicit-null sentinel.

// ToConfig returns a config equivalent to the one the Scalar was defined from.
func (scalar *Scalar) ToConfig() ScalarConfig {
	return scalar.config
}

// ToConfig returns a config equivalent to the one the Enum was defined from. Value configs carry
// the effective internal value, so a name-backed value reads back as its name string.
func (enum *Enum) ToConfig() EnumConfig {
	values := make([]EnumValueConfig, len(enum.values))
	for i, value := range enum.values {
		internal := value.value
		if internal == nil {
			internal = NilEnumInternalValue
		}
		values[i] = EnumValueConfig{
			Name:        value.name,
			Description: value.description,
			Value:       internal,
			Deprecation: value.deprecation,
			Extensions:  value.extensions,
		}
	}
	return EnumConfig{
		Name:           enum.name,
		Description:    enum.description,
		Values:         values,
		Extensions:     enum.extensions,
		Definition:     enum.definition,
		ExtensionNodes: enum.extNodes,
	}
}

// ToConfig returns a config equivalent to the one the Object was defined from, forcing its field
// and interface definitions.
func (object *Object) ToConfig() (ObjectConfig, error) {
	fields, err := object.Fields()
	if err != nil {
		return ObjectConfig{}, err
	}
	ifaces, err := object.Interfaces()
	if err != nil {
		return ObjectConfig{}, err
	}

	config := ObjectConfig{
		Name:           object.config.Name,
		Description:    object.config.Description,
		Extensions:     object.config.Extensions,
		Definition:     object.config.Definition,
		ExtensionNodes: object.config.ExtensionNodes,
	}
	if fields != nil {
		config.Fields = fieldConfigsOf(fields)
	}
	if ifaces != nil {
		config.Interfaces = InterfaceList(ifaces)
	}
	return config, nil
}

// ToConfig returns a config equivalent to the one the Interface was defined from, forcing its
// field definitions.
func (iface *Interface) ToConfig() (InterfaceConfig, error) {
	fields, err := iface.Fields()
	if err != nil {
		return InterfaceConfig{}, err
	}

	config := InterfaceConfig{
		Name:           iface.config.Name,
		Description:    iface.config.Description,
		TypeResolver:   iface.config.TypeResolver,
		Extensions:     iface.config.Extensions,
		Definition:     iface.config.Definition,
		ExtensionNodes: iface.config.ExtensionNodes,
	}
	if fields != nil {
		config.Fields = fieldConfigsOf(fields)
	}
	return config, nil
}

// ToConfig returns a config equivalent to the one the Union was defined from, forcing its member
// list.
func (union *Union) ToConfig() (UnionConfig, error) {
	members, err := union.PossibleTypes()
	if err != nil {
		return UnionConfig{}, err
	}

	config := UnionConfig{
		Name:           union.config.Name,
		Description:    union.config.Description,
		TypeResolver:   union.config.TypeResolver,
		Extensions:     union.config.Extensions,
		Definition:     union.config.Definition,
		ExtensionNodes: union.config.ExtensionNodes,
	}
	if members != nil {
		config.PossibleTypes = PossibleTypes(members)
	}
	return config, nil
}

// ToConfig returns a config equivalent to the one the InputObject was defined from, forcing its
// field definitions.
func (io *InputObject) ToConfig() (InputObjectConfig, error) {
	fields, err := io.Fields()
	if err != nil {
		return InputObjectConfig{}, err
	}

	config := InputObjectConfig{
		Name:           io.config.Name,
		Description:    io.config.Description,
		Extensions:     io.config.Extensions,
		Definition:     io.config.Definition,
		ExtensionNodes: io.config.ExtensionNodes,
	}
	if fields != nil {
		inputFields := make(InputFields, len(fields))
		for i, field := range fields {
			inputFields[i] = InputFieldConfig{
				Name:         field.name,
				Description:  field.description,
				Type:         field.ttype,
				DefaultValue: field.rawDefaultValue(),
				Extensions:   field.extensions,
			}
		}
		config.Fields = inputFields
	}
	return config, nil
}

func fieldConfigsOf(fields FieldList) Fields {
	configs := make(Fields, len(fields))
	for i, field := range fields {
		configs[i] = FieldConfig{
			Name:        field.name,
			Description: field.description,
			Type:        field.ttype,
			Args:        argumentConfigsOf(field.args),
			Resolver:    field.resolver,
			Subscriber:  field.subscriber,
			Deprecation: field.deprecation,
			Extensions:  field.extensions,
		}
	}
	return configs
}

func argumentConfigsOf(args []Argument) []ArgumentConfig {
	if len(args) == 0 {
		return nil
	}
	configs := make([]ArgumentConfig, len(args))
	for i := range args {
		arg := &args[i]
		configs[i] = ArgumentConfig{
			Name:         arg.name,
			Description:  arg.description,
			Type:         arg.ttype,
			DefaultValue: arg.rawDefaultValue(),
			Extensions:   arg.extensions,
		}
	}
	return configs
}
