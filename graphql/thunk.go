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
	"sync"
)

// Thunk cells let a type definition refer to types that are not constructed yet. A config field
// that accepts a thunk defers evaluation until the corresponding accessor is first called, by
// which time every type participating in the cycle exists. The cell evaluates its producer at
// most once; both the produced value and any produced error are latched, so later mutation of
// whatever environment the producer closed over has no effect.
type lazy[T any] struct {
	once  sync.Once
	value T
	err   error
}

// resolve runs produce on first call and returns the latched result on every call. Concurrent
// callers block until the winning call completes, per sync.Once semantics.
func (cell *lazy[T]) resolve(produce func() (T, error)) (T, error) {
	cell.once.Do(func() {
		cell.value, cell.err = produce()
	})
	return cell.value, cell.err
}

// The provider interfaces below seal "value or thunk" config fields into a two-case variant.
// Every provider is satisfied by exactly two types: the plain value, for definitions with no
// forward references, and a thunk function whose body is deferred until the owning type first
// resolves the corresponding accessor.

// FieldsProvider supplies the field definitions of an Object or Interface, either eagerly
// (Fields) or lazily (FieldsThunk).
type FieldsProvider interface {
	provideFields() Fields
}

// FieldsThunk supplies a field list lazily so fields may reference types that participate in a
// cycle with their owner.
type FieldsThunk func() Fields

func (f FieldsThunk) provideFields() Fields { return f() }

// InterfacesProvider supplies the interfaces implemented by an Object, either eagerly
// (InterfaceList) or lazily (InterfacesThunk).
type InterfacesProvider interface {
	provideInterfaces() []*Interface
}

// InterfaceList is an eager list of interfaces implemented by an Object.
type InterfaceList []*Interface

func (l InterfaceList) provideInterfaces() []*Interface { return l }

// InterfacesThunk supplies the interface list of an Object lazily.
type InterfacesThunk func() []*Interface

func (f InterfacesThunk) provideInterfaces() []*Interface { return f() }

// PossibleTypesProvider supplies the member types of an Union, either eagerly (PossibleTypes) or
// lazily (PossibleTypesThunk).
type PossibleTypesProvider interface {
	providePossibleTypes() []*Object
}

// PossibleTypes is an eager list of the member types of an Union.
type PossibleTypes []*Object

func (l PossibleTypes) providePossibleTypes() []*Object { return l }

// PossibleTypesThunk supplies the member list of an Union lazily.
type PossibleTypesThunk func() []*Object

func (f PossibleTypesThunk) providePossibleTypes() []*Object { return f() }

// InputFieldsProvider supplies the field definitions of an InputObject, either eagerly
// (InputFields) or lazily (InputFieldsThunk).
type InputFieldsProvider interface {
	provideInputFields() InputFields
}

// InputFieldsThunk supplies an input object field list lazily.
type InputFieldsThunk func() InputFields

func (f InputFieldsThunk) provideInputFields() InputFields { return f() }
