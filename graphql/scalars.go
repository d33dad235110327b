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
	"math"
	"strconv"

	"github.com/quiverhq/quiver/graphql/ast"
)

// The "type of internal value" for each built-in scalar is fixed as follows,
//
// +--------------+---------------------------------+
// | GraphQL Type | Go Type ("internal value type") |
// +--------------+---------------------------------+
// | Int          | int                             |
// | Float        | float64                         |
// | String       | string                          |
// | Boolean      | bool                            |
// | ID           | string                          |
// +--------------+---------------------------------+
//
// That is, the underlying value behind the interface{} returned from ParseValue and ParseLiteral
// is always of the listed type. When you receive an Int argument you can expect an "int", not
// int32 or others.

//===-----------------------------------------------------------------------------------------===//
// Int
//===-----------------------------------------------------------------------------------------===//

// intCoercer implements input coercion and result coercion for the Int type.
type intCoercer struct{}

var (
	_ ScalarResultCoercer = intCoercer{}
	_ ScalarInputCoercer  = intCoercer{}
)

// intFromInt64 range-checks an integer against the 32-bit bound required by the type.
func intFromInt64(value int64, source interface{}) (interface{}, error) {
	if value < math.MinInt32 || value > math.MaxInt32 {
		return nil, NewCoercionError(
			"Int cannot represent non 32-bit signed integer value: %s", Inspect(source))
	}
	return int(value), nil
}

// CoerceResultValue implements ScalarResultCoercer. Result coercion is lenient: booleans and
// numeric strings map onto integers the way most transports produce them.
func (intCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case int:
		return intFromInt64(int64(v), value)
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return intFromInt64(v, value)
	case uint:
		return intFromInt64(int64(v), value)
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return intFromInt64(int64(v), value)
	case uint64:
		if v > math.MaxInt32 {
			return nil, NewCoercionError(
				"Int cannot represent non 32-bit signed integer value: %s", Inspect(value))
		}
		return int(v), nil
	case float32:
		return intCoercer{}.coerceFloat(float64(v), value)
	case float64:
		return intCoercer{}.coerceFloat(v, value)
	case string:
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intFromInt64(parsed, value)
		}
	}
	return nil, NewCoercionError("Int cannot represent non-integer value: %s", Inspect(value))
}

func (intCoercer) coerceFloat(v float64, source interface{}) (interface{}, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, NewCoercionError(
			"Int cannot represent non-integer value: %s", Inspect(source))
	}
	return intFromInt64(int64(v), source)
}

// CoerceVariableValue implements ScalarInputCoercer. Input coercion accepts integer numbers only;
// booleans and strings are rejected even when they read as numbers.
func (intCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case int:
		return intFromInt64(int64(v), value)
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return intFromInt64(v, value)
	case uint:
		return intFromInt64(int64(v), value)
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return intFromInt64(int64(v), value)
	case uint64:
		if v > math.MaxInt32 {
			return nil, NewCoercionError(
				"Int cannot represent non 32-bit signed integer value: %s", Inspect(value))
		}
		return int(v), nil
	case float32:
		// Standard JSON decoding yields float64 for every number, so integral floats pass.
		return intCoercer{}.coerceFloat(float64(v), value)
	case float64:
		return intCoercer{}.coerceFloat(v, value)
	}
	return nil, NewCoercionError("Int cannot represent non-integer value: %s", Inspect(value))
}

// CoerceLiteralValue implements ScalarInputCoercer.
func (intCoercer) CoerceLiteralValue(value ast.Value) (interface{}, error) {
	node, ok := value.(ast.IntValue)
	if !ok {
		return nil, NewCoercionErrorWithLocation(
			ErrorLocationOfASTNode(value),
			"Int cannot represent non-integer value: %s", ast.Print(value))
	}
	parsed, err := node.Int32Value()
	if err != nil {
		return nil, NewCoercionErrorWithLocation(
			ErrorLocationOfASTNode(node),
			"Int cannot represent non 32-bit signed integer value: %s", node.Value)
	}
	return int(parsed), nil
}

// Int is the built-in scalar for signed 32-bit numeric non-fractional values.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Int
var Int = MustNewScalar(ScalarConfig{
	Name: "Int",
	Description: "The `Int` scalar type represents non-fractional signed whole numeric values. " +
		"Int can represent values between -(2^31) and 2^31 - 1.",
	ResultCoercer: intCoercer{},
	InputCoercer:  intCoercer{},
})

//===-----------------------------------------------------------------------------------------===//
// Float
//===-----------------------------------------------------------------------------------------===//

// floatCoercer implements input coercion and result coercion for the Float type.
type floatCoercer struct{}

var (
	_ ScalarResultCoercer = floatCoercer{}
	_ ScalarInputCoercer  = floatCoercer{}
)

func floatFromFloat64(v float64, source interface{}) (interface{}, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, NewCoercionError(
			"Float cannot represent non numeric value: %s", Inspect(source))
	}
	return v, nil
}

// CoerceResultValue implements ScalarResultCoercer.
func (floatCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return float64(1), nil
		}
		return float64(0), nil
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return floatFromFloat64(parsed, value)
		}
	default:
		if f, ok := floatValueOf(value); ok {
			return floatFromFloat64(f, value)
		}
	}
	return nil, NewCoercionError("Float cannot represent non numeric value: %s", Inspect(value))
}

// CoerceVariableValue implements ScalarInputCoercer.
func (floatCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	if f, ok := floatValueOf(value); ok {
		return floatFromFloat64(f, value)
	}
	return nil, NewCoercionError("Float cannot represent non numeric value: %s", Inspect(value))
}

// CoerceLiteralValue implements ScalarInputCoercer.
func (floatCoercer) CoerceLiteralValue(value ast.Value) (interface{}, error) {
	switch node := value.(type) {
	case ast.IntValue:
		parsed, err := strconv.ParseFloat(node.Value, 64)
		if err == nil {
			return parsed, nil
		}
	case ast.FloatValue:
		parsed, err := node.FloatValue()
		if err == nil {
			return parsed, nil
		}
	}
	return nil, NewCoercionErrorWithLocation(
		ErrorLocationOfASTNode(value),
		"Float cannot represent non numeric value: %s", ast.Print(value))
}

// floatValueOf widens any Go numeric value to a float64.
func floatValueOf(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// Float is the built-in scalar for signed double-precision fractional values.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Float
var Float = MustNewScalar(ScalarConfig{
	Name: "Float",
	Description: "The `Float` scalar type represents signed double-precision fractional values " +
		"as specified by [IEEE 754](https://en.wikipedia.org/wiki/IEEE_floating_point).",
	ResultCoercer: floatCoercer{},
	InputCoercer:  floatCoercer{},
})

//===-----------------------------------------------------------------------------------------===//
// String
//===-----------------------------------------------------------------------------------------===//

// stringCoercer implements input coercion and result coercion for the String type.
type stringCoercer struct{}

var (
	_ ScalarResultCoercer = stringCoercer{}
	_ ScalarInputCoercer  = stringCoercer{}
)

// CoerceResultValue implements ScalarResultCoercer.
func (stringCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	}
	if f, ok := floatValueOf(value); ok {
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	}
	return nil, NewCoercionError("String cannot represent value: %s", Inspect(value))
}

// CoerceVariableValue implements ScalarInputCoercer.
func (stringCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	if v, ok := value.(string); ok {
		return v, nil
	}
	return nil, NewCoercionError("String cannot represent a non string value: %s", Inspect(value))
}

// CoerceLiteralValue implements ScalarInputCoercer.
func (stringCoercer) CoerceLiteralValue(value ast.Value) (interface{}, error) {
	if node, ok := value.(ast.StringValue); ok {
		return node.Value, nil
	}
	return nil, NewCoercionErrorWithLocation(
		ErrorLocationOfASTNode(value),
		"String cannot represent a non string value: %s", ast.Print(value))
}

// String is the built-in scalar for textual data represented as UTF-8 character sequences.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-String
var String = MustNewScalar(ScalarConfig{
	Name: "String",
	Description: "The `String` scalar type represents textual data, represented as UTF-8 " +
		"character sequences. The String type is most often used by GraphQL to represent free-form " +
		"human-readable text.",
	ResultCoercer: stringCoercer{},
	InputCoercer:  stringCoercer{},
})

//===-----------------------------------------------------------------------------------------===//
// Boolean
//===-----------------------------------------------------------------------------------------===//

// booleanCoercer implements input coercion and result coercion for the Boolean type.
type booleanCoercer struct{}

var (
	_ ScalarResultCoercer = booleanCoercer{}
	_ ScalarInputCoercer  = booleanCoercer{}
)

// CoerceResultValue implements ScalarResultCoercer.
func (booleanCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	if v, ok := value.(bool); ok {
		return v, nil
	}
	if f, ok := floatValueOf(value); ok {
		return f != 0, nil
	}
	return nil, NewCoercionError(
		"Boolean cannot represent a non boolean value: %s", Inspect(value))
}

// CoerceVariableValue implements ScalarInputCoercer.
func (booleanCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	if v, ok := value.(bool); ok {
		return v, nil
	}
	return nil, NewCoercionError(
		"Boolean cannot represent a non boolean value: %s", Inspect(value))
}

// CoerceLiteralValue implements ScalarInputCoercer.
func (booleanCoercer) CoerceLiteralValue(value ast.Value) (interface{}, error) {
	if node, ok := value.(ast.BooleanValue); ok {
		return node.Value, nil
	}
	return nil, NewCoercionErrorWithLocation(
		ErrorLocationOfASTNode(value),
		"Boolean cannot represent a non boolean value: %s", ast.Print(value))
}

// Boolean is the built-in scalar for true and false.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Boolean
var Boolean = MustNewScalar(ScalarConfig{
	Name:          "Boolean",
	Description:   "The `Boolean` scalar type represents `true` or `false`.",
	ResultCoercer: booleanCoercer{},
	InputCoercer:  booleanCoercer{},
})

//===-----------------------------------------------------------------------------------------===//
// ID
//===-----------------------------------------------------------------------------------------===//

// idCoercer implements input coercion and result coercion for the ID type.
type idCoercer struct{}

var (
	_ ScalarResultCoercer = idCoercer{}
	_ ScalarInputCoercer  = idCoercer{}
)

// CoerceResultValue implements ScalarResultCoercer.
func (idCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	}
	return nil, NewCoercionError("ID cannot represent value: %s", Inspect(value))
}

// CoerceVariableValue implements ScalarInputCoercer. Strings pass through and integer numbers
// stringify; anything fractional or non-numeric is rejected.
func (idCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	if v, ok := value.(string); ok {
		return v, nil
	}
	switch v := value.(type) {
	case float32:
		value = float64(v)
	}
	if v, ok := value.(float64); ok {
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatInt(int64(v), 10), nil
		}
		return nil, NewCoercionError("ID cannot represent value: %s", Inspect(value))
	}
	if _, ok := floatValueOf(value); ok {
		// Remaining numeric kinds are all Go integer types.
		return (idCoercer{}).CoerceResultValue(value)
	}
	return nil, NewCoercionError("ID cannot represent value: %s", Inspect(value))
}

// CoerceLiteralValue implements ScalarInputCoercer.
func (idCoercer) CoerceLiteralValue(value ast.Value) (interface{}, error) {
	switch node := value.(type) {
	case ast.StringValue:
		return node.Value, nil
	case ast.IntValue:
		return node.Value, nil
	}
	return nil, NewCoercionErrorWithLocation(
		ErrorLocationOfASTNode(value),
		"ID cannot represent a non-string and non-integer value: %s", ast.Print(value))
}

// ID is the built-in scalar for unique identifiers. It serializes the same way as a String but is
// not intended to be human-readable, and it accepts integer input.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-ID
var ID = MustNewScalar(ScalarConfig{
	Name: "ID",
	Description: "The `ID` scalar type represents a unique identifier, often used to refetch an " +
		"object or as key for a cache. The ID type appears in a JSON response as a String; however, " +
		"it is not intended to be human-readable. When expected as an input type, any string (such " +
		`as "4") or integer (such as 4) input value will be accepted as an ID.`,
	ResultCoercer: idCoercer{},
	InputCoercer:  idCoercer{},
})
