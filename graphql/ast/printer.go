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

package ast

import (
	"strconv"
	"strings"
)

// Print renders a value node back into the literal form it had in the source document. It is used
// to cite offending literals in error messages.
func Print(value Value) string {
	var out strings.Builder
	printValue(&out, value)
	return out.String()
}

func printValue(out *strings.Builder, value Value) {
	switch value := value.(type) {
	case Variable:
		out.WriteString("$")
		out.WriteString(value.Name.Value)

	case IntValue:
		out.WriteString(value.Value)

	case FloatValue:
		out.WriteString(value.Value)

	case StringValue:
		if value.Block {
			out.WriteString(`"""`)
			out.WriteString(value.Value)
			out.WriteString(`"""`)
		} else {
			out.WriteString(strconv.Quote(value.Value))
		}

	case BooleanValue:
		if value.Value {
			out.WriteString("true")
		} else {
			out.WriteString("false")
		}

	case NullValue:
		out.WriteString("null")

	case EnumValue:
		out.WriteString(value.Value)

	case ListValue:
		out.WriteString("[")
		for i, v := range value.Values {
			if i > 0 {
				out.WriteString(", ")
			}
			printValue(out, v)
		}
		out.WriteString("]")

	case ObjectValue:
		out.WriteString("{")
		for i, field := range value.Fields {
			if i > 0 {
				out.WriteString(", ")
			}
			out.WriteString(field.Name.Value)
			out.WriteString(": ")
			printValue(out, field.Value)
		}
		out.WriteString("}")
	}
}
