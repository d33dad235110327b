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

// checkName verifies that name conforms to the grammar for GraphQL names, /[_A-Za-z][_0-9A-Za-z]*/.
// kind names the definition being checked (e.g. "Object") to contextualize the error.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Names
func checkName(kind string, name string) error {
	if len(name) == 0 {
		return newValidationError("Must provide name for %s.", kind)
	}
	if c := name[0]; !(c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
		return newValidationError(`Names must start with [_a-zA-Z] but %q does not.`, name)
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		if !(c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
			return newValidationError(`Names must only contain [_a-zA-Z0-9] but %q does not.`, name)
		}
	}
	return nil
}
