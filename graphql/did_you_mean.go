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
	"strings"

	"github.com/quiverhq/quiver/internal/util"
)

// didYouMeanMaxSuggestions caps the number of alternatives cited in one message.
const didYouMeanMaxSuggestions = 5

// didYouMean renders the optional " Did you mean ...?" suffix appended to diagnostic messages.
// It returns the empty string when there is nothing to suggest, so callers can append the result
// unconditionally. subMessage, when non-empty, qualifies the suggestions (e.g. "the enum value").
func didYouMean(subMessage string, suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}

	var message strings.Builder
	message.WriteString(" Did you mean ")
	if len(subMessage) > 0 {
		message.WriteString(subMessage)
		message.WriteString(" ")
	}
	message.WriteString(util.OrList(suggestions, didYouMeanMaxSuggestions, true))
	message.WriteString("?")
	return message.String()
}
