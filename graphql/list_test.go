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

package graphql_test

import (
	"github.com/quiverhq/quiver/graphql"
	"github.com/quiverhq/quiver/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("List", func() {
	It("wraps any type including wrapping types", func() {
		listOfInt, err := graphql.NewListOfType(graphql.Int)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(listOfInt.ElementType()).Should(Equal(graphql.Type(graphql.Int)))
		Expect(listOfInt.UnwrappedType()).Should(Equal(graphql.Type(graphql.Int)))

		listOfList, err := graphql.NewListOfType(listOfInt)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(listOfList.String()).Should(Equal("[[Int]]"))
	})

	It("refuses to wrap nothing", func() {
		_, err := graphql.NewListOfType(nil)
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Expected null to be a GraphQL type."),
			testutil.KindIs(graphql.ErrKindValidation),
		))
	})

	It("contributes no name of its own", func() {
		listOfInt := graphql.MustNewListOfType(graphql.Int)
		Expect(graphql.IsNamedType(listOfInt)).Should(BeFalse())
		Expect(graphql.IsWrappingType(listOfInt)).Should(BeTrue())
		Expect(graphql.NamedTypeOf(listOfInt).Name()).Should(Equal("Int"))
	})
})
