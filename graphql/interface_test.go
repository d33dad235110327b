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
	"context"

	"github.com/quiverhq/quiver/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Interface", func() {
	It("defines an interface with fields", func() {
		namedEntity, err := graphql.NewInterface(graphql.InterfaceConfig{
			Name: "NamedEntity",
			Fields: graphql.Fields{
				{Name: "name", Type: graphql.String},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())

		fields, err := namedEntity.Fields()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(fields).Should(HaveLen(1))
		Expect(fields[0].Name()).Should(Equal("name"))
	})

	It("supports deferred fields that close over the interface itself", func() {
		var nodeType *graphql.Interface
		nodeType = graphql.MustNewInterface(graphql.InterfaceConfig{
			Name: "Node",
			Fields: graphql.FieldsThunk(func() graphql.Fields {
				return graphql.Fields{
					{Name: "id", Type: graphql.MustNewNonNullOfType(graphql.ID)},
					{Name: "parent", Type: nodeType},
				}
			}),
		})

		fields, err := nodeType.Fields()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(fields.Lookup("parent").Type()).Should(Equal(graphql.Type(nodeType)))
	})

	It("keeps the configured type resolver", func() {
		droid := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Droid",
			Fields: graphql.Fields{
				{Name: "id", Type: graphql.ID},
			},
		})
		character := graphql.MustNewInterface(graphql.InterfaceConfig{
			Name: "Character",
			Fields: graphql.Fields{
				{Name: "id", Type: graphql.ID},
			},
			TypeResolver: graphql.TypeResolverFunc(
				func(ctx context.Context, value interface{}, info graphql.ResolveInfo) (*graphql.Object, error) {
					return droid, nil
				}),
		})

		Expect(character.TypeResolver()).ShouldNot(BeNil())
		resolved, err := character.TypeResolver().ResolveType(
			context.Background(), nil, graphql.ResolveInfo{})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(resolved).Should(Equal(droid))
	})
})
