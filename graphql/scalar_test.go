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
	"strings"

	"github.com/quiverhq/quiver/graphql"
	"github.com/quiverhq/quiver/graphql/ast"
	"github.com/quiverhq/quiver/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Scalar", func() {
	It("rejects a config without name", func() {
		_, err := graphql.NewScalar(graphql.ScalarConfig{})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Must provide name for Scalar."),
			testutil.KindIs(graphql.ErrKindValidation),
		))
	})

	It("rejects a name that violates the grammar", func() {
		_, err := graphql.NewScalar(graphql.ScalarConfig{Name: "3DPoint"})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual(`Names must start with [_a-zA-Z] but "3DPoint" does not.`),
		))

		_, err = graphql.NewScalar(graphql.ScalarConfig{Name: "bad-name"})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual(`Names must only contain [_a-zA-Z0-9] but "bad-name" does not.`),
		))
	})

	It("passes values through when no coercers are given", func() {
		odd := graphql.MustNewScalar(graphql.ScalarConfig{Name: "Odd"})

		Expect(odd.Serialize(3)).Should(Equal(3))
		Expect(odd.ParseValue("anything")).Should(Equal("anything"))
		// Untyped literal coercion parses int literals as int32.
		Expect(odd.ParseLiteral(ast.IntValue{Value: "3"}, nil)).Should(Equal(int32(3)))
		Expect(odd.ParseLiteral(ast.ListValue{
			Values: []ast.Value{
				ast.IntValue{Value: "1"},
				ast.StringValue{Value: "two"},
			},
		}, nil)).Should(Equal([]interface{}{int32(1), "two"}))
	})

	It("runs custom coercers", func() {
		upper := graphql.MustNewScalar(graphql.ScalarConfig{
			Name: "UpperString",
			ResultCoercer: graphql.CoerceScalarResultFunc(
				func(value interface{}) (interface{}, error) {
					s, ok := value.(string)
					if !ok {
						return nil, graphql.NewCoercionError(
							"UpperString cannot represent value: %s", graphql.Inspect(value))
					}
					return strings.ToUpper(s), nil
				}),
			InputCoercer: graphql.ScalarInputCoercerFuncs{
				CoerceVariableValueFunc: func(value interface{}) (interface{}, error) {
					s, ok := value.(string)
					if !ok {
						return nil, graphql.NewCoercionError(
							"UpperString cannot represent value: %s", graphql.Inspect(value))
					}
					return strings.ToUpper(s), nil
				},
				CoerceLiteralValueFunc: func(value ast.Value) (interface{}, error) {
					node, ok := value.(ast.StringValue)
					if !ok {
						return nil, graphql.NewCoercionError(
							"UpperString cannot represent value: %s", ast.Print(value))
					}
					return strings.ToUpper(node.Value), nil
				},
			},
		})

		Expect(upper.Serialize("loud")).Should(Equal("LOUD"))
		Expect(upper.ParseValue("quiet")).Should(Equal("QUIET"))
		Expect(upper.ParseLiteral(ast.StringValue{Value: "mixed"}, nil)).Should(Equal("MIXED"))

		_, err := upper.Serialize(1)
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.KindIs(graphql.ErrKindCoercion),
		))
	})

	It("resolves variable references before coercing", func() {
		odd := graphql.MustNewScalar(graphql.ScalarConfig{Name: "Passthrough"})

		variables := graphql.VariableValues{"v": 7}
		value, err := odd.ParseLiteral(ast.Variable{Name: ast.Name{Value: "v"}}, variables)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal(7))

		_, err = odd.ParseLiteral(ast.Variable{Name: ast.Name{Value: "missing"}}, variables)
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual(`Variable "$missing" is not provided for scalar "Passthrough".`),
		))
	})
})
