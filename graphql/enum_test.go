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
	"github.com/quiverhq/quiver/graphql/ast"
	"github.com/quiverhq/quiver/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func enumLiteral(name string) ast.Value {
	return ast.EnumValue{Value: name}
}

var _ = Describe("Enum", func() {
	var colorType *graphql.Enum

	BeforeEach(func() {
		colorType = graphql.MustNewEnum(graphql.EnumConfig{
			Name: "Color",
			Values: []graphql.EnumValueConfig{
				{Name: "RED", Value: 0},
				{Name: "GREEN", Value: 1},
				{Name: "BLUE", Value: 2},
			},
		})
	})

	It("defines an enum type with deprecated value", func() {
		enumTypeWithDeprecatedValue, err := graphql.NewEnum(graphql.EnumConfig{
			Name: "EnumWithDeprecatedValue",
			Values: []graphql.EnumValueConfig{
				{
					Name: "foo",
					Deprecation: &graphql.Deprecation{
						Reason: "Just because",
					},
				},
			},
		})

		Expect(err).ShouldNot(HaveOccurred())

		enumValues := enumTypeWithDeprecatedValue.Values()
		Expect(enumValues).Should(HaveLen(1))

		enumValue := enumValues[0]
		Expect(enumValue.Name()).Should(Equal("foo"))
		Expect(enumValue.Description()).Should(BeEmpty())
		Expect(enumValue.IsDeprecated()).Should(BeTrue())
		Expect(enumValue.Deprecation().Reason).Should(Equal("Just because"))
		Expect(enumValue.Value()).Should(Equal("foo"))
	})

	It("defines an enum type with a value of `null`", func() {
		enumTypeWithNullishValue, err := graphql.NewEnum(graphql.EnumConfig{
			Name: "EnumTypeWithNullishValue",
			Values: []graphql.EnumValueConfig{
				{
					Name:  "NULL",
					Value: graphql.NilEnumInternalValue,
				},
			},
		})

		Expect(err).ShouldNot(HaveOccurred())

		enumValue := enumTypeWithNullishValue.Values()[0]
		Expect(enumValue.Name()).Should(Equal("NULL"))
		Expect(enumValue.Value()).Should(BeNil())

		name, err := enumTypeWithNullishValue.Serialize(nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(name).Should(Equal("NULL"))
	})

	It("keeps values in definition order", func() {
		names := []string{}
		for _, value := range colorType.Values() {
			names = append(names, value.Name())
		}
		Expect(names).Should(Equal([]string{"RED", "GREEN", "BLUE"}))
	})

	It("rejects reserved value names", func() {
		for _, reserved := range []string{"true", "false", "null"} {
			_, err := graphql.NewEnum(graphql.EnumConfig{
				Name: "BadEnum",
				Values: []graphql.EnumValueConfig{
					{Name: reserved},
				},
			})
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual("Enum type BadEnum cannot include value: "+reserved+"."),
				testutil.KindIs(graphql.ErrKindValidation),
			))
		}
	})

	It("rejects duplicate value names", func() {
		_, err := graphql.NewEnum(graphql.EnumConfig{
			Name: "DupEnum",
			Values: []graphql.EnumValueConfig{
				{Name: "FOO"},
				{Name: "FOO"},
			},
		})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Enum type DupEnum can include value FOO only once."),
		))
	})

	Describe("result coercion", func() {
		It("maps internal values back to wire names", func() {
			Expect(colorType.Serialize(0)).Should(Equal("RED"))
			Expect(colorType.Serialize(1)).Should(Equal("GREEN"))
			Expect(colorType.Serialize(2)).Should(Equal("BLUE"))
		})

		It("rejects unknown internal values", func() {
			_, err := colorType.Serialize(3)
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Enum "Color" cannot represent value: 3`),
				testutil.KindIs(graphql.ErrKindCoercion),
			))

			_, err = colorType.Serialize("RED")
			Expect(err).Should(HaveOccurred())
		})

		It("lets the first definition win when two names share an internal value", func() {
			aliased := graphql.MustNewEnum(graphql.EnumConfig{
				Name: "Aliased",
				Values: []graphql.EnumValueConfig{
					{Name: "CANONICAL", Value: 1},
					{Name: "ALIAS", Value: 1},
				},
			})

			name, err := aliased.Serialize(1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(name).Should(Equal("CANONICAL"))

			// Both names still parse.
			Expect(aliased.ParseValue("CANONICAL")).Should(Equal(1))
			Expect(aliased.ParseValue("ALIAS")).Should(Equal(1))
		})

		It("finds uncomparable internal values by an ordered scan", func() {
			sliceBacked := graphql.MustNewEnum(graphql.EnumConfig{
				Name: "SliceBacked",
				Values: []graphql.EnumValueConfig{
					{Name: "PAIR", Value: []int{1, 2}},
					{Name: "TRIPLE", Value: []int{1, 2, 3}},
				},
			})

			Expect(sliceBacked.Serialize([]int{1, 2, 3})).Should(Equal("TRIPLE"))
			Expect(sliceBacked.Serialize([]int{1, 2})).Should(Equal("PAIR"))

			_, err := sliceBacked.Serialize([]int{2, 1})
			Expect(err).Should(HaveOccurred())
		})
	})

	Describe("input coercion from variable values", func() {
		It("maps wire names to internal values", func() {
			Expect(colorType.ParseValue("RED")).Should(Equal(0))
			Expect(colorType.ParseValue("BLUE")).Should(Equal(2))
		})

		It("rejects non-string values", func() {
			_, err := colorType.ParseValue(1)
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Enum "Color" cannot represent non-string value: 1.`),
				testutil.KindIs(graphql.ErrKindCoercion),
			))
		})

		It("rejects unknown names with a suggestion", func() {
			_, err := colorType.ParseValue("GREN")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(
					`Value "GREN" does not exist in "Color" enum. Did you mean the enum value "GREEN"?`),
			))
		})

		It("omits the suggestion when nothing is close", func() {
			_, err := colorType.ParseValue("ZZZZZZZZZZ")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Value "ZZZZZZZZZZ" does not exist in "Color" enum.`),
			))
		})

		It("ranks multiple suggestions by distance", func() {
			_, err := colorType.ParseValue("RD")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(
					`Value "RD" does not exist in "Color" enum. Did you mean the enum value "RED"?`),
			))
		})
	})

	Describe("input coercion from literals", func() {
		It("accepts enum literals", func() {
			Expect(colorType.ParseLiteral(enumLiteral("GREEN"), nil)).Should(Equal(1))
		})

		It("rejects string literals with a pointed suggestion", func() {
			_, err := colorType.ParseLiteral(ast.StringValue{Value: "GREEN"}, nil)
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(
					`Enum "Color" cannot represent non-enum value: "GREEN". Did you mean the enum value "GREEN"?`),
				testutil.KindIs(graphql.ErrKindCoercion),
			))
		})

		It("rejects other literal kinds", func() {
			_, err := colorType.ParseLiteral(ast.IntValue{Value: "1"}, nil)
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Enum "Color" cannot represent non-enum value: 1.`),
			))
		})

		It("rejects unknown enum literals", func() {
			_, err := colorType.ParseLiteral(enumLiteral("BLUEE"), nil)
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(
					`Value "BLUEE" does not exist in "Color" enum. Did you mean the enum value "BLUE"?`),
			))
		})

		It("points a failed parse at the offending node", func() {
			_, err := colorType.ParseLiteral(
				ast.StringValue{Value: "GREEN", Loc: ast.SourceLocation{Line: 3, Column: 7}}, nil)
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageContainSubstring("cannot represent non-enum value"),
				testutil.KindIs(graphql.ErrKindCoercion),
				testutil.LocationEqual(graphql.ErrorLocation{Line: 3, Column: 7}),
			))

			_, err = colorType.ParseLiteral(
				ast.EnumValue{Value: "BLUEE", Loc: ast.SourceLocation{Line: 6, Column: 12}}, nil)
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageContainSubstring(`does not exist in "Color" enum`),
				testutil.LocationEqual(graphql.ErrorLocation{Line: 6, Column: 12}),
			))
		})

		It("resolves variable references against the provided variables", func() {
			variables := graphql.VariableValues{"color": "BLUE"}
			value, err := colorType.ParseLiteral(
				ast.Variable{Name: ast.Name{Value: "color"}}, variables)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value).Should(Equal(2))
		})
	})

	It("round-trips every value through serialize and parse", func() {
		for _, value := range colorType.Values() {
			name, err := colorType.Serialize(value.Value())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(name).Should(Equal(value.Name()))

			internal, err := colorType.ParseValue(name.(string))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(internal).Should(Equal(value.Value()))
		}
	})
})
