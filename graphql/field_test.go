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
	"github.com/quiverhq/quiver/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func fieldsOf(object *graphql.Object) graphql.FieldList {
	fields, err := object.Fields()
	Expect(err).ShouldNot(HaveOccurred())
	return fields
}

var _ = Describe("Field", func() {
	It("normalizes arguments in definition order", func() {
		object := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				{
					Name: "search",
					Type: graphql.String,
					Args: []graphql.ArgumentConfig{
						{Name: "term", Type: graphql.MustNewNonNullOfType(graphql.String)},
						{Name: "first", Type: graphql.Int, DefaultValue: 10},
						{Name: "after", Type: graphql.ID},
					},
				},
			},
		})

		args := fieldsOf(object).Lookup("search").Args()
		Expect(args).Should(HaveLen(3))
		Expect(args[0].Name()).Should(Equal("term"))
		Expect(args[1].Name()).Should(Equal("first"))
		Expect(args[2].Name()).Should(Equal("after"))
	})

	It("keeps the configured resolver", func() {
		resolver := graphql.FieldResolverFunc(
			func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return "ok", nil
			})

		object := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				{Name: "status", Type: graphql.String, Resolver: resolver},
			},
		})

		field := fieldsOf(object).Lookup("status")
		Expect(field.Resolver()).ShouldNot(BeNil())

		value, err := field.Resolver().Resolve(context.Background(), nil, graphql.ResolveInfo{})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal("ok"))
	})

	It("keeps the configured subscription sourcer", func() {
		sourcer := graphql.SubscriptionSourcerFunc(
			func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return make(chan interface{}), nil
			})

		subscription := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Subscription",
			Fields: graphql.Fields{
				{Name: "messageAdded", Type: graphql.String, Subscriber: sourcer},
				{Name: "other", Type: graphql.String},
			},
		})

		fields := fieldsOf(subscription)
		Expect(fields.Lookup("messageAdded").Subscriber()).ShouldNot(BeNil())
		Expect(fields.Lookup("other").Subscriber()).Should(BeNil())
	})

	It("records deprecation", func() {
		object := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				{
					Name:        "old",
					Type:        graphql.String,
					Deprecation: &graphql.Deprecation{Reason: "use new instead"},
				},
				{Name: "new", Type: graphql.String},
			},
		})

		fields := fieldsOf(object)
		Expect(fields.Lookup("old").IsDeprecated()).Should(BeTrue())
		Expect(fields.Lookup("old").Deprecation().Reason).Should(Equal("use new instead"))
		Expect(fields.Lookup("new").IsDeprecated()).Should(BeFalse())
	})

	It("rejects an argument whose type is not an input type", func() {
		someObject := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "SomeObject",
			Fields: graphql.Fields{
				{Name: "f", Type: graphql.String},
			},
		})
		bad := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Bad",
			Fields: graphql.Fields{
				{
					Name: "field",
					Type: graphql.String,
					Args: []graphql.ArgumentConfig{
						{Name: "arg", Type: someObject},
					},
				},
			},
		})

		_, err := bad.Fields()
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual(
				"The type of Bad.field(arg:) must be Input Type but got: SomeObject."),
			testutil.KindIs(graphql.ErrKindValidation),
		))
	})

	It("rejects duplicate argument names", func() {
		bad := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Bad",
			Fields: graphql.Fields{
				{
					Name: "field",
					Type: graphql.String,
					Args: []graphql.ArgumentConfig{
						{Name: "arg", Type: graphql.Int},
						{Name: "arg", Type: graphql.Int},
					},
				},
			},
		})

		_, err := bad.Fields()
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual(`Bad.field must not contain duplicate argument "arg".`),
		))
	})

	Describe("argument requiredness", func() {
		argsOf := func(configs []graphql.ArgumentConfig) []graphql.Argument {
			object := graphql.MustNewObject(graphql.ObjectConfig{
				Name: "Query",
				Fields: graphql.Fields{
					{Name: "f", Type: graphql.String, Args: configs},
				},
			})
			return fieldsOf(object).Lookup("f").Args()
		}

		It("requires a Non-Null argument without default", func() {
			args := argsOf([]graphql.ArgumentConfig{
				{Name: "arg", Type: graphql.MustNewNonNullOfType(graphql.Int)},
			})
			Expect(args[0].IsRequired()).Should(BeTrue())
			Expect(args[0].HasDefaultValue()).Should(BeFalse())
		})

		It("does not require a Non-Null argument with a default, even a zero one", func() {
			args := argsOf([]graphql.ArgumentConfig{
				{Name: "arg", Type: graphql.MustNewNonNullOfType(graphql.Int), DefaultValue: 0},
			})
			Expect(args[0].IsRequired()).Should(BeFalse())
			Expect(args[0].HasDefaultValue()).Should(BeTrue())
			Expect(args[0].DefaultValue()).Should(Equal(0))
		})

		It("does not require a nullable argument", func() {
			args := argsOf([]graphql.ArgumentConfig{
				{Name: "arg", Type: graphql.Int},
			})
			Expect(args[0].IsRequired()).Should(BeFalse())
		})

		It("distinguishes an explicit null default from no default", func() {
			args := argsOf([]graphql.ArgumentConfig{
				{Name: "noDefault", Type: graphql.Int},
				{Name: "nullDefault", Type: graphql.Int, DefaultValue: graphql.NilArgumentDefaultValue},
			})

			Expect(args[0].HasDefaultValue()).Should(BeFalse())
			Expect(args[0].DefaultValue()).Should(BeNil())

			Expect(args[1].HasDefaultValue()).Should(BeTrue())
			Expect(args[1].DefaultValue()).Should(BeNil())
		})
	})
})
