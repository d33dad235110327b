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

var _ = Describe("Object", func() {
	It("defines an object type with fields in definition order", func() {
		blogImage, err := graphql.NewObject(graphql.ObjectConfig{
			Name: "Image",
			Fields: graphql.Fields{
				{Name: "url", Type: graphql.String},
				{Name: "width", Type: graphql.Int},
				{Name: "height", Type: graphql.Int},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(blogImage.Name()).Should(Equal("Image"))

		fields, err := blogImage.Fields()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(fields).Should(HaveLen(3))
		Expect(fields[0].Name()).Should(Equal("url"))
		Expect(fields[1].Name()).Should(Equal("width"))
		Expect(fields[2].Name()).Should(Equal("height"))

		Expect(fields.Lookup("width").Type()).Should(Equal(graphql.Type(graphql.Int)))
		Expect(fields.Lookup("nope")).Should(BeNil())
	})

	It("rejects a config without name", func() {
		_, err := graphql.NewObject(graphql.ObjectConfig{})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Must provide name for Object."),
			testutil.KindIs(graphql.ErrKindValidation),
		))
	})

	It("rejects a field whose type is not an output type", func() {
		input := graphql.MustNewInputObject(graphql.InputObjectConfig{
			Name: "SomeInput",
			Fields: graphql.InputFields{
				{Name: "val", Type: graphql.Int},
			},
		})
		badObject := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "BadObject",
			Fields: graphql.Fields{
				{Name: "badField", Type: input},
			},
		})

		_, err := badObject.Fields()
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual(
				"The type of BadObject.badField must be Output Type but got: SomeInput."),
			testutil.KindIs(graphql.ErrKindValidation),
		))
	})

	It("rejects duplicate field names", func() {
		object := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Dup",
			Fields: graphql.Fields{
				{Name: "f", Type: graphql.Int},
				{Name: "f", Type: graphql.String},
			},
		})
		_, err := object.Fields()
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual(`Dup must not contain duplicate field "f".`),
		))
	})

	Describe("deferred field definitions", func() {
		It("expresses a type that references itself", func() {
			var todoType *graphql.Object
			todoType = graphql.MustNewObject(graphql.ObjectConfig{
				Name: "Todo",
				Fields: graphql.FieldsThunk(func() graphql.Fields {
					return graphql.Fields{
						{Name: "id", Type: graphql.MustNewNonNullOfType(graphql.ID)},
						{Name: "blockedBy", Type: graphql.MustNewListOfType(todoType)},
					}
				}),
			})

			fields, err := todoType.Fields()
			Expect(err).ShouldNot(HaveOccurred())

			blockedBy, err := graphql.AssertListType(fields.Lookup("blockedBy").Type())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(blockedBy.ElementType()).Should(Equal(graphql.Type(todoType)))
		})

		It("expresses mutually recursive types", func() {
			var personType, petType *graphql.Object

			personType = graphql.MustNewObject(graphql.ObjectConfig{
				Name: "Person",
				Fields: graphql.FieldsThunk(func() graphql.Fields {
					return graphql.Fields{
						{Name: "name", Type: graphql.String},
						{Name: "pets", Type: graphql.MustNewListOfType(petType)},
					}
				}),
			})
			petType = graphql.MustNewObject(graphql.ObjectConfig{
				Name: "Pet",
				Fields: graphql.FieldsThunk(func() graphql.Fields {
					return graphql.Fields{
						{Name: "name", Type: graphql.String},
						{Name: "owner", Type: personType},
					}
				}),
			})

			personFields, err := personType.Fields()
			Expect(err).ShouldNot(HaveOccurred())
			petFields, err := petType.Fields()
			Expect(err).ShouldNot(HaveOccurred())

			pets, err := graphql.AssertListType(personFields.Lookup("pets").Type())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(pets.ElementType()).Should(Equal(graphql.Type(petType)))
			Expect(petFields.Lookup("owner").Type()).Should(Equal(graphql.Type(personType)))
		})

		It("evaluates the thunk exactly once", func() {
			invocations := 0
			object := graphql.MustNewObject(graphql.ObjectConfig{
				Name: "Counted",
				Fields: graphql.FieldsThunk(func() graphql.Fields {
					invocations++
					return graphql.Fields{
						{Name: "n", Type: graphql.Int},
					}
				}),
			})

			for i := 0; i < 3; i++ {
				fields, err := object.Fields()
				Expect(err).ShouldNot(HaveOccurred())
				Expect(fields).Should(HaveLen(1))
			}
			Expect(invocations).Should(Equal(1))
		})

		It("is immune to environment changes after the first evaluation", func() {
			fieldName := "before"
			object := graphql.MustNewObject(graphql.ObjectConfig{
				Name: "Latched",
				Fields: graphql.FieldsThunk(func() graphql.Fields {
					return graphql.Fields{
						{Name: fieldName, Type: graphql.Int},
					}
				}),
			})

			fields, err := object.Fields()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(fields.Lookup("before")).ShouldNot(BeNil())

			fieldName = "after"
			fields, err = object.Fields()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(fields.Lookup("before")).ShouldNot(BeNil())
			Expect(fields.Lookup("after")).Should(BeNil())
		})

		It("latches the first error", func() {
			object := graphql.MustNewObject(graphql.ObjectConfig{
				Name: "Broken",
				Fields: graphql.FieldsThunk(func() graphql.Fields {
					return graphql.Fields{
						{Name: "bad"},
					}
				}),
			})

			_, err := object.Fields()
			Expect(err).Should(HaveOccurred())
			_, again := object.Fields()
			Expect(again).Should(Equal(err))
		})
	})

	Describe("interfaces", func() {
		var namedType *graphql.Interface

		BeforeEach(func() {
			namedType = graphql.MustNewInterface(graphql.InterfaceConfig{
				Name: "Named",
				Fields: graphql.Fields{
					{Name: "name", Type: graphql.String},
				},
			})
		})

		It("accepts an eager interface list", func() {
			dog := graphql.MustNewObject(graphql.ObjectConfig{
				Name:       "Dog",
				Interfaces: graphql.InterfaceList{namedType},
				Fields: graphql.Fields{
					{Name: "name", Type: graphql.String},
				},
			})

			ifaces, err := dog.Interfaces()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ifaces).Should(ConsistOf(namedType))
		})

		It("accepts a deferred interface list", func() {
			cat := graphql.MustNewObject(graphql.ObjectConfig{
				Name: "Cat",
				Interfaces: graphql.InterfacesThunk(func() []*graphql.Interface {
					return []*graphql.Interface{namedType}
				}),
				Fields: graphql.Fields{
					{Name: "name", Type: graphql.String},
				},
			})

			ifaces, err := cat.Interfaces()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ifaces).Should(ConsistOf(namedType))
		})

		It("rejects a nil interface", func() {
			bad := graphql.MustNewObject(graphql.ObjectConfig{
				Name:       "Bad",
				Interfaces: graphql.InterfaceList{nil},
			})
			_, err := bad.Interfaces()
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageContainSubstring("must only implement Interface types"),
			))
		})

		It("rejects the same interface twice", func() {
			bad := graphql.MustNewObject(graphql.ObjectConfig{
				Name:       "Bad",
				Interfaces: graphql.InterfaceList{namedType, namedType},
			})
			_, err := bad.Interfaces()
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual("Type Bad can only implement Named once."),
			))
		})
	})
})
