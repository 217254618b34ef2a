package geometry_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/logikedit/geometry"
)

var _ = Describe("Part", func() {
	Describe("NewPart", func() {
		It("should reject begin >= end", func() {
			_, err := geometry.NewPart(5, 5)
			Expect(err).To(HaveOccurred())

			_, err = geometry.NewPart(6, 5)
			Expect(err).To(HaveOccurred())
		})

		It("should accept begin < end", func() {
			p, err := geometry.NewPart(2, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Length()).To(Equal(geometry.Offset(3)))
		})
	})

	Describe("Relate", func() {
		It("should classify disjoint parts", func() {
			a := geometry.MustNewPart(0, 2)
			b := geometry.MustNewPart(3, 5)
			Expect(geometry.Relate(a, b)).To(Equal(geometry.RelationDisjoint))
		})

		It("should classify equal parts", func() {
			a := geometry.MustNewPart(1, 4)
			b := geometry.MustNewPart(1, 4)
			Expect(geometry.Relate(a, b)).To(Equal(geometry.RelationEqual))
		})

		It("should classify a strictly inside b", func() {
			a := geometry.MustNewPart(2, 3)
			b := geometry.MustNewPart(0, 5)
			Expect(geometry.Relate(a, b)).To(Equal(geometry.RelationAInsideB))
		})

		It("should classify a inside b touching", func() {
			a := geometry.MustNewPart(0, 3)
			b := geometry.MustNewPart(0, 5)
			Expect(geometry.Relate(a, b)).To(Equal(geometry.RelationAInsideBTouching))
		})

		It("should classify overlap at b's begin", func() {
			a := geometry.MustNewPart(0, 5)
			b := geometry.MustNewPart(3, 8)
			Expect(geometry.Relate(a, b)).To(Equal(geometry.RelationOverlapBegin))
		})
	})

	Describe("Touches", func() {
		It("should report true when end meets begin", func() {
			a := geometry.MustNewPart(0, 3)
			b := geometry.MustNewPart(3, 6)
			Expect(geometry.Touches(a, b)).To(BeTrue())
		})

		It("should report false for overlapping or separated parts", func() {
			a := geometry.MustNewPart(0, 3)
			b := geometry.MustNewPart(4, 6)
			Expect(geometry.Touches(a, b)).To(BeFalse())
		})
	})

	Describe("Difference", func() {
		It("should return the original part when disjoint", func() {
			p := geometry.MustNewPart(0, 5)
			r := geometry.MustNewPart(6, 8)
			Expect(geometry.Difference(p, r)).To(Equal([]geometry.Part{p}))
		})

		It("should drop the part entirely when r covers it", func() {
			p := geometry.MustNewPart(2, 4)
			r := geometry.MustNewPart(0, 6)
			Expect(geometry.Difference(p, r)).To(BeEmpty())
		})

		It("should split into two parts when r is strictly inside", func() {
			p := geometry.MustNewPart(0, 10)
			r := geometry.MustNewPart(3, 6)
			got := geometry.Difference(p, r)
			Expect(got).To(Equal([]geometry.Part{
				geometry.MustNewPart(0, 3),
				geometry.MustNewPart(6, 10),
			}))
		})

		It("should shrink the begin side on overlap-begin", func() {
			p := geometry.MustNewPart(3, 8)
			r := geometry.MustNewPart(0, 5)
			Expect(geometry.Difference(p, r)).To(Equal([]geometry.Part{
				geometry.MustNewPart(5, 8),
			}))
		})

		It("should shrink the end side on overlap-end", func() {
			p := geometry.MustNewPart(0, 5)
			r := geometry.MustNewPart(3, 8)
			Expect(geometry.Difference(p, r)).To(Equal([]geometry.Part{
				geometry.MustNewPart(0, 3),
			}))
		})
	})
})
