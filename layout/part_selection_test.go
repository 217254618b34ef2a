package layout_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/layout"
)

var _ = Describe("PartSelection", func() {
	var sel layout.PartSelection

	BeforeEach(func() {
		sel = layout.PartSelection{}
	})

	Describe("AddPart", func() {
		It("should keep disjoint parts separate", func() {
			Expect(sel.AddPart(geometry.MustNewPart(0, 2))).To(Succeed())
			Expect(sel.AddPart(geometry.MustNewPart(5, 8))).To(Succeed())
			Expect(sel.Parts()).To(HaveLen(2))
		})

		It("should merge touching parts", func() {
			Expect(sel.AddPart(geometry.MustNewPart(0, 3))).To(Succeed())
			Expect(sel.AddPart(geometry.MustNewPart(3, 6))).To(Succeed())
			Expect(sel.Parts()).To(Equal([]geometry.Part{geometry.MustNewPart(0, 6)}))
		})

		It("should merge overlapping parts", func() {
			Expect(sel.AddPart(geometry.MustNewPart(0, 5))).To(Succeed())
			Expect(sel.AddPart(geometry.MustNewPart(3, 8))).To(Succeed())
			Expect(sel.Parts()).To(Equal([]geometry.Part{geometry.MustNewPart(0, 8)}))
		})

		It("should reject degenerate parts", func() {
			_, err := geometry.NewPart(3, 3)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("RemovePart", func() {
		BeforeEach(func() {
			Expect(sel.AddPart(geometry.MustNewPart(0, 10))).To(Succeed())
		})

		It("should split into two parts when removing the middle", func() {
			Expect(sel.RemovePart(geometry.MustNewPart(3, 6))).To(Succeed())
			Expect(sel.Parts()).To(Equal([]geometry.Part{
				geometry.MustNewPart(0, 3),
				geometry.MustNewPart(6, 10),
			}))
		})

		It("should empty the selection when removing everything", func() {
			Expect(sel.RemovePart(geometry.MustNewPart(0, 10))).To(Succeed())
			Expect(sel.Empty()).To(BeTrue())
		})
	})

	Describe("round trip", func() {
		It("add then remove the same disjoint part is a no-op", func() {
			Expect(sel.AddPart(geometry.MustNewPart(0, 3))).To(Succeed())
			before := append([]geometry.Part{}, sel.Parts()...)

			Expect(sel.AddPart(geometry.MustNewPart(10, 12))).To(Succeed())
			Expect(sel.RemovePart(geometry.MustNewPart(10, 12))).To(Succeed())

			Expect(sel.Parts()).To(Equal(before))
		})
	})

	Describe("CopyParts / MoveParts", func() {
		It("should shift a sub-range into a same-length destination", func() {
			var src, dst layout.PartSelection
			Expect(src.AddPart(geometry.MustNewPart(3, 5))).To(Succeed())

			def := layout.CopyDef{
				Source:      geometry.MustNewPart(0, 10),
				Destination: geometry.MustNewPart(100, 110),
			}
			Expect(layout.CopyParts(&dst, &src, def)).To(Succeed())
			Expect(dst.Parts()).To(Equal([]geometry.Part{geometry.MustNewPart(103, 105)}))
		})

		It("should reject mismatched source/destination lengths", func() {
			var src, dst layout.PartSelection
			def := layout.CopyDef{
				Source:      geometry.MustNewPart(0, 10),
				Destination: geometry.MustNewPart(0, 5),
			}
			Expect(layout.CopyParts(&dst, &src, def)).NotTo(Succeed())
		})

		It("move should remove the source range after copying", func() {
			var src, dst layout.PartSelection
			Expect(src.AddPart(geometry.MustNewPart(3, 5))).To(Succeed())
			def := layout.CopyDef{
				Source:      geometry.MustNewPart(0, 10),
				Destination: geometry.MustNewPart(0, 10),
			}
			Expect(layout.MoveParts(&dst, &src, def)).To(Succeed())
			Expect(src.Empty()).To(BeTrue())
			Expect(dst.Parts()).To(Equal([]geometry.Part{geometry.MustNewPart(3, 5)}))
		})
	})

	Describe("scenario 5 from spec.md: selection tracking across merge", func() {
		It("should coalesce [3,5) and (shifted) [0,2) into [3,7)", func() {
			var a, merged layout.PartSelection
			Expect(a.AddPart(geometry.MustNewPart(3, 5))).To(Succeed())

			var b layout.PartSelection
			Expect(b.AddPart(geometry.MustNewPart(0, 2))).To(Succeed())

			// A (len 5) occupies merged offsets [0,5); B (len 5) occupies
			// merged offsets [5,10).
			Expect(layout.CopyParts(&merged, &a, layout.CopyDef{
				Source:      geometry.MustNewPart(0, 5),
				Destination: geometry.MustNewPart(0, 5),
			})).To(Succeed())
			Expect(layout.CopyParts(&merged, &b, layout.CopyDef{
				Source:      geometry.MustNewPart(0, 5),
				Destination: geometry.MustNewPart(5, 10),
			})).To(Succeed())

			Expect(merged.Parts()).To(Equal([]geometry.Part{geometry.MustNewPart(3, 7)}))
		})
	})
})
