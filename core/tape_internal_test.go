package core

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tape", func() {
	var t Tape

	BeforeEach(func() {
		t = NewTape()
	})

	It("should start empty", func() {
		Expect(t.Len()).To(Equal(0))
		Expect(t.Cells()).To(BeEmpty())
	})

	It("should read 0 past the end without growing", func() {
		Expect(t.Get(0)).To(Equal(int32(0)))
		Expect(t.Get(5000)).To(Equal(int32(0)))
		Expect(t.Len()).To(Equal(0))
	})

	It("should zero-fill when a write lands past the end", func() {
		t.Add(3, 1)

		Expect(t.Cells()).To(Equal([]int32{0, 0, 0, 1}))
	})

	It("should grow past the initial capacity", func() {
		addr := uint(defaultTapeCapacity + 1)
		t.Add(addr, -1)

		Expect(t.Len()).To(Equal(defaultTapeCapacity + 2))
		Expect(t.Get(addr)).To(Equal(int32(-1)))
	})

	It("should not disturb lower cells on a first write", func() {
		t.Set(0, 7)
		t.Set(1, 8)
		t.Set(10, 9)

		Expect(t.Get(0)).To(Equal(int32(7)))
		Expect(t.Get(1)).To(Equal(int32(8)))
		for addr := uint(2); addr < 10; addr++ {
			Expect(t.Get(addr)).To(Equal(int32(0)))
		}
	})

	It("should never shrink", func() {
		t.Set(4, 1)
		t.Set(1, 1)

		Expect(t.Len()).To(Equal(5))
	})

	It("should wrap around on overflow", func() {
		t.Set(0, math.MaxInt32)
		t.Add(0, 1)
		Expect(t.Get(0)).To(Equal(int32(math.MinInt32)))

		t.Add(0, -1)
		Expect(t.Get(0)).To(Equal(int32(math.MaxInt32)))
	})

	It("should hand out copies", func() {
		t.Set(0, 1)
		cells := t.Cells()
		cells[0] = 99

		Expect(t.Get(0)).To(Equal(int32(1)))
	})
})
