package core_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tapevm/core"
	"github.com/sarchlab/tapevm/program"
)

const helloWorld = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]" +
	">>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

var _ = Describe("Core", func() {
	var (
		in  *strings.Reader
		out *bytes.Buffer
		c   *core.Core
	)

	build := func(input string) {
		in = strings.NewReader(input)
		out = &bytes.Buffer{}
		c = core.NewBuilder().
			WithInput(in).
			WithOutput(out).
			Build("Core")
	}

	BeforeEach(func() {
		build("")
	})

	It("should keep its name", func() {
		Expect(c.Name()).To(Equal("Core"))
	})

	It("should start from an empty state", func() {
		s := c.Snapshot()

		Expect(s.Tape).To(BeEmpty())
		Expect(s.DataPointer).To(Equal(uint(0)))
		Expect(s.InstPointer).To(Equal(uint(0)))
	})

	It("should move a cell into its neighbour", func() {
		Expect(c.Execute(program.Tokenize("++++[>+<-]"))).To(Succeed())

		s := c.Snapshot()
		Expect(s.Cell(0)).To(Equal(int32(0)))
		Expect(s.Cell(1)).To(Equal(int32(4)))
		Expect(s.DataPointer).To(Equal(uint(0)))
		Expect(s.InstPointer).To(Equal(uint(10)))
	})

	It("should skip an empty loop over a zero cell", func() {
		Expect(c.Execute(program.Tokenize("[]"))).To(Succeed())

		s := c.Snapshot()
		Expect(s.InstPointer).To(Equal(uint(2)))
		Expect(s.Tape).To(BeEmpty())
	})

	It("should skip a loop body entirely", func() {
		Expect(c.Execute(program.Tokenize("[+.>]+"))).To(Succeed())

		s := c.Snapshot()
		Expect(s.Tape).To(Equal([]int32{1}))
		Expect(out.Len()).To(Equal(0))
	})

	It("should emit a control character", func() {
		Expect(c.Execute(program.Tokenize("+++."))).To(Succeed())

		Expect(out.String()).To(Equal("\x03"))
		s := c.Snapshot()
		Expect(s.DataPointer).To(Equal(uint(0)))
		Expect(s.Cell(0)).To(Equal(int32(3)))
	})

	It("should abort on pointer underflow", func() {
		err := c.Execute(program.Tokenize("<"))

		Expect(errors.Is(err, core.ErrPointerUnderflow)).To(BeTrue())
		Expect(c.Snapshot().InstPointer).To(Equal(uint(0)))
	})

	It("should stop at the instruction that underflows", func() {
		err := c.Execute(program.Tokenize("+.><<+"))

		Expect(errors.Is(err, core.ErrPointerUnderflow)).To(BeTrue())
		Expect(out.String()).To(Equal("\x01"))
		s := c.Snapshot()
		Expect(s.InstPointer).To(Equal(uint(4)))
		Expect(s.Tape).To(Equal([]int32{1}))
	})

	It("should treat comments as no-ops", func() {
		Expect(c.Execute(program.Tokenize("just a comment"))).To(Succeed())

		s := c.Snapshot()
		Expect(s.Tape).To(BeEmpty())
		Expect(s.DataPointer).To(Equal(uint(0)))
		Expect(s.InstPointer).To(Equal(uint(14)))
	})

	It("should print hello world", func() {
		Expect(c.Execute(program.Tokenize(helloWorld))).To(Succeed())

		Expect(out.String()).To(Equal("Hello World!\n"))
		s := c.Snapshot()
		Expect(s.DataPointer).To(Equal(uint(6)))
		Expect(s.InstPointer).To(Equal(uint(len(helloWorld))))
	})

	It("should echo input values as characters", func() {
		build("72\n105\n")

		Expect(c.Execute(program.Tokenize(",.>,."))).To(Succeed())

		Expect(out.String()).To(Equal("Hi"))
		Expect(c.Snapshot().Tape).To(Equal([]int32{72, 105}))
	})

	It("should read 0 once input runs out", func() {
		build("5")

		Expect(c.Execute(program.Tokenize(",>,"))).To(Succeed())

		Expect(c.Snapshot().Tape).To(Equal([]int32{5, 0}))
	})

	It("should count down from input", func() {
		build("3\n")

		Expect(c.Execute(program.Tokenize(",[>++<-]"))).To(Succeed())

		Expect(c.Snapshot().Tape).To(Equal([]int32{0, 6}))
	})

	It("should start each execution from a fresh state", func() {
		Expect(c.Execute(program.Tokenize("+++++.>"))).To(Succeed())
		Expect(c.Execute(program.Tokenize("++."))).To(Succeed())

		Expect(out.String()).To(Equal("\x05\x02"))
		s := c.Snapshot()
		Expect(s.Tape).To(Equal([]int32{2}))
		Expect(s.DataPointer).To(Equal(uint(0)))
		Expect(s.InstPointer).To(Equal(uint(3)))
	})

	It("should resume from the current state on Run", func() {
		Expect(c.Execute(program.Tokenize("++"))).To(Succeed())

		c.MapProgram(program.Tokenize("+++"))
		Expect(c.Run()).To(Succeed())

		s := c.Snapshot()
		Expect(s.Cell(0)).To(Equal(int32(3)))
		Expect(s.InstPointer).To(Equal(uint(3)))
	})
})

var _ = Describe("Trace", func() {
	It("should sit below the debug level", func() {
		Expect(core.LevelTrace < slog.LevelDebug).To(BeTrue())
	})

	It("should be silent under the default logger", func() {
		Expect(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)).
			Enabled(context.Background(), core.LevelTrace)).To(BeFalse())
	})
})

var _ = Describe("Console", func() {
	It("should return lines with their terminator", func() {
		console := core.NewConsole(strings.NewReader("a\nb"), &bytes.Buffer{})

		line, err := console.ReadLine()
		Expect(err).NotTo(HaveOccurred())
		Expect(line).To(Equal("a\n"))

		line, err = console.ReadLine()
		Expect(err).NotTo(HaveOccurred())
		Expect(line).To(Equal("b"))

		line, err = console.ReadLine()
		Expect(err).NotTo(HaveOccurred())
		Expect(line).To(BeEmpty())
	})

	It("should write UTF-8", func() {
		out := &bytes.Buffer{}
		console := core.NewConsole(strings.NewReader(""), out)

		Expect(console.WriteRune('é')).To(Succeed())
		Expect(console.WriteRune(0)).To(Succeed())

		Expect(out.Bytes()).To(Equal([]byte{0xC3, 0xA9, 0x00}))
	})
})

var _ = Describe("PrintState", func() {
	It("should render the tape and mark the data pointer", func() {
		out := &bytes.Buffer{}

		core.PrintState(out, core.Snapshot{
			Tape:        []int32{0, 4, -1},
			DataPointer: 1,
			InstPointer: 10,
		})

		Expect(out.String()).To(ContainSubstring("DP=1, IP=10"))
		Expect(out.String()).To(ContainSubstring("Tape (3 cells)"))
		Expect(out.String()).To(ContainSubstring("*4"))
		Expect(out.String()).To(ContainSubstring("-1"))
	})

	It("should add rows up to the data pointer", func() {
		out := &bytes.Buffer{}

		core.PrintState(out, core.Snapshot{DataPointer: 23})

		Expect(out.String()).To(ContainSubstring("*0"))
		Expect(out.String()).To(ContainSubstring("20"))
	})
})
