package program_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Rumperuu/150ASM-Emulator/program"
)

var _ = Describe("Loader", func() {
	var ld *program.Loader

	BeforeEach(func() {
		ld = &program.Loader{}
	})

	Describe("Load", func() {
		It("should keep every line in order", func() {
			prog, err := ld.Load(strings.NewReader("# add\nSET REGA 5\nADD REGA 3\nPRT REGA\n"))

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Len()).To(Equal(4))
			Expect(prog.Lines).To(Equal([]string{"# add", "SET REGA 5", "ADD REGA 3", "PRT REGA"}))
		})

		It("should strip CRLF terminators", func() {
			prog, err := ld.Load(strings.NewReader("SET REGA 5\r\nPRT REGA\r\n"))

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Lines).To(Equal([]string{"SET REGA 5", "PRT REGA"}))
		})

		It("should load an empty program", func() {
			prog, err := ld.Load(strings.NewReader(""))

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Len()).To(Equal(0))
		})

		It("should accept exactly MAX_PROG_LEN lines", func() {
			text := strings.Repeat("NOP\n", program.MAX_PROG_LEN)
			prog, err := ld.Load(strings.NewReader(text))

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Len()).To(Equal(program.MAX_PROG_LEN))
		})

		It("should reject programs with too many lines", func() {
			text := strings.Repeat("NOP\n", program.MAX_PROG_LEN+1)
			prog, err := ld.Load(strings.NewReader(text))

			Expect(prog).To(BeNil())
			Expect(err).To(MatchError(program.ErrLoad))
			Expect(err).To(MatchError(program.ErrProgramTooLong))

			var el *program.ErrLine
			Expect(errors.As(err, &el)).To(BeTrue())
			Expect(el.LineNo).To(Equal(program.MAX_PROG_LEN + 1))
		})

		It("should reject overlong lines", func() {
			text := "NOP\n# " + strings.Repeat("x", program.MAX_LINE_LEN) + "\n"
			_, err := ld.Load(strings.NewReader(text))

			Expect(err).To(MatchError(program.ErrLoad))
			Expect(err).To(MatchError(program.ErrLineTooLong))
			Expect(err.Error()).To(ContainSubstring("line 2"))
		})

		It("should reject lines beyond the scanner buffer", func() {
			text := strings.Repeat("x", 128*1024)
			_, err := ld.Load(strings.NewReader(text))

			Expect(err).To(MatchError(program.ErrLineTooLong))
		})

		It("should honour custom limits", func() {
			ld.MaxLines = 2
			ld.MaxLineLength = 4

			_, err := ld.Load(strings.NewReader("NOP\nNOP\nNOP\n"))
			Expect(err).To(MatchError(program.ErrProgramTooLong))

			_, err = ld.Load(strings.NewReader("PRT 7\n"))
			Expect(err).To(MatchError(program.ErrLineTooLong))
		})
	})

	Describe("LoadFile", func() {
		It("should name the program after its file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "prog.scc")
			Expect(os.WriteFile(path, []byte("PRT 7\n"), 0o644)).To(Succeed())

			prog, err := ld.LoadFile(path)

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Name).To(Equal(path))
			Expect(prog.Lines).To(Equal([]string{"PRT 7"}))
		})

		It("should report a missing file as a load fault", func() {
			_, err := ld.LoadFile(filepath.Join(GinkgoT().TempDir(), "missing.scc"))

			Expect(err).To(MatchError(program.ErrLoad))
			Expect(err).To(MatchError(os.ErrNotExist))
		})
	})
})

var _ = Describe("Program", func() {
	var prog *program.Program

	BeforeEach(func() {
		prog = &program.Program{Lines: []string{"SET REGA 1", "PRT REGA"}}
	})

	It("should return lines by instruction pointer", func() {
		line, ok := prog.Line(1)
		Expect(ok).To(BeTrue())
		Expect(line).To(Equal("PRT REGA"))
	})

	It("should report the end of the program", func() {
		_, ok := prog.Line(2)
		Expect(ok).To(BeFalse())

		_, ok = prog.Line(0xffffffff)
		Expect(ok).To(BeFalse())
	})

	It("should iterate lines with their indexes", func() {
		var seen []int
		for n, line := range prog.All() {
			seen = append(seen, n)
			Expect(line).To(Equal(prog.Lines[n]))
		}
		Expect(seen).To(Equal([]int{0, 1}))
	})
})
