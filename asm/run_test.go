package asm

import (
	"errors"
	"iter"
	"strings"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func lines(text ...string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for n, line := range text {
			if !yield(n+1, line) {
				return
			}
		}
	}
}

var _ = Describe("Assembler.Run", func() {
	var (
		mockCtrl *gomock.Controller
		src      *MockSource
		sink     *MockSink
		asm      *Assembler
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		src = NewMockSource(mockCtrl)
		sink = NewMockSink(mockCtrl)
		asm = &Assembler{}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should emit every word in order and commit", func() {
		src.EXPECT().Lines().Return(lines("@END", "0;JMP", "(END)", "D=D+1"))
		src.EXPECT().Err().Return(nil)
		gomock.InOrder(
			sink.EXPECT().Emit("0000000000000010"),
			sink.EXPECT().Emit("1110101010000111"),
			sink.EXPECT().Emit("1110011111010000"),
			sink.EXPECT().Commit(),
		)
		src.EXPECT().Close()
		sink.EXPECT().Close()

		Expect(asm.Run(src, sink)).To(Succeed())
	})

	It("should not emit or commit on an unknown mnemonic", func() {
		src.EXPECT().Lines().Return(lines("@1", "D=XYZ"))
		src.EXPECT().Err().Return(nil)
		src.EXPECT().Close()
		sink.EXPECT().Close()

		err := asm.Run(src, sink)
		Expect(err).To(MatchError(ErrMnemonic{}))

		var syn *ErrSyntax
		Expect(errors.As(err, &syn)).To(BeTrue())
		Expect(syn.LineNo).To(Equal(2))
		Expect(syn.Line).To(Equal("D=XYZ"))
	})

	It("should stop at the first malformed line", func() {
		visited := 0
		src.EXPECT().Lines().Return(iter.Seq2[int, string](func(yield func(int, string) bool) {
			for n, line := range []string{"@1", "(BAD", "@2"} {
				visited++
				if !yield(n+1, line) {
					return
				}
			}
		}))
		src.EXPECT().Close()
		sink.EXPECT().Close()

		Expect(asm.Run(src, sink)).To(MatchError(ErrLabelSyntax))
		Expect(visited).To(Equal(2))
	})

	It("should pass source errors through", func() {
		readErr := errors.New("read failed")
		src.EXPECT().Lines().Return(lines("@1"))
		src.EXPECT().Err().Return(readErr)
		src.EXPECT().Close()
		sink.EXPECT().Close()

		Expect(asm.Run(src, sink)).To(MatchError(readErr))
	})

	It("should not commit when the sink fails", func() {
		writeErr := errors.New("disk full")
		src.EXPECT().Lines().Return(lines("@1", "@2"))
		src.EXPECT().Err().Return(nil)
		sink.EXPECT().Emit("0000000000000001").Return(writeErr)
		src.EXPECT().Close()
		sink.EXPECT().Close()

		Expect(asm.Run(src, sink)).To(MatchError(writeErr))
	})

	It("should report a close failure after success", func() {
		closeErr := errors.New("close failed")
		src.EXPECT().Lines().Return(lines("@1"))
		src.EXPECT().Err().Return(nil)
		sink.EXPECT().Emit(gomock.Any())
		sink.EXPECT().Commit()
		src.EXPECT().Close()
		sink.EXPECT().Close().Return(closeErr)

		Expect(asm.Run(src, sink)).To(MatchError(closeErr))
	})

	It("should assemble the same source identically twice", func() {
		var first, second []string
		for _, out := range []*[]string{&first, &second} {
			src.EXPECT().Lines().Return(lines(strings.Split("@i\n(L)\n@L\nM=M+1;JMP", "\n")...))
			src.EXPECT().Err().Return(nil)
			sink.EXPECT().Emit(gomock.Any()).Times(3).Do(func(word string) {
				*out = append(*out, word)
			})
			sink.EXPECT().Commit()
			src.EXPECT().Close()
			sink.EXPECT().Close()

			Expect(asm.Run(src, sink)).To(Succeed())
		}

		Expect(first).To(HaveLen(3))
		Expect(second).To(Equal(first))
	})
})
