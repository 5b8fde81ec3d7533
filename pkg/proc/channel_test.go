package proc_test

import (
	"context"
	"errors"
	"io"
	"time"

	. "github.com/mandelsoft/smt/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/smt/pkg/ctxutil"
	me "github.com/mandelsoft/smt/pkg/proc"
	"github.com/mandelsoft/smt/pkg/smt"
)

var _ = Describe("channel", func() {
	var solver *FakeSolver
	var channel *me.Channel
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
		solver = NewFakeSolver()
	})

	AfterEach(func() {
		if channel != nil {
			channel.Close()
		}
		solver.Close()
	})

	start := func(opts ...me.Option) {
		in, out := solver.Streams()
		channel = me.NewChannel(in, out, opts...)
		MustBeSuccessfull(channel.Init())
	}

	It("rejects usage before init", func() {
		in, out := solver.Streams()
		channel = me.NewChannel(in, out)
		Expect(channel.Write("(check-sat)\n")).To(MatchError(smt.ErrWrite))
		_, err := channel.Read(ctx)
		Expect(err).To(MatchError(me.ErrNotInitialized))
	})

	It("rejects double init", func() {
		start()
		Expect(channel.Init()).NotTo(Succeed())
	})

	It("exchanges commands and responses", func() {
		solver.Respond("check-sat", "sat\n")
		start()
		MustBeSuccessfull(channel.Write("(check-sat)\n"))
		Expect(Must(channel.Read(ctx))).To(Equal("sat\n"))
		Expect(solver.Commands()).To(Equal([]string{"(check-sat)"}))
	})

	It("reads bounded chunks", func() {
		solver.Respond("get-model", "(model (define-fun x () Int 1))\n")
		start(me.WithBufferSize(8))
		MustBeSuccessfull(channel.Write("(get-model)\n"))
		Expect(Must(channel.Read(ctx))).To(Equal("(model ("))
		Expect(Must(channel.Read(ctx))).To(Equal("define-f"))
	})

	It("assembles framed responses", func() {
		solver.Respond("get-model", "(model\n", "  (define-fun x () Int\n", "    10)\n", ")\n")
		start(me.WithBufferSize(8))
		MustBeSuccessfull(channel.Write("(get-model)\n"))
		Expect(Must(channel.ReadResponse(ctx))).To(Equal("(model\n  (define-fun x () Int\n    10)\n)\n"))
	})

	It("keeps output following a response", func() {
		solver.Respond("check-sat", "sat\nunsat\n")
		start()
		MustBeSuccessfull(channel.Write("(check-sat)\n"))
		Expect(Must(channel.ReadResponse(ctx))).To(Equal("sat\n"))
		Expect(Must(channel.ReadResponse(ctx))).To(Equal("unsat\n"))
	})

	It("times out without losing late output", func() {
		solver.Respond("check-sat", "sat\n").Delay("check-sat", 200*time.Millisecond)
		start()
		MustBeSuccessfull(channel.Write("(check-sat)\n"))

		tctx := ctxutil.TimeoutContext(ctx, 20*time.Millisecond)
		defer ctxutil.Cancel(tctx)
		_, err := channel.ReadResponse(tctx)
		Expect(err).To(MatchError(smt.ErrTimeout))
		Expect(errors.Is(err, context.DeadlineExceeded)).To(BeTrue())

		Expect(Must(channel.ReadResponse(ctx))).To(Equal("sat\n"))
	})

	It("does not report cancellation as timeout", func() {
		start()
		cctx := ctxutil.CancelContext(ctx)
		ctxutil.Cancel(cctx)
		_, err := channel.Read(cctx)
		Expect(err).To(MatchError(context.Canceled))
		Expect(errors.Is(err, smt.ErrTimeout)).To(BeFalse())
	})

	It("reports the end of the output", func() {
		start()
		solver.Close()
		_, err := channel.Read(ctx)
		Expect(err).To(MatchError(io.EOF))
		_, err = channel.ReadResponse(ctx)
		Expect(err).To(MatchError(io.EOF))
	})

	It("reports write failures", func() {
		start()
		solver.Close()
		Expect(channel.Write("(check-sat)\n")).To(MatchError(smt.ErrWrite))
	})
})
