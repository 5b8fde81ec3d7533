package smtlib2_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-test/deep"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/mandelsoft/smt/pkg/testutils"

	"github.com/mandelsoft/smt/pkg/graph"
	"github.com/mandelsoft/smt/pkg/proc"
	"github.com/mandelsoft/smt/pkg/smt"
	me "github.com/mandelsoft/smt/pkg/smtlib2"
	"github.com/mandelsoft/smt/pkg/theories/bitvec"
	"github.com/mandelsoft/smt/pkg/theories/ints"
)

const model = "(\n  (define-fun x () Int\n    10)\n  (define-fun y () Int #x0a)\n  (define-fun b () Bool true)\n)\n"

var _ = Describe("backend", func() {
	var s *me.SMTLib2[ints.Node, ints.Sort]
	var x, y graph.Handle

	setup := func(opts ...me.Option) {
		s = me.New[ints.Node, ints.Sort](ints.QF_LIA, opts...)
		x = s.NewVar("x", ints.Int)
		y = s.NewVar("y", ints.Int)
		s.NewVar("b", ints.Bool)
		s.Assert(ints.Eq, x, y)
	}

	Context("scripted", func() {
		BeforeEach(func() {
			setup()
		})

		DescribeTable("classifies answers",
			func(answer string, sat bool) {
				p := NewScriptedProc(answer)
				Expect(s.CheckSat(p)).To(Equal(sat))
				Expect(p.Script()).To(Equal(s.GenerateAsserts() + "(check-sat)\n"))
			},
			Entry("sat", "sat\n", true),
			Entry("unsat", "unsat\n", false),
			Entry("unknown", "unknown\n", false),
			Entry("unterminated", "sat", false),
			Entry("padded", " sat\n", false),
		)

		It("provides the plain answer", func() {
			p := NewScriptedProc("unknown\n")
			Expect(s.CheckSatAnswer(context.Background(), p)).To(Equal("unknown\n"))
		})

		It("reports undefined results", func() {
			p := NewScriptedProc()
			_, err := s.CheckSat(p)
			Expect(err).To(MatchError(smt.ErrUndefined))
			Expect(err).NotTo(MatchError(smt.ErrTimeout))
		})

		It("reports timeouts", func() {
			p := NewScriptedProc()
			p.ReadErr = context.DeadlineExceeded
			_, err := s.CheckSatWithTimeout(p, time.Second)
			Expect(err).To(MatchError(smt.ErrTimeout))
		})

		It("reports write failures", func() {
			p := NewScriptedProc("sat\n")
			p.WriteErr = errors.New("broken pipe")
			_, err := s.CheckSat(p)
			Expect(err).To(MatchError(smt.ErrWrite))
			Expect(p.Reads).To(Equal(0))
		})

		It("does not request a model for unsatisfiable problems", func() {
			p := NewScriptedProc("unsat\n", model)
			_, err := s.Solve(p)
			Expect(err).To(MatchError(smt.ErrUnsat))
			Expect(p.Script()).NotTo(ContainSubstring("get-model"))
			Expect(p.Reads).To(Equal(1))
		})

		It("solves", func() {
			p := NewScriptedProc("sat\n", model)
			values := Must(s.Solve(p))
			Expect(deep.Equal(values, map[graph.Handle]uint64{x: 10, y: 10})).To(BeNil())
			Expect(p.Script()).To(HaveSuffix("(check-sat)\n(get-model)\n"))
		})

		It("skips acknowledgements", func() {
			p := NewScriptedProc("sat\n", "success\n", model)
			values := Must(s.SolveWithTimeout(p, time.Second))
			Expect(deep.Equal(values, map[graph.Handle]uint64{x: 10, y: 10})).To(BeNil())
		})

		It("reports a missing model", func() {
			p := NewScriptedProc("sat\n")
			_, err := s.Solve(p)
			Expect(err).To(MatchError(smt.ErrUndefined))
		})

		It("reports solver errors", func() {
			p := NewScriptedProc("sat\n", `(error "model generation not enabled")`+"\n")
			_, err := s.Solve(p)
			Expect(err).To(MatchError(smt.ErrUndefined))
			Expect(err.Error()).To(ContainSubstring("model generation not enabled"))
		})
	})

	Context("raw framing", func() {
		BeforeEach(func() {
			setup(me.WithFraming(me.Raw))
		})

		It("discards the first chunk of the model", func() {
			p := NewScriptedProc("sat\n", model, model)
			values := Must(s.Solve(p))
			Expect(deep.Equal(values, map[graph.Handle]uint64{x: 10, y: 10})).To(BeNil())
			Expect(p.Reads).To(Equal(3))
		})

		It("fails if the model does not follow", func() {
			p := NewScriptedProc("sat\n", model)
			_, err := s.Solve(p)
			Expect(err).To(MatchError(smt.ErrUndefined))
		})
	})

	Context("solver", func() {
		var solver *FakeSolver
		var channel *proc.Channel

		BeforeEach(func() {
			solver = NewFakeSolver()
		})

		AfterEach(func() {
			channel.Close()
			solver.Close()
		})

		start := func() {
			in, out := solver.Streams()
			channel = proc.NewChannel(in, out)
			MustBeSuccessfull(channel.Init())
		}

		It("solves", func() {
			setup()
			solver.Respond("check-sat", "sat\n")
			solver.Respond("get-model", "(\n", "  (define-fun x () Int 10)\n", "  (define-fun y () Int #b1)\n)\n")
			start()

			MustBeSuccessfull(s.SetLogic(channel))
			values := Must(s.SolveWithTimeout(channel, 5*time.Second))
			Expect(deep.Equal(values, map[graph.Handle]uint64{x: 10, y: 1})).To(BeNil())
			Expect(solver.Heads()).To(Equal([]string{
				"set-logic",
				"declare-fun", "declare-fun", "declare-fun",
				"assert",
				"check-sat",
				"get-model",
			}))
		})

		It("solves in raw mode", func() {
			setup(me.WithFraming(me.Raw))
			solver.Respond("check-sat", "sat\n")
			solver.Respond("get-model", "success\n", model)
			start()

			values := Must(s.Solve(channel))
			Expect(deep.Equal(values, map[graph.Handle]uint64{x: 10, y: 10})).To(BeNil())
		})

		It("times out", func() {
			setup()
			solver.Respond("check-sat", "sat\n").Delay("check-sat", 200*time.Millisecond)
			start()

			_, err := s.CheckSatWithTimeout(channel, 20*time.Millisecond)
			Expect(err).To(MatchError(smt.ErrTimeout))
		})

		It("limits every read separately", func() {
			setup()
			solver.Respond("check-sat", "sat\n").Delay("check-sat", 80*time.Millisecond)
			solver.Respond("get-model", "((define-fun x () Int 1)\n (define-fun y () Int 1))\n").Delay("get-model", 80*time.Millisecond)
			start()

			values := Must(s.SolveWithTimeout(channel, 150*time.Millisecond))
			Expect(deep.Equal(values, map[graph.Handle]uint64{x: 1, y: 1})).To(BeNil())
		})

		It("limits the complete solve by the context", func() {
			setup()
			solver.Respond("check-sat", "sat\n").Delay("check-sat", 80*time.Millisecond)
			solver.Respond("get-model", "((define-fun x () Int 1))\n").Delay("get-model", 80*time.Millisecond)
			start()

			ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
			defer cancel()
			_, err := s.SolveContext(ctx, channel)
			Expect(err).To(MatchError(smt.ErrTimeout))
		})

		It("handles bit vectors", func() {
			bv := me.New[bitvec.Node, bitvec.Sort](bitvec.QF_BV)
			v := bv.NewVar("", bitvec.BitVec(32))
			w := bv.NewVar("", bitvec.BitVec(8))
			bv.Assert(bitvec.BVULt, w, bv.Assert(bitvec.Extract(7, 0), v))
			solver.Respond("check-sat", "sat\n")
			solver.Respond("get-model", fmt.Sprintf("((define-fun X_1 () (_ BitVec 32) #x%08x)\n (define-fun X_2 () (_ BitVec 8) #b00000011))\n", 260))
			start()

			values := Must(bv.Solve(channel))
			Expect(deep.Equal(values, map[graph.Handle]uint64{v: 260, w: 3})).To(BeNil())
		})
	})
})
