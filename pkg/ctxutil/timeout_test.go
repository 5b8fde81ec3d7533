package ctxutil_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/smt/pkg/ctxutil"
)

var _ = Describe("timeout contexts", func() {
	It("expires bounded contexts", func() {
		ctx := me.TimeoutContext(context.Background(), 10*time.Millisecond)
		defer me.Cancel(ctx)
		Eventually(ctx.Done()).Should(BeClosed())
		Expect(me.IsTimeout(ctx.Err())).To(BeTrue())
	})

	It("keeps unbounded contexts open until canceled", func() {
		ctx := me.TimeoutContext(context.Background(), 0)
		_, ok := ctx.Deadline()
		Expect(ok).To(BeFalse())
		Consistently(ctx.Done(), 20*time.Millisecond).ShouldNot(BeClosed())
		me.Cancel(ctx)
		Expect(ctx.Done()).To(BeClosed())
		Expect(me.IsTimeout(ctx.Err())).To(BeFalse())
	})

	It("ignores foreign contexts on cancel", func() {
		Expect(func() { me.Cancel(context.Background()) }).NotTo(Panic())
	})
})
