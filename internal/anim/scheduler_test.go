package anim_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/foxjammin/sigilry/internal/anim"
)

const period = anim.FramePeriod60

var _ = Describe("Renderer scheduling", func() {
	var (
		ticks *anim.ManualTicks
		surf  *recorder
		r     *anim.Renderer
	)

	BeforeEach(func() {
		ticks = anim.NewManualTicks()
		surf = &recorder{}
		r = anim.New(surf, ticks)
		r.OnResize(400, 200, 1)
		r.Start()
	})

	AfterEach(func() {
		r.Close()
	})

	Describe("throttle", func() {
		It("draws at most ~12 frames per second from a 60 Hz source", func() {
			ticks.Run(600, period)

			draws := r.Stats().Draws
			Expect(draws).To(BeNumerically(">=", 90))
			Expect(draws).To(BeNumerically("<=", 10*(anim.DefaultFPS+1)))
		})

		It("advances the clock by a fixed step per accepted frame", func() {
			ticks.Run(600, period)

			Expect(r.Time()).To(BeNumerically("~", float64(r.Stats().Draws)*anim.DefaultTimeStep, 1e-9))
		})

		It("ignores wall-clock gaps when advancing the clock", func() {
			ticks.Advance(10 * time.Second)
			Expect(r.Stats().Draws).To(Equal(1))
			Expect(r.Time()).To(BeNumerically("~", anim.DefaultTimeStep, 1e-12))
		})

		It("re-requests throttled opportunities without drawing", func() {
			ticks.Advance(period)
			Expect(r.Stats().Draws).To(Equal(0))
			Expect(r.Stats().Throttled).To(Equal(1))
			Expect(ticks.Pending()).To(Equal(1))
		})
	})

	Describe("pause", func() {
		BeforeEach(func() {
			ticks.Run(60, period)
		})

		It("stops drawing while paused and resumes on the next tick", func() {
			before := r.Stats().Draws
			Expect(before).To(BeNumerically(">", 0))

			r.SetRunning(false)
			ticks.Run(100, period)
			Expect(r.Stats().Draws).To(Equal(before))
			Expect(ticks.Pending()).To(Equal(0))

			r.SetRunning(true)
			ticks.Advance(period)
			Expect(r.Stats().Draws).To(Equal(before + 1))
		})

		It("does not catch up on missed frames", func() {
			t0 := r.Time()
			r.SetRunning(false)
			ticks.Run(1000, period)
			r.SetRunning(true)
			ticks.Advance(period)
			Expect(r.Time()).To(BeNumerically("~", t0+anim.DefaultTimeStep, 1e-9))
		})

		It("toggles and reports pressed state", func() {
			Expect(r.Toggle()).To(BeFalse())
			Expect(r.Paused()).To(BeTrue())
			Expect(r.Toggle()).To(BeTrue())
			Expect(r.Paused()).To(BeFalse())
		})
	})

	Describe("visibility", func() {
		It("suspends while hidden", func() {
			ticks.Run(30, period)
			before := r.Stats().Draws

			r.OnVisibilityChange(false)
			ticks.Run(100, period)
			Expect(r.Stats().Draws).To(Equal(before))
			Expect(r.Animating()).To(BeFalse())

			r.OnVisibilityChange(true)
			ticks.Advance(period)
			Expect(r.Stats().Draws).To(Equal(before + 1))
		})

		It("keeps a single outstanding request across quick flips", func() {
			r.OnVisibilityChange(false)
			r.OnVisibilityChange(true)
			r.SetRunning(false)
			r.SetRunning(true)
			Expect(ticks.Pending()).To(Equal(1))
		})

		It("needs both flags to resume", func() {
			r.SetRunning(false)
			r.OnVisibilityChange(false)
			r.SetRunning(true)
			ticks.Run(50, period)
			Expect(r.Stats().Draws).To(Equal(0))
		})
	})

	Describe("resize", func() {
		It("reconfigures the backing store and redraws outside the throttle", func() {
			ticks.Run(6, period)
			before := r.Stats().Draws

			r.OnResize(800, 600, 2)
			Expect(surf.backing[len(surf.backing)-1]).To(Equal([3]float64{1600, 1200, 2}))
			Expect(r.Stats().Draws).To(Equal(before + 1))
			Expect(r.Stats().ResizeDraws).To(Equal(1))

			r.OnResize(810, 600, 2)
			Expect(r.Stats().Draws).To(Equal(before + 2))
		})

		It("floors the device pixel ratio and clamps it to 1", func() {
			r.OnResize(100, 50, 1.75)
			Expect(surf.backing[len(surf.backing)-1]).To(Equal([3]float64{100, 50, 1}))

			r.OnResize(100, 50, 0.5)
			_, _, dpr := r.Size()
			Expect(dpr).To(Equal(1.0))
		})

		It("keeps a minimal backing store for empty surfaces", func() {
			r.OnResize(0, 0, 1)
			Expect(surf.backing[len(surf.backing)-1]).To(Equal([3]float64{1, 1, 1}))
			Expect(r.CellSize()).To(Equal(float64(anim.DefaultMinCell)))
		})

		It("does not redraw while paused", func() {
			r.SetRunning(false)
			before := r.Stats().Draws
			r.OnResize(640, 480, 1)
			Expect(r.Stats().Draws).To(Equal(before))
		})
	})

	Describe("teardown", func() {
		It("drops ticks after Close", func() {
			r.Close()
			ticks.Run(100, period)
			Expect(r.Stats().Draws).To(Equal(0))
			Expect(ticks.Pending()).To(Equal(0))
		})
	})
})

var _ = Describe("Renderer with reduced motion", func() {
	It("starts stopped, disables pause and paints one static frame", func() {
		ticks := anim.NewManualTicks()
		surf := &recorder{}
		r := anim.New(surf, ticks, anim.WithReducedMotion(true))
		r.OnResize(300, 200, 1)
		r.Start()

		Expect(r.Running()).To(BeFalse())
		Expect(r.PauseEnabled()).To(BeFalse())
		Expect(r.Stats().Draws).To(Equal(1))
		Expect(ticks.Pending()).To(Equal(0))

		r.SetRunning(true)
		ticks.Run(120, period)
		Expect(r.Running()).To(BeFalse())
		Expect(r.Stats().Draws).To(Equal(1))
		Expect(r.Time()).To(Equal(0.0))
	})

	It("repaints the static frame after a resize", func() {
		r := anim.New(&recorder{}, anim.NewManualTicks(), anim.WithReducedMotion(true))
		r.Start()
		r.OnResize(640, 480, 1)
		Expect(r.Stats().Draws).To(Equal(2))
	})
})

var _ = Describe("Renderer observers", func() {
	It("subscribes at construction and releases on Close", func() {
		host := &hostEvents{}
		ticks := anim.NewManualTicks()
		r := anim.New(&recorder{}, ticks, anim.WithObservers(host))
		Expect(host.listener).NotTo(BeNil())

		host.listener.OnResize(200, 100, 1)
		r.Start()
		host.listener.OnVisibilityChange(false)
		Expect(r.Visible()).To(BeFalse())

		r.Close()
		r.Close()
		Expect(host.released).To(Equal(1))
	})

	It("accepts plain functions as observers", func() {
		var got anim.Listener
		obs := anim.ObserverFunc(func(l anim.Listener) func() {
			got = l
			return nil
		})
		r := anim.New(&recorder{}, anim.NewManualTicks(), anim.WithObservers(obs))
		Expect(got).To(BeIdenticalTo(r))
		r.Close()
	})
})

var _ = Describe("Renderer without capabilities", func() {
	It("is inert without a surface", func() {
		ticks := anim.NewManualTicks()
		host := &hostEvents{}
		r := anim.New(nil, ticks, anim.WithObservers(host))

		Expect(r.Active()).To(BeFalse())
		r.OnResize(100, 100, 1)
		r.Start()
		r.SetRunning(true)
		r.Draw()
		r.Close()

		Expect(ticks.Pending()).To(Equal(0))
		Expect(host.listener).To(BeNil())
		Expect(r.Stats().Draws).To(Equal(0))
	})

	It("is inert without a tick source", func() {
		surf := &recorder{}
		r := anim.New(surf, nil)
		r.OnResize(100, 100, 1)
		r.Start()

		Expect(r.Active()).To(BeFalse())
		Expect(surf.clears).To(Equal(0))
		Expect(surf.backing).To(BeEmpty())
	})
})
