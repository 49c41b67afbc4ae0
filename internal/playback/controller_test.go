package playback_test

import (
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortlab/internal/algorithms"
	"github.com/san-kum/sortlab/internal/playback"
	"github.com/san-kum/sortlab/internal/trace"
)

var _ = Describe("Controller", func() {
	var (
		sched   *manualScheduler
		rng     *rand.Rand
		ctrl    *playback.Controller
		changes []playback.Status
	)

	// [30, 10, 20] under bubble sort is an 11 step trace.
	load := func() {
		ctrl.Load(trace.FromValues(rng, 30, 10, 20))
	}

	BeforeEach(func() {
		sched = &manualScheduler{}
		rng = rand.New(rand.NewSource(1))
		changes = nil
		ctrl = playback.New(
			playback.WithScheduler(sched),
			playback.WithRand(rng),
			playback.WithOnChange(func(st playback.Status) { changes = append(changes, st) }),
		)
	})

	Describe("before the first reset", func() {
		It("is idle and ignores commands", func() {
			Expect(ctrl.Status().State).To(Equal(playback.Idle))

			ctrl.PlayPause()
			ctrl.StepForward()
			ctrl.StepBackward()

			Expect(ctrl.Status().State).To(Equal(playback.Idle))
			Expect(sched.entries).To(BeEmpty())
			Expect(changes).To(BeEmpty())

			_, ok := ctrl.Current()
			Expect(ok).To(BeFalse())
		})

		It("rejects seeks", func() {
			Expect(ctrl.Seek(0)).To(MatchError(playback.ErrSeekOutOfRange))
		})
	})

	Describe("Reset", func() {
		It("pauses at index 0 on a fresh valid trace", func() {
			ctrl.Reset()

			st := ctrl.Status()
			Expect(st.State).To(Equal(playback.Paused))
			Expect(st.Index).To(Equal(0))
			Expect(st.Size).To(Equal(playback.DefaultArraySize))
			Expect(ctrl.Initial()).To(HaveLen(playback.DefaultArraySize))
			Expect(ctrl.Trace().Validate()).To(Succeed())
			Expect(st.Len).To(Equal(ctrl.Trace().Len()))
		})

		It("stops playback and draws a new array", func() {
			ctrl.Reset()
			first := ctrl.Initial()
			ctrl.PlayPause()
			sched.Fire(2)
			stale := sched.Last()

			ctrl.Reset()

			Expect(ctrl.Status().State).To(Equal(playback.Paused))
			Expect(ctrl.Status().Index).To(Equal(0))
			Expect(stale.cancelled).To(BeTrue())
			Expect(ctrl.Initial()).NotTo(Equal(first))

			stale.tick()
			Expect(ctrl.Status().Index).To(Equal(0))
		})
	})

	Describe("playing", func() {
		BeforeEach(load)

		It("advances one step per tick", func() {
			ctrl.PlayPause()
			Expect(ctrl.Status().State).To(Equal(playback.Playing))
			Expect(sched.Active()).To(Equal(1))
			Expect(sched.Last().interval).To(Equal(playback.DefaultInterval))

			sched.Fire(3)
			Expect(ctrl.Status().Index).To(Equal(3))

			step, ok := ctrl.Current()
			Expect(ok).To(BeTrue())
			Expect(step).To(Equal(ctrl.Trace()[3]))
		})

		It("stops on the terminal step", func() {
			ctrl.PlayPause()
			sched.Fire(50)

			st := ctrl.Status()
			Expect(st.State).To(Equal(playback.Paused))
			Expect(st.Index).To(Equal(10))
			Expect(st.AtEnd()).To(BeTrue())
			Expect(sched.Active()).To(Equal(0))
		})

		It("rewinds when started from the terminal step", func() {
			Expect(ctrl.Seek(10)).To(Succeed())

			ctrl.PlayPause()

			Expect(ctrl.Status().State).To(Equal(playback.Playing))
			Expect(ctrl.Status().Index).To(Equal(0))
		})

		It("ignores ticks from a cancelled schedule", func() {
			ctrl.PlayPause()
			sched.Fire(2)
			stale := sched.Last()

			ctrl.PlayPause()
			Expect(ctrl.Status().State).To(Equal(playback.Paused))

			stale.tick()
			stale.tick()
			Expect(ctrl.Status().Index).To(Equal(2))

			// A new schedule does not revive the old one.
			ctrl.PlayPause()
			stale.tick()
			Expect(ctrl.Status().Index).To(Equal(2))
			sched.Fire(1)
			Expect(ctrl.Status().Index).To(Equal(3))
		})

		It("pauses without moving on a step command", func() {
			ctrl.PlayPause()
			sched.Fire(4)

			ctrl.StepForward()
			Expect(ctrl.Status().State).To(Equal(playback.Paused))
			Expect(ctrl.Status().Index).To(Equal(4))

			ctrl.PlayPause()
			ctrl.StepBackward()
			Expect(ctrl.Status().State).To(Equal(playback.Paused))
			Expect(ctrl.Status().Index).To(Equal(4))
		})

		It("pauses before applying a seek", func() {
			ctrl.PlayPause()
			Expect(ctrl.Seek(7)).To(Succeed())

			Expect(ctrl.Status().State).To(Equal(playback.Paused))
			Expect(ctrl.Status().Index).To(Equal(7))
			Expect(sched.Active()).To(Equal(0))
		})

		It("re-arms the schedule when the interval changes", func() {
			ctrl.PlayPause()
			old := sched.Last()

			got := ctrl.SetInterval(250 * time.Millisecond)

			Expect(got).To(Equal(250 * time.Millisecond))
			Expect(old.cancelled).To(BeTrue())
			Expect(sched.Active()).To(Equal(1))
			Expect(sched.Last().interval).To(Equal(250 * time.Millisecond))
			Expect(ctrl.Status().State).To(Equal(playback.Playing))
		})
	})

	Describe("stepping while paused", func() {
		BeforeEach(load)

		It("moves by one within bounds", func() {
			ctrl.StepForward()
			ctrl.StepForward()
			ctrl.StepBackward()
			Expect(ctrl.Status().Index).To(Equal(1))
		})

		It("does nothing past the last step", func() {
			Expect(ctrl.Seek(10)).To(Succeed())
			changes = nil

			ctrl.StepForward()

			Expect(ctrl.Status().Index).To(Equal(10))
			Expect(changes).To(BeEmpty())
		})

		It("does nothing before the first step", func() {
			ctrl.StepBackward()
			Expect(ctrl.Status().Index).To(Equal(0))
		})
	})

	Describe("Seek", func() {
		BeforeEach(load)

		DescribeTable("rejects out of range targets without changing state",
			func(target int) {
				Expect(ctrl.Seek(4)).To(Succeed())

				err := ctrl.Seek(target)

				Expect(err).To(MatchError(playback.ErrSeekOutOfRange))
				Expect(ctrl.Status().Index).To(Equal(4))
				Expect(ctrl.Status().State).To(Equal(playback.Paused))
			},
			Entry("negative", -1),
			Entry("one past the end", 11),
			Entry("far past the end", 1000),
		)

		It("accepts both ends", func() {
			Expect(ctrl.Seek(10)).To(Succeed())
			Expect(ctrl.Seek(0)).To(Succeed())
		})
	})

	Describe("settings", func() {
		BeforeEach(func() { ctrl.Reset() })

		DescribeTable("clamps the interval",
			func(in, want time.Duration) {
				Expect(ctrl.SetInterval(in)).To(Equal(want))
				Expect(ctrl.Status().Interval).To(Equal(want))
			},
			Entry("below minimum", time.Millisecond, playback.MinInterval),
			Entry("in range", 42*time.Millisecond, 42*time.Millisecond),
			Entry("above maximum", time.Second, playback.MaxInterval),
		)

		DescribeTable("clamps the array size and resets",
			func(in, want int) {
				ctrl.StepForward()

				Expect(ctrl.SetArraySize(in)).To(Equal(want))

				Expect(ctrl.Initial()).To(HaveLen(want))
				Expect(ctrl.Status().Index).To(Equal(0))
				Expect(ctrl.Status().State).To(Equal(playback.Paused))
			},
			Entry("below minimum", 3, playback.MinArraySize),
			Entry("in range", 12, 12),
			Entry("above maximum", 200, playback.MaxArraySize),
		)

		It("switches algorithms with a reset", func() {
			ctrl.StepForward()

			Expect(ctrl.SetAlgorithm(algorithms.NameHeap)).To(Succeed())

			st := ctrl.Status()
			Expect(st.Algorithm).To(Equal(algorithms.NameHeap))
			Expect(st.Index).To(Equal(0))
			Expect(ctrl.Trace().Validate()).To(Succeed())
			Expect(ctrl.Trace().Last().Description).To(Equal("Heap Sort Complete!"))
		})

		It("rejects unknown algorithms", func() {
			err := ctrl.SetAlgorithm("bogo")
			Expect(err).To(MatchError(algorithms.ErrUnknownAlgorithm))
			Expect(ctrl.Status().Algorithm).To(Equal(algorithms.NameBubble))
		})
	})

	It("reports every change to the observer", func() {
		load()
		ctrl.PlayPause()
		sched.Fire(2)
		ctrl.PlayPause()

		var indices []int
		var states []playback.State
		for _, st := range changes {
			indices = append(indices, st.Index)
			states = append(states, st.State)
		}
		Expect(indices).To(Equal([]int{0, 0, 1, 2, 2}))
		Expect(states).To(Equal([]playback.State{
			playback.Paused, playback.Playing, playback.Playing, playback.Playing, playback.Paused,
		}))
	})
})

var _ = Describe("Status", func() {
	It("computes progress", func() {
		Expect(playback.Status{Index: 5, Len: 11}.Progress()).To(BeNumerically("~", 0.5))
		Expect(playback.Status{Index: 0, Len: 1}.Progress()).To(BeZero())
	})
})

var _ = Describe("TickerScheduler", func() {
	It("ticks until cancelled", func() {
		ticks := make(chan struct{}, 64)
		cancel := playback.TickerScheduler{}.Schedule(time.Millisecond, func() {
			select {
			case ticks <- struct{}{}:
			default:
			}
		})

		Eventually(ticks).Should(Receive())
		Eventually(ticks).Should(Receive())
		cancel()
		cancel()

		// drain anything already in flight, then expect silence
		time.Sleep(5 * time.Millisecond)
		for len(ticks) > 0 {
			<-ticks
		}
		Consistently(ticks, 30*time.Millisecond).ShouldNot(Receive())
	})

	It("drives a controller to the end", func() {
		done := make(chan struct{})
		ctrl := playback.New(
			playback.WithRand(rand.New(rand.NewSource(7))),
			playback.WithInterval(playback.MinInterval),
			playback.WithOnChange(func(st playback.Status) {
				if st.AtEnd() && st.State == playback.Paused {
					close(done)
				}
			}),
		)
		DeferCleanup(ctrl.Close)
		ctrl.Load(trace.FromValues(rand.New(rand.NewSource(7)), 3, 1, 2))
		ctrl.PlayPause()

		Eventually(done, 5*time.Second).Should(BeClosed())
		Expect(ctrl.Status().Index).To(Equal(ctrl.Trace().LastIndex()))
	})
})
