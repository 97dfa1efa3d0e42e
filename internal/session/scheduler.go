package session

import (
	"fmt"
	"log/slog"
	"slices"
)

// System is a unit of consumer logic run once per tick with scoped access
// to the world. Systems run in ascending order key, ties broken by
// registration sequence, and observe each other's mutations.
type System interface {
	Name() string
	Tick(ctx *Context) error
}

type registeredSystem struct {
	order int
	seq   int
	sys   System
}

// Scheduler drives registered systems in a fixed, deterministic order once
// per tick. A failing system is isolated; only fatal errors propagate.
type Scheduler struct {
	systems []registeredSystem
	nextSeq int
}

func newScheduler() *Scheduler {
	return &Scheduler{}
}

func (sc *Scheduler) register(order int, sys System) {
	sc.systems = append(sc.systems, registeredSystem{order: order, seq: sc.nextSeq, sys: sys})
	sc.nextSeq++
	slices.SortStableFunc(sc.systems, func(a, b registeredSystem) int {
		if a.order != b.order {
			return a.order - b.order
		}
		return a.seq - b.seq
	})
}

// runTick executes all systems for one tick. Returns only fatal errors.
func (sc *Scheduler) runTick(ctx *Context) error {
	for _, r := range sc.systems {
		if ctx.s.Phase().Terminal() {
			break
		}
		err := sc.runOne(r.sys, ctx)
		if err == nil {
			continue
		}
		if KindOf(err) == KindFatalModelCorruption {
			return fmt.Errorf("system %s: %w", r.sys.Name(), err)
		}
		slog.Warn("system failed, continuing tick",
			"system", r.sys.Name(),
			"tick", ctx.Tick,
			"err", err)
	}
	return nil
}

// runOne isolates a single system: panics surface as SystemFailure errors
// instead of taking the session down.
func (sc *Scheduler) runOne(sys System, ctx *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &Error{Kind: KindSystemFailure, Err: fmt.Errorf("panic in system %s: %v", sys.Name(), r)}
		}
	}()
	if err := sys.Tick(ctx); err != nil {
		if KindOf(err) == KindFatalModelCorruption {
			return err
		}
		return &Error{Kind: KindSystemFailure, Err: fmt.Errorf("%s: %w", sys.Name(), err)}
	}
	return nil
}
