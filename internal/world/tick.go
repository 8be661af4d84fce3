package world

import "github.com/tomz197/asteroids-torus/internal/object"

// Events summarises what happened during one tick.
type Events struct {
	Fired   bool // A bullet was fired
	Expired int  // Bullets evicted for running out of lifetime
	Hits    int  // Asteroids destroyed by bullets
	Splits  int  // Hits that produced fragments
	Refills int  // Asteroids spawned by the population floor
}

// Empty reports whether nothing noteworthy happened.
func (e Events) Empty() bool {
	return e == Events{}
}

// Tick advances the world by one step. elapsed is the wall-clock time since
// the previous tick in seconds and only scales rotation; all other motion is
// per tick.
func (w *World) Tick(elapsed float64, c Controls) Events {
	var ev Events

	w.ship.Steer(c, elapsed)
	w.ship.MoveBySpeed(w.plane)
	if c.Fire {
		w.ship.Fire(&w.bullets)
		ev.Fired = true
	}

	ev.Expired = w.updateBullets()

	fragments := w.updateAsteroids(&ev)
	for _, f := range fragments {
		w.asteroids.Insert(f)
	}

	if _, ok := w.spawner.Top(&w.asteroids, w.plane, w.rng); ok {
		ev.Refills++
	}
	return ev
}

// updateBullets moves every bullet and evicts the front of the queue if it
// has expired. Only the front is checked: bullets share one lifetime and
// count down together, so queue order is expiry order.
func (w *World) updateBullets() int {
	w.bullets.Each(func(_ object.Handle, b *object.Bullet) bool {
		b.Tick(w.plane)
		return false
	})

	if _, front, ok := w.bullets.Front(); ok && front.Expired() {
		w.bullets.PopFront()
		return 1
	}
	return 0
}

// updateAsteroids moves each asteroid and resolves bullet hits against it.
// It iterates a snapshot of handles so removals do not disturb the pass, and
// returns the fragments to add once the pass is over.
func (w *World) updateAsteroids(ev *Events) []object.Asteroid {
	var fragments []object.Asteroid

	for _, h := range w.asteroids.Handles() {
		a, ok := w.asteroids.Get(h)
		if !ok {
			continue
		}
		a.MoveBySpeed(w.plane)

		if w.bullets.Len() == 0 {
			continue
		}
		near, err := a.ClosestBullet(&w.bullets)
		if err != nil || near.Distance >= 0 {
			continue
		}

		w.bullets.Remove(near.Handle)
		children := a.Split(w.rng)
		w.asteroids.Remove(h)

		ev.Hits++
		if len(children) > 0 {
			ev.Splits++
			fragments = append(fragments, children...)
		}
	}
	return fragments
}
