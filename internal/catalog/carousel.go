// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"sync"
	"time"

	"brincareducando/internal/models"
)

const (
	// CarouselWindow is how many featured products show at once.
	CarouselWindow = 3

	// CarouselInterval is the auto-advance period.
	CarouselInterval = 5 * time.Second
)

// Carousel cycles through the featured product subset in fixed windows of
// three, advancing a full window per step. Manual Prev/Next and the
// auto-advance ticker share the same step, so the rotation stays aligned.
//
// Stop must be called when the owning view is torn down; otherwise the
// auto-advance goroutine keeps ticking in the background.
type Carousel struct {
	mu    sync.Mutex
	items []models.Product
	start int

	stopOnce sync.Once
	stop     chan struct{}
}

// NewCarousel creates a carousel over the given featured products.
func NewCarousel(items []models.Product) *Carousel {
	return &Carousel{items: items, stop: make(chan struct{})}
}

// Window returns the currently visible products (up to CarouselWindow).
func (c *Carousel) Window() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	end := c.start + CarouselWindow
	if end > len(c.items) {
		end = len(c.items)
	}
	return c.items[c.start:end]
}

// Start returns the current window start index.
func (c *Carousel) Start() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.start
}

// Next advances one full window, wrapping to the beginning past the end.
func (c *Carousel) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.start = NextStart(c.start, len(c.items))
}

// Prev retreats one full window. Before the beginning it jumps to the start
// of the last (possibly partial) window.
func (c *Carousel) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.start = PrevStart(c.start, len(c.items))
}

// AutoAdvance starts the background ticker that calls Next every
// CarouselInterval until Stop.
func (c *Carousel) AutoAdvance() {
	go func() {
		ticker := time.NewTicker(CarouselInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.Next()
			case <-c.stop:
				return
			}
		}
	}()
}

// Stop terminates the auto-advance goroutine. Safe to call more than once.
func (c *Carousel) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// NextStart computes the window start after advancing: one window forward,
// or zero when that would run past the end.
func NextStart(start, length int) int {
	if start+CarouselWindow >= length {
		return 0
	}
	return start + CarouselWindow
}

// PrevStart computes the window start after retreating: one window back,
// or max(length-window, 0) when that would go negative.
func PrevStart(start, length int) int {
	if start-CarouselWindow < 0 {
		if length-CarouselWindow > 0 {
			return length - CarouselWindow
		}
		return 0
	}
	return start - CarouselWindow
}
