package PD4

import "sync/atomic"

// Counter is the global accumulator of a counting run. It must be zeroed
// with Reset before a launch; launches that share a counter without an
// intervening Reset accumulate their sums.
type Counter struct {
	total int64
}

func (c *Counter) Reset() {
	atomic.StoreInt64(&c.total, 0)
}

func (c *Counter) Add(v int64) {
	atomic.AddInt64(&c.total, v)
}

func (c *Counter) Value() int64 {
	return atomic.LoadInt64(&c.total)
}
