package component

import "github.com/milk9111/starfield/common"

// Comet is the variant state of a KindComet body: a velocity and a bounded
// trail of past positions ordered oldest to newest.
type Comet struct {
	Vel     common.Vec3
	TailLen int

	tail []common.Vec3
}

// Push records a position, evicting the oldest entries beyond TailLen.
func (c *Comet) Push(p common.Vec3) {
	if c.TailLen <= 0 {
		c.tail = c.tail[:0]
		return
	}
	c.tail = append(c.tail, p)
	if over := len(c.tail) - c.TailLen; over > 0 {
		n := copy(c.tail, c.tail[over:])
		c.tail = c.tail[:n]
	}
}

// Tail returns the trail, oldest first. The slice is reused on the next Push.
func (c *Comet) Tail() []common.Vec3 {
	return c.tail
}

func (c *Comet) ClearTail() {
	c.tail = c.tail[:0]
}
