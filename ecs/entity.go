package ecs

import "strconv"

// Entity is a handle to a body owned by a Registry. A handle whose body was
// removed stays invalid even after its id is reused.
type Entity struct {
	ID  int
	Gen int
}

func (e Entity) Valid() bool {
	return e.ID > 0
}

func (e Entity) String() string {
	return strconv.Itoa(e.ID) + "." + strconv.Itoa(e.Gen)
}
