//go:build starfielddebug

package common

import "fmt"

func assertDepth(z float64) {
	panic(fmt.Sprintf("projection: non-positive depth %v reached the projector", z))
}
