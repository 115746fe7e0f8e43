package component

import (
	"errors"
	"reflect"
)

var (
	ErrConfiguration       = errors.New("component: invalid part configuration")
	ErrUnresolvedHitTarget = errors.New("component: hit target matches no part")
)

// Handle is an opaque reference to a part's collidable representation. The
// core never dereferences it; it only compares handles, so they must be
// comparable. The physics world hands out *cp.Shape values.
type Handle any

func comparableHandle(h Handle) bool {
	if h == nil {
		return false
	}
	return reflect.TypeOf(h).Comparable()
}
