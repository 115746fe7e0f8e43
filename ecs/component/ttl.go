package component

import "time"

// TTL destroys an entity once the world clock reaches Expires.
type TTL struct {
	Expires time.Duration
}

var TTLComponent = NewComponent[TTL]()
