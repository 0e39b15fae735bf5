package pinger

import "context"

// Pinger is a probed session component. Optional methods PingerCritical,
// PingerReadyCritical and PingerTimeout adjust how its result is used.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}
