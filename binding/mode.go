package binding

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Mode is the direction of synchronization between a binding's source
// expression and its target style property.
type Mode int

const (
	// OneTime copies the source value to the target once, at bind time.
	OneTime Mode = iota
	// ToView keeps the target updated with source changes.
	ToView
	// FromView keeps the source updated with target changes.
	FromView
	// TwoWay synchronizes in both directions.
	TwoWay
)

func (m Mode) String() string {
	switch m {
	case OneTime:
		return "one-time"
	case ToView:
		return "to-view"
	case FromView:
		return "from-view"
	case TwoWay:
		return "two-way"
	}
	return "invalid-mode"
}
