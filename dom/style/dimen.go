package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

// Dimen interprets a property value as an absolute CSS length and converts
// it to device-independent dimension units. CSS "px" are treated as big
// points, which is what they amount to at 96 dpi for typesetting purposes.
//
//     style.Property("12pt").Dimen()   // => 12 * dimen.PT
//
// Relative units (em, %, vw, …) cannot be resolved without layout context
// and yield an error, as do values that are not lengths at all.
func (p Property) Dimen() (dimen.DU, error) {
	v := strings.TrimSpace(string(p))
	if v == "" {
		return 0, fmt.Errorf("empty property is not a dimension")
	}
	if v == "0" {
		return 0, nil
	}
	cut := len(v)
	for cut > 0 && !isNumeric(v[cut-1]) {
		cut--
	}
	num, unit := v[:cut], strings.ToLower(v[cut:])
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot read dimension %q: %v", p, err)
	}
	switch unit {
	case "pt":
		return dimen.DU(n * float64(dimen.PT)), nil
	case "px", "bp":
		return dimen.DU(n * float64(dimen.BP)), nil
	}
	return 0, fmt.Errorf("dimension %q has unsupported unit %q", p, unit)
}

func isNumeric(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}
