// SPDX-License-Identifier: Unlicense OR MIT

package event

import "testing"

func TestStatusMerge(t *testing.T) {
	for _, tc := range []struct {
		a, b, want Status
	}{
		{Ignored, Ignored, Ignored},
		{Ignored, Captured, Captured},
		{Captured, Ignored, Captured},
		{Captured, Captured, Captured},
	} {
		if got := tc.a.Merge(tc.b); got != tc.want {
			t.Errorf("%v.Merge(%v): got %v; want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
