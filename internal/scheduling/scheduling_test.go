package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same start", base, base, true},
		{"starts mid-slot", base, base.Add(15 * time.Minute), true},
		{"one minute before slot end", base, base.Add(29 * time.Minute), true},
		{"back to back", base, base.Add(30 * time.Minute), false},
		{"well apart", base, base.Add(2 * time.Hour), false},
		{"earlier slot bleeding in", base, base.Add(-15 * time.Minute), true},
		{"earlier slot ending exactly at start", base, base.Add(-30 * time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestFindConflict(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("no existing slots", func(t *testing.T) {
		_, conflict := FindConflict(base, nil)
		assert.False(t, conflict)
	})

	t.Run("free slot between bookings", func(t *testing.T) {
		existing := []time.Time{base, base.Add(time.Hour)}
		_, conflict := FindConflict(base.Add(30*time.Minute), existing)
		assert.False(t, conflict)
	})

	t.Run("reports the clashing slot", func(t *testing.T) {
		existing := []time.Time{base.Add(-2 * time.Hour), base.Add(10 * time.Minute)}
		taken, conflict := FindConflict(base, existing)
		assert.True(t, conflict)
		assert.Equal(t, base.Add(10*time.Minute), taken)
	})
}
