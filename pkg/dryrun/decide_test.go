package dryrun

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/gendry/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		exists        bool
		skipOverwrite bool
		minimalUpdate bool
		want          Kind
	}{
		{false, false, false, KindWrite},
		{false, false, true, KindWriteIfNewer},
		{false, true, false, KindWrite},
		{false, true, true, KindWriteIfNewer},
		{true, false, false, KindWrite},
		{true, false, true, KindWriteIfNewer},
		{true, true, false, KindSkippedOverwrite},
		// overwrite protection wins over minimal update
		{true, true, true, KindSkippedOverwrite},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("exists=%t/skip=%t/minimal=%t", tt.exists, tt.skipOverwrite, tt.minimalUpdate)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.exists, tt.skipOverwrite, tt.minimalUpdate))

			policy := types.Policy{SkipOverwrite: tt.skipOverwrite, MinimalUpdate: tt.minimalUpdate}
			assert.Equal(t, tt.want, DecideFor(policy, tt.exists))
		})
	}
}
