package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActiveFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    *bool
		wantErr bool
	}{
		{name: "empty means no filter", value: "", want: nil},
		{name: "all means no filter", value: "all", want: nil},
		{name: "true", value: "true", want: boolPtr(true)},
		{name: "false", value: "false", want: boolPtr(false)},
		{name: "mixed case", value: "TRUE", want: boolPtr(true)},
		{name: "surrounding whitespace", value: " false ", want: boolPtr(false)},
		{name: "garbage rejected", value: "maybe", wantErr: true},
		{name: "numeric rejected", value: "1", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseActiveFlag(tt.value)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidActiveFlag)

				return
			}

			require.NoError(t, err)

			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}
