package xcresult

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveTestsRef_skipsOnMissingInput(t *testing.T) {
	tests := []struct {
		name      string
		bundlePth string
		id        string
	}{
		{
			name:      "empty bundle path",
			bundlePth: "",
			id:        "0~abc123",
		},
		{
			name:      "empty reference id",
			bundlePth: "bundle.xcresult",
			id:        "",
		},
		{
			name:      "both empty",
			bundlePth: "",
			id:        "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := ResolveTestsRef(tt.bundlePth, tt.id)
			require.NoError(t, err)
			require.Nil(t, node)
		})
	}
}
