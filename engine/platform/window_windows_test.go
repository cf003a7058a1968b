//go:build windows

package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorRef(t *testing.T) {
	require.Equal(t, uint32(0), colorRef([3]uint8{}))
	require.Equal(t, uint32(0x00332211), colorRef([3]uint8{0x11, 0x22, 0x33}))
}
