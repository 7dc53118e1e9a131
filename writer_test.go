package classifile

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDedupingWriter(t *testing.T) {
	t.Run("deduplicates lines", func(t *testing.T) {
		var buf bytes.Buffer
		dw := NewDedupingWriter(&buf)

		lines := []string{"IMG_004.jpg", "IMG_005.jpg", "IMG_004.jpg", "IMG_006.jpg", "IMG_005.jpg"}
		for _, line := range lines {
			_, err := dw.Write([]byte(line + "\n"))
			require.Nil(t, err)
		}
		require.Nil(t, dw.Close())

		output := buf.String()
		require.Equal(t, 3, dw.Count())
		require.Equal(t, 1, strings.Count(output, "IMG_004.jpg"))
		require.Equal(t, 1, strings.Count(output, "IMG_005.jpg"))
		require.Equal(t, 1, strings.Count(output, "IMG_006.jpg"))
	})

	t.Run("skips seeded names", func(t *testing.T) {
		var buf bytes.Buffer
		dw := NewDedupingWriter(&buf, "IMG_001.jpg", "IMG_002.jpg")

		for _, line := range []string{"IMG_001.jpg", "IMG_003.jpg", "IMG_002.jpg"} {
			_, err := dw.Write([]byte(line + "\n"))
			require.Nil(t, err)
		}
		require.Nil(t, dw.Close())

		require.Equal(t, 1, dw.Count())
		require.Equal(t, "IMG_003.jpg\n", buf.String())
	})

	t.Run("buffers partial lines", func(t *testing.T) {
		var buf bytes.Buffer
		dw := NewDedupingWriter(&buf)

		_, err := dw.Write([]byte("IMG_0"))
		require.Nil(t, err)
		_, err = dw.Write([]byte("07.jpg\nIMG_008"))
		require.Nil(t, err)
		_, err = dw.Write([]byte(".jpg\n"))
		require.Nil(t, err)
		require.Nil(t, dw.Close())

		require.Equal(t, 2, dw.Count())
		require.Contains(t, buf.String(), "IMG_007.jpg\n")
		require.Contains(t, buf.String(), "IMG_008.jpg\n")
	})

	t.Run("flushes trailing line on close", func(t *testing.T) {
		var buf bytes.Buffer
		dw := NewDedupingWriter(&buf)

		_, err := dw.Write([]byte("IMG_009.jpg"))
		require.Nil(t, err)
		require.Nil(t, dw.Close())

		require.Equal(t, "IMG_009.jpg\n", buf.String())
	})

	t.Run("rejects writes after close", func(t *testing.T) {
		var buf bytes.Buffer
		dw := NewDedupingWriter(&buf)
		require.Nil(t, dw.Close())

		_, err := dw.Write([]byte("late\n"))
		require.ErrorIs(t, err, io.ErrClosedPipe)
	})
}
