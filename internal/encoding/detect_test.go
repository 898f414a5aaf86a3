package encoding_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhtp/sobanhang/internal/encoding"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(out)
}

func TestNewUTF8Reader_ValidUTF8(t *testing.T) {
	input := "khach: Chị Ba\n2 x Gạo ST25 = 25.000\n"
	assert.Equal(t, input, decode(t, []byte(input)))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("ngay: 15/01/2024")...)
	assert.Equal(t, "ngay: 15/01/2024", decode(t, input))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	text := "1 x Muối"

	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xFE})
	for _, r := range text {
		if r < 0x10000 {
			buf.WriteByte(byte(r))
			buf.WriteByte(byte(r >> 8))
		}
	}

	assert.Equal(t, text, decode(t, buf.Bytes()))
}

func TestNewUTF8Reader_LegacySingleByte(t *testing.T) {
	// 0xE0, 0xE8 and 0xE9 map to the same runes in Windows-1252 and
	// Windows-1258, so the decoded text is stable whichever of the two the
	// detector lands on.
	input := []byte{'c', 'a', 'f', 0xE9, ' ', 's', 0xE0, 'i', ' ', 'g', 0xE8}
	assert.Equal(t, "café sài gè", decode(t, input))
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	assert.Equal(t, "", decode(t, nil))
}

func TestNewUTF8Reader_LongInput(t *testing.T) {
	// Larger than the detection peek window.
	input := strings.Repeat("2 x Gạo ST25 = 25.000\n", 500)
	assert.Equal(t, input, decode(t, []byte(input)))
}
