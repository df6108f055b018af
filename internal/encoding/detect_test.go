package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhasan/estatedesk/internal/encoding"
)

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "Date,Receipt No,Amount,Reference\n10/03/2024,RCP-1021,1,00,000,Café Tower booking\n"

	r, err := encoding.NewUTF8Reader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestNewUTF8Reader_UTF8BOMStripped(t *testing.T) {
	bom := []byte{0xEF, 0xBB, 0xBF}
	content := []byte("Date,Receipt No,Amount\n")

	r, err := encoding.NewUTF8Reader(bytes.NewReader(append(bom, content...)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Date,Receipt No,Amount\n", string(got))
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	// windows-1252 bytes for "Dépôt,Amount\n"; é = 0xE9, ô = 0xF4.
	input := []byte{
		'D', 0xE9, 'p', 0xF4, 't', ',',
		'A', 'm', 'o', 'u', 'n', 't', '\n',
	}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Dépôt,Amount\n", string(got))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	text := "Date,Amount\n"

	buf := []byte{0xFF, 0xFE}
	for _, r := range text {
		buf = append(buf, byte(r), 0x00)
	}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(buf))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, text, string(got))
}
