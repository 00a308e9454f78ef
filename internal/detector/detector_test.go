package detector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name       string
		fileName   string
		data       []byte
		wantFormat Format
	}{
		{
			name:       "iNES header",
			fileName:   "game.nes",
			data:       []byte{'N', 'E', 'S', 0x1A, 0x01, 0x00},
			wantFormat: INES,
		},
		{
			name:       "iNES header with other extension",
			fileName:   "game.bin",
			data:       []byte{'N', 'E', 'S', 0x1A},
			wantFormat: INES,
		},
		{
			name:       "raw image",
			fileName:   "rom.bin",
			data:       []byte{0xA9, 0x87, 0x85, 0x04, 0x00},
			wantFormat: Raw,
		},
		{
			name:       "nes extension without header",
			fileName:   "broken.nes",
			data:       []byte{0xEA, 0xEA, 0xEA, 0xEA, 0xEA},
			wantFormat: Raw,
		},
		{
			name:       "file shorter than header",
			fileName:   "short.bin",
			data:       []byte{'N', 'E'},
			wantFormat: Raw,
		},
		{
			name:       "empty file",
			fileName:   "empty.bin",
			data:       nil,
			wantFormat: Raw,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), tt.fileName)
			assert.NoError(t, os.WriteFile(file, tt.data, 0600))

			format, err := d.Detect(file)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantFormat, format)
		})
	}
}

func TestDetectMissingFile(t *testing.T) {
	d := New(log.NewTestLogger(t))

	_, err := d.Detect("/nonexistent/file.bin")
	assert.Error(t, err)
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "ines", INES.String())
	assert.Equal(t, "raw", Raw.String())
}
