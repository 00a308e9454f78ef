// Package detector handles memory image format detection.
package detector

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// Format is the file format of a memory image.
type Format string

// Supported image formats.
const (
	Raw  Format = "raw"
	INES Format = "ines"
)

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// inesMagic starts the header of every iNES file.
var inesMagic = []byte{'N', 'E', 'S', 0x1A}

// Detector handles image format detection from file headers and extensions.
type Detector struct {
	logger *log.Logger
}

// New creates a new format detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the format of the image file. The iNES header takes
// precedence, files with a .nes extension but without a valid header are
// treated as raw images.
func (d *Detector) Detect(filename string) (Format, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", fmt.Errorf("opening file %s: %w", filename, err)
	}
	defer func() { _ = file.Close() }()

	header := make([]byte, len(inesMagic))
	n, err := io.ReadFull(file, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading header of %s: %w", filename, err)
	}

	format := detectFromHeader(header[:n])
	if format == Raw && d.hasINESExtension(filename) {
		d.logger.Warn("File has iNES extension but no iNES header, loading as raw image",
			log.String("file", filename))
	}

	d.logger.Debug("Detected image format",
		log.Stringer("format", format),
		log.String("file", filename))
	return format, nil
}

// detectFromHeader determines the format based on the first bytes of a file.
func detectFromHeader(header []byte) Format {
	if bytes.HasPrefix(header, inesMagic) {
		return INES
	}
	return Raw
}

func (d *Detector) hasINESExtension(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".nes"
}
