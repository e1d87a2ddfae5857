// seehuhn.de/go/chart - gridlines and coordinate transforms for 2D charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scene

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for scene files which are neither TOML
// nor YAML.
var ErrUnknownFormat = errors.New("scene: unknown file format")

// Format is a scene file format.
type Format int

// These are the supported file formats.
const (
	TOML Format = iota + 1
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf determines the file format from the extension of a file
// name.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// decoder is the common interface of the TOML and YAML decoders.
type decoder interface {
	Decode(v any) error
}

func newDecoder(r io.Reader, format Format) (decoder, error) {
	switch format {
	case TOML:
		return toml.NewDecoder(r).DisallowUnknownFields(), nil
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		return dec, nil
	default:
		return nil, ErrUnknownFormat
	}
}

// Decode reads a scene in the given format.  Unknown keys are errors.
func Decode(r io.Reader, format Format) (*Scene, error) {
	dec, err := newDecoder(r, format)
	if err != nil {
		return nil, err
	}
	s := &Scene{}
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("scene: decoding %s: %w", format, err)
	}
	return s, nil
}

// Load reads a scene file.  The format is chosen by the file name
// extension.
func Load(name string) (*Scene, error) {
	format, err := FormatOf(name)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Decode(bufio.NewReader(fp), format)
}
