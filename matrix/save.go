// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"log/slog"
	"os"

	"gonum.org/v1/gonum/mat"
)

const opSave = "Save"

// Save writes the dense materialization of m to the file name in gonum's binary
// matrix encoding (see (*mat.Dense).MarshalBinaryTo). An existing file is
// truncated. A failure is logged at error level and returned; Save never panics.
func (m *Matrix) Save(name string) error {
	if err := m.save(name); err != nil {
		m.logger.Error("save failed", slog.String("file", name), slog.Any("err", err))
		return matrixErrorf(opSave, err)
	}

	return nil
}

func (m *Matrix) save(name string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	_, err = ToDense(m).MarshalBinaryTo(f)

	return err
}

// Load reads a matrix written by Save into new Full storage.
func Load(name string, opts ...Option) (*Matrix, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, matrixErrorf("Load", err)
	}
	defer f.Close()

	var d mat.Dense
	if _, err := d.UnmarshalBinaryFrom(f); err != nil {
		return nil, matrixErrorf("Load", err)
	}
	r, c := d.Dims()
	m, err := NewFull(r, c, opts...)
	if err != nil {
		return nil, err
	}
	m.store.addDense(1, &d)

	return m, nil
}
