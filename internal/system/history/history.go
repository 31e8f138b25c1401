// Released under an MIT license. See LICENSE.

// Package history loads and saves the line editor's history file.
package history

import (
	"io"
	"os"
)

// DefaultPath is the history file used when no other path is given.
const DefaultPath = "history.txt"

// Load opens the file at path and passes it to read. A missing file is
// reported with an error that satisfies errors.Is(err, fs.ErrNotExist).
func Load(path string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Save creates or truncates the file at path and passes it to write.
func Save(path string, write func(w io.Writer) (int, error)) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
