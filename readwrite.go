package fluidpath

import (
	"os"
	"strings"

	"github.com/lilellia/fluidpath/atomicfile"
)

// ReadBytes returns the file's full contents.
func (p Path) ReadBytes() ([]byte, error) {
	return os.ReadFile(string(p))
}

// ReadText returns the file's contents as a string.
func (p Path) ReadText() (string, error) {
	data, err := os.ReadFile(string(p))
	return string(data), err
}

// ReadLines returns the file's contents split into lines, without
// trailing newline characters.
func (p Path) ReadLines() ([]string, error) {
	text, err := p.ReadText()
	if err != nil {
		return nil, err
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// WriteBytes writes data to the file, truncating any previous content.
func (p Path) WriteBytes(data []byte) error {
	return os.WriteFile(string(p), data, 0o644)
}

// WriteText writes s to the file, truncating any previous content.
func (p Path) WriteText(s string) error {
	return p.WriteBytes([]byte(s))
}

// AppendText appends s to the end of the file, creating it if absent.
func (p Path) AppendText(s string) error {
	f, err := os.OpenFile(string(p), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteLines writes the given lines to the file, each followed by a
// newline.
func (p Path) WriteLines(lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return p.WriteText(b.String())
}

// WriteAtomic atomically replaces the file's content with data: the
// previous content survives any failure, and concurrent readers never
// observe a partial write.
func (p Path) WriteAtomic(data []byte) error {
	return atomicfile.WriteFile(string(p), data, 0o644)
}

// WriteTextAtomic is WriteAtomic for string content.
func (p Path) WriteTextAtomic(s string) error {
	return atomicfile.WriteString(string(p), s)
}
