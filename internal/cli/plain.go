package cli

import (
	"io"

	"github.com/charmbracelet/x/ansi"
)

// plainWriter strips ANSI escape sequences before writing to w.
type plainWriter struct {
	w io.Writer
}

func (p *plainWriter) Write(data []byte) (int, error) {
	if _, err := io.WriteString(p.w, ansi.Strip(string(data))); err != nil {
		return 0, err
	}
	return len(data), nil
}
