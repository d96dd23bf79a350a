package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the scrambler ASCII banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"  ___  ___ _ __ __ _ _ __ ___ | |__ | | ___ _ __ ", "#818cf8"},
		{" / __|/ __| '__/ _` | '_ ` _ \\| '_ \\| |/ _ \\ '__|", "#a78bfa"},
		{" \\__ \\ (__| | | (_| | | | | | | |_) | |  __/ |   ", "#e879f9"},
		{" |___/\\___|_|  \\__,_|_| |_| |_|_.__/|_|\\___|_|   ", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
