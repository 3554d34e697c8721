package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"      _        _                         ", "#818cf8"},
	{"  ___| |_ __ _| |_ ___ _ __   __ ___   __", "#a78bfa"},
	{" / __| __/ _` | __/ _ \\ '_ \\ / _` \\ \\ / /", "#c084fc"},
	{" \\__ \\ || (_| | ||  __/ | | | (_| |\\ V / ", "#e879f9"},
	{" |___/\\__\\__,_|\\__\\___|_| |_|\\__,_| \\_/  ", "#f472b6"},
}

// PrintBanner writes the ASCII art banner to w.
// Colours follow the terminal profile of w and vanish on plain writers.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	// Using a subtle gradient-like color scheme (Indigo/Pink)
	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, out.String(line.text).Foreground(out.Color(line.color)))
	}
	fmt.Fprintln(w)
}
