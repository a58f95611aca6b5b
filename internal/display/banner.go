package display

import (
	"fmt"
	"os"

	"github.com/backmassage/nodeprobe/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Cyan if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Cyan)
	}
	fmt.Fprint(os.Stdout, `                   _                        _
 _ __   ___   __| |  ___ _ __  _ __ ___ | |__   ___
| '_ \ / _ \ / _`+"`"+` | / _ \ '_ \| '__/ _ \| '_ \ / _ \
| | | | (_) | (_| ||  __/ |_) | | | (_) || |_) ||  __/
|_| |_|\___/ \__,_| \___| .__/|_|  \___/ |_.__/ \___|
                        |_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
