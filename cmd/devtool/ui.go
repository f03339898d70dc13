package main

import (
	"fmt"
	"io"
	"os"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// out receives all devtool output; tests swap it
var out io.Writer = os.Stdout

// UI helpers

func PrintInfo(format string, a ...any) {
	fmt.Fprintf(out, colorBlue+"i "+format+colorReset+"\n", a...)
}

func PrintSuccess(format string, a ...any) {
	fmt.Fprintf(out, colorGreen+"ok "+format+colorReset+"\n", a...)
}

func PrintWarning(format string, a ...any) {
	fmt.Fprintf(out, colorYellow+"! "+format+colorReset+"\n", a...)
}

func PrintError(format string, a ...any) {
	fmt.Fprintf(out, colorRed+"x "+format+colorReset+"\n", a...)
}

func PrintHeader(title string) {
	fmt.Fprintf(out, "\n"+colorYellow+"=== %s ==="+colorReset+"\n", title)
}
