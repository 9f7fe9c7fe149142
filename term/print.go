package term

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	red    = color.New(color.FgHiRed)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgHiYellow)
	cyan   = color.New(color.FgHiCyan)

	warn    = yellow.Sprint("[WAR]") + " "
	err     = red.Sprint("[ERR]") + " "
	info    = cyan.Sprint("[INF]") + " "
	success = green.Sprint("[SUC]") + " "

	// Output is where every helper writes.
	Output io.Writer = color.Output
)

func printf(format string, args ...any) {
	fmt.Fprintf(Output, format+"\n", args...)
}

func Warn(format string, args ...any) {
	printf(warn+format, args...)
}

func Info(format string, args ...any) {
	printf(info+format, args...)
}

func Err(format string, args ...any) {
	printf(err+format, args...)
}

func Suc(format string, args ...any) {
	printf(success+format, args...)
}

func Red(s string) {
	red.Fprint(Output, s)
}

func addBorder(s, title string) string {
	lines := strings.Split(s, "\n")
	longest := 4
	for idx := range lines {
		if len(lines[idx]) > longest {
			longest = len(lines[idx])
		}
	}

	w := longest + 6
	titleW := len(title)
	if w < titleW+3 {
		w = titleW + 3
	}
	result := "╔═ " + title + " " + strings.Repeat("═", w-titleW-3) + "╗\n"
	for idx := range lines {
		blankWidth := w - len(lines[idx])
		blank := strings.Repeat(" ", blankWidth/2)
		moreBlank := strings.Repeat(" ", blankWidth%2)
		result += "║" + blank + lines[idx] + blank + moreBlank + "║\n"
	}
	result += "╚" + strings.Repeat("═", w) + "╝\n"
	return result
}

// Error prints s in a red box and exits with status 1.
func Error(s string) {
	Red(addBorder(s, "Error"))
	exit(1)
}

var exit = os.Exit
