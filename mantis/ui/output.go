package ui

import (
	"fmt"
	"time"

	"github.com/ratel-online/mantis/mantis/color"
)

// Delay is the pause after every write, so bot turns can be followed.
var Delay = time.Second

// Print writes text as is, rendered messages already end in a newline.
func Print(text string) {
	fmt.Fprint(color.Stdout, text)
	if Delay > 0 {
		time.Sleep(Delay)
	}
}

func Println(args ...interface{}) {
	Print(fmt.Sprintln(args...))
}

func Printfln(format string, args ...interface{}) {
	Print(fmt.Sprintf(format, args...) + "\n")
}
