package main

import (
	"os"
)

func main() {
	a := &app{}
	err := newRootCommand(a).Execute()
	if err != nil {
		a.log().Error("sheetplot failed", "error", err)
	}
	a.close()
	if err != nil {
		os.Exit(1)
	}
}
