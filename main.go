package main

import (
	"github.com/jhowell728/fsb/cmd"

	_ "github.com/jhowell728/fsb/internal/platform/win32"
)

func main() {
	cmd.Execute()
}
