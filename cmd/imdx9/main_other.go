//go:build !windows

package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/esimov/imdx9/utils"
)

func main() {
	log.SetFlags(0)

	if _, err := parseOptions(os.Args[1:], os.Stderr); err != nil {
		os.Exit(exitCode(err))
	}
	fmt.Fprint(os.Stderr, utils.DecorateText(
		fmt.Sprintf("\nDirect3D 9 is not available on %s, the example requires Windows.\n", runtime.GOOS),
		utils.ErrorMessage,
	))
	os.Exit(1)
}
