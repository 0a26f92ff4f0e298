package main

import (
	"fmt"
	"os"

	"github.com/philipp01105/nlogfacade/cmd/nlogdemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
