package main

import (
	"os"

	"normform/cmd"
)

func main() {
	err := cmd.ConvertCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
