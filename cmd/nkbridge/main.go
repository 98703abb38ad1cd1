package main

import (
	"os"

	"github.com/keharriso/love-nuklear/cmd/nkbridge/commands"
)

const version = "0.1.0"

func main() {
	if err := commands.Execute(version); err != nil {
		os.Exit(1)
	}
}
