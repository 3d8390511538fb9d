package main

import (
	"os"
)

func main() {
	os.Exit(execute(newApp(os.Stdout, os.Stderr), os.Args[1:]))
}
