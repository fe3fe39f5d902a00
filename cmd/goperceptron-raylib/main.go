package main

import "github.com/philipparndt/goperceptron/cmd"

func main() {
	cmd.Execute()
}
