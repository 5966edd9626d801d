package main

import "github.com/evosim/evosim/cmd"

func main() {
	cmd.Execute()
}
