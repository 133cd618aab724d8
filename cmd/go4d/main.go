package main

import "github.com/philipparndt/go4d/cmd"

func main() {
	cmd.Execute()
}
