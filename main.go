package main

import "primerd/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
