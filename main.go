package main

import "mccwk.com/poet/cmd"

func main() {
	cmd.Execute()
}
