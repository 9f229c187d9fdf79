package main

import "linen-tracker/cmd"

func main() {
	cmd.Execute()
}
