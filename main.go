package main

import "twinpage/cmd"

func main() {
	cmd.Execute()
}
