package main

import "github.com/mouse-blink/minefield/cmd"

func main() {
	cmd.Execute()
}
