package main

import "github.com/mouse-blink/splice/cmd"

func main() {
	cmd.Execute()
}
