package main

import "github.com/vanterra-net/mospfd/cmd"

func main() {
	cmd.Execute()
}
