package main

import "github.com/retirecast/retirecast/cmd"

func main() {
	cmd.Execute()
}
