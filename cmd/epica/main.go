package main

import "github.com/lenticularis39/epica/cmd/epica/cmd"

func main() {
	cmd.Execute()
}
