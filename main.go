package main

import "github.com/quillan/threadline/cmd"

func main() {
	cmd.Execute()
}
