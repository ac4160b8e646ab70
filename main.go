package main

import "github.com/user/promptgen/cmd"

func main() {
	cmd.Execute()
}
