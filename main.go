package main

import "github.com/valpere/randomly/cmd"

func main() {
	cmd.Execute()
}
