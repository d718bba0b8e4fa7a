package main

import "github.com/scamintel/scamintel/cmd"

func main() {
	cmd.Execute()
}
