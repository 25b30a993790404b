package main

import "github.com/notargets/gofdtd/cmd"

func main() {
	cmd.Execute()
}
