package main

import "github.com/jsphweid/notation/cmd"

func main() {
	cmd.Execute()
}
