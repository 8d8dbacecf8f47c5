package main

import "github.com/learnly/learnly-go/cmd/learnly/cmd"

func main() {
	cmd.Execute()
}
