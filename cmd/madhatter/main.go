package main

import "github.com/madhatterpub/site/cmd/madhatter/cmd"

func main() {
	cmd.Execute()
}
