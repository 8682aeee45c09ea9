package main

import "github.com/pyoushmadan10/chatify/cmd/chatify-cli/cmd"

func main() {
	cmd.Execute()
}
