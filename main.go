// WorkHub CLI is a tool for command-line administration of a WorkHub server.
package main

import "github.com/sa67/workhub-cli/cmd"

func main() {
	cmd.Run()
}
