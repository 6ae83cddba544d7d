package main

import "github.com/scribedesk/scribedesk/cmd/scribedesk/cmd"

func main() {
	cmd.Execute()
}
