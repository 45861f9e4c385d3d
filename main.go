package main

import "github.com/nikocevicstefan/term-chat/cmd"

func main() {
	cmd.Execute()
}
