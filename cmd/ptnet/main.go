package main

import "github.com/jt05610/ptnet/cmd/ptnet/cmd"

func main() {
	cmd.Execute()
}
