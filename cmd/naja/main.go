package main

import "github.com/pathtonaja-debug/naja-sub002/cmd/naja/root"

func main() {
	root.Execute()
}
