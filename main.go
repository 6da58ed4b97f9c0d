package main

import "github.com/bingetonic/bingetonic/cmd"

func main() {
	cmd.Execute()
}
