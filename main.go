package main

import "github.com/kamusis/prodfinder/cmd"

func main() {
	cmd.Execute()
}
