package main

import "github.com/callmegreg/gh-hulud-users/cmd"

func main() {
	cmd.Execute()
}
