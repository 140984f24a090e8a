package main

import "turf-booking/cmd"

func main() {
	cmd.Execute()
}
