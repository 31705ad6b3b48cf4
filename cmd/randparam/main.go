// Package main implements the randparam CLI.
package main

func main() {
	Execute()
}
