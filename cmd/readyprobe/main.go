// Package main is the readyprobe command line entry point.
package main

func main() {
	Execute()
}
