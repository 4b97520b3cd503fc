package main

func main() {
	NewRootCommand().Execute()
}
