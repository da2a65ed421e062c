package main

import "ai_content_generator/cmd"

func main() {
	cmd.Execute()
}
