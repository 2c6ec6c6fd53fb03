package main

import (
	_ "github.com/joho/godotenv/autoload"

	cmd "github.com/kerbaras/anilist/cmd/anilist"
)

func main() {
	cmd.Execute()
}
