// Command symptrack is a terminal client for the SympTrack symptom checker.
package main

import "github.com/diogo/symptrack/internal/commands"

func main() {
	commands.Execute()
}
