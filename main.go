package main

import (
	"github.com/bioconductor-source/KinSwingR/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
