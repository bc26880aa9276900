package main

import "github.com/estagiotrack/estagio_backend/cmd"

func main() {
	cmd.Execute()
}
