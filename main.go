package main

import dsnscout "github.com/dsnscout/dsnscout/cmd/dsnscout"

func main() {
	dsnscout.Execute()
}
