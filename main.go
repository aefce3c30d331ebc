package main

import "github.com/averyhb/balancechat/cmd"

func main() {
	cmd.Execute()
}
