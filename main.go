package main

import (
	"github.com/samber/lo"
	"github.com/yleguide/yleguide/cmd"
	"github.com/yleguide/yleguide/config"
	"github.com/yleguide/yleguide/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	cmd.Execute()
}
