package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/fzft/go-genset/cmd"
	"github.com/fzft/go-genset/log"
)

func main() {
	cfg, err := cmd.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(os.Stderr)
		os.Exit(1)
	}
	if cfg.ShowHelp {
		cmd.Usage(os.Stdout)
		return
	}
	cfg.AppVersion = FullVersion()
	if cfg.ShowVersion {
		fmt.Println("genset " + FullVersion())
		return
	}

	if err := log.InitLogger(cfg.Quiet); err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	defer log.Logger.Sync()

	cli := cmd.NewCli(cfg)
	if cfg.ScriptFile != "" {
		if errs := cli.RunScript(cfg.ScriptFile); len(errs) > 0 {
			log.Logger.Error("script failed", zap.Error(MultiError(errs)))
			os.Exit(1)
		}
		return
	}
	if err := cli.Run(); err != nil {
		log.Logger.Error("shell terminated", zap.Error(err))
		os.Exit(1)
	}
}
