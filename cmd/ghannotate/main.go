package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/ghannotate/pkg/cli"
	"github.com/suzuki-shunsuke/ghannotate/pkg/ghactions"
	"github.com/suzuki-shunsuke/ghannotate/pkg/log"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var (
	version = ""
	commit  = "" //nolint:gochecknoglobals
	date    = "" //nolint:gochecknoglobals
)

func main() {
	logE := log.New(version)
	if err := core(logE); err != nil {
		if os.Getenv("GITHUB_ACTIONS") == "true" {
			// make the failure visible in the workflow run summary
			_ = ghactions.Error(os.Stdout, err.Error())
		}
		logerr.WithError(logE, err).Fatal("ghannotate failed")
	}
}

func core(logE *logrus.Entry) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cli.Run(ctx, logE, &stdutil.LDFlags{ //nolint:wrapcheck
		Version: version,
		Commit:  commit,
		Date:    date,
	}, os.Args...)
}
