// command pic3d runs the electromagnetic particle-in-cell simulator
// from a configuration file or a benchmark distribution designation.
package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ctessum/pic3d/internal/cli"
)

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func main() {
	if err := cli.Execute(); err != nil {
		logrus.WithError(err).Error("run failed")
		os.Exit(1)
	}
}
