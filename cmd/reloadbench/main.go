package main

import (
	"os"
	"time"

	"github.com/extkit/reloadbench"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	pageFlag       string
	mockFlag       string
	iterationsFlag int
	selectorFlag   string
	timeoutFlag    time.Duration
	headlessFlag   bool
	reportFlag     string

	rootCmd = &cobra.Command{
		Use:   "reloadbench",
		Short: "Measure page-reload latency of a local HTML file in a headless browser",
		Long: `reloadbench launches a headless browser, injects a mock of the
extension host API, then times how long a full reload of the target
page takes until its table is rendered. It prints one line per
iteration and the average.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := reloadbench.New().
				Page(pageFlag).
				Mock(mockFlag).
				Iterations(iterationsFlag).
				Selector(selectorFlag).
				Timeout(timeoutFlag).
				Headless(headlessFlag).
				Output(cmd.OutOrStdout()).
				Run()
			if err != nil {
				return err
			}

			if reportFlag != "" {
				report, err := res.Report()
				if err != nil {
					return err
				}
				if err := os.WriteFile(reportFlag, []byte(report), 0o644); err != nil {
					return err
				}
				logrus.WithField("path", reportFlag).Info("report written")
			}
			return nil
		},
	}
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&pageFlag, "page", "", "target HTML file (default manage.html next to the executable)")
	flags.StringVar(&mockFlag, "mock", "", "mock init script (default mock_chrome.js next to the executable)")
	flags.IntVar(&iterationsFlag, "iterations", reloadbench.DefaultIterations, "number of timed reloads")
	flags.StringVar(&selectorFlag, "selector", reloadbench.DefaultSelector, "CSS selector that marks the page as rendered")
	flags.DurationVar(&timeoutFlag, "timeout", reloadbench.DefaultTimeout, "budget for each navigation and wait step")
	flags.BoolVar(&headlessFlag, "headless", true, "run the browser headless")
	flags.StringVar(&reportFlag, "report", "", "write a JSON summary to this path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
