package utils

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
)

var loadingSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)

func DrawBanner() {
	banner := figure.NewColorFigure("Instance Advisor", "", "cyan", true)
	banner.Print()
}

func StartSpinner() {
	loadingSpinner.Suffix = " Ranking offers..."
	loadingSpinner.Start()
}

func StopSpinner() {
	loadingSpinner.Stop()
}
