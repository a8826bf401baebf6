package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
)

type progress struct {
	bar *progressbar.ProgressBar
}

func newProgress() *progress {
	return &progress{
		bar: progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("Starting..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowBytes(false),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		),
	}
}

func (p *progress) Update(status string) {
	p.bar.Describe(fmt.Sprintf("[cyan]%s[reset]", status))
	p.bar.Add(1)
}

func (p *progress) Clear() {
	p.bar.Clear()
}
