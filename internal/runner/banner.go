package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
     __              _ _____ __
  __/ /__ ____ ___ (_) _(_) /__
 / __/ / _ '(_-<(_-< / _/ / / -_)
 \__/_/\_,_/___/___/_/_//_/_/\__/
`

var version = "v0.1.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
}

// GetUpdateCallback returns a callback function that updates classifile
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("classifile", version)()
	}
}
