package cli

import (
	"fmt"

	"github.com/diillson/aws-cost-alert-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(_ string) {
	banner := `
    ___        ______     ____          _       _    _           _
   / \ \      / / ___|   / ___|___  ___| |_    / \  | | ___ _ __| |_
  / _ \ \ /\ / /\___ \  | |   / _ \/ __| __|  / _ \ | |/ _ \ '__| __|
 / ___ \ V  V /  ___) | | |__| (_) \__ \ |_  / ___ \| |  __/ |  | |_
/_/   \_\_/\_/  |____/   \____\___/|___/\__|/_/   \_\_|\___|_|   \__|
`
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))
	fmt.Println(blue(fmt.Sprintf("AWS Cost Alert CLI (v%s)", version.FormatVersion())))
}
