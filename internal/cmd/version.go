package cmd

import "fmt"

// VersionCmd prints build information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(cli *CLI) error {
	fmt.Println(cli.versionInfo)
	return nil
}
