package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// aliasFlags lets alternative spellings resolve to a registered flag, so
// --desc works wherever --description does.
func aliasFlags(aliases map[string]string, cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		flags := cmd.Flags()
		normalize := flags.GetNormalizeFunc()
		flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
			if canonical, ok := aliases[name]; ok {
				name = canonical
			}
			return normalize(f, name)
		})
	}
}
