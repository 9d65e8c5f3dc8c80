// Package yamlutil fills a flag set from a YAML document, so the
// zcat CLI can keep its defaults in a config file. A flag named
// window-bits is looked up under the key WINDOW_BITS; values pass
// through each flag's own Set method, so YAML-sourced settings get
// the same domain validation as command-line ones.
package yamlutil

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

// SetFlagsFromYaml sets every flag in fs that was not already set on
// the command line and has a matching key in rawYaml. Command-line
// values always win. Invalid values are collected and reported
// together, one clause per offending key.
func SetFlagsFromYaml(fs *flag.FlagSet, rawYaml []byte) error {
	conf := make(map[string]string)
	if err := yaml.Unmarshal(rawYaml, conf); err != nil {
		return err
	}

	fromCommandLine := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		fromCommandLine[f.Name] = true
	})

	var bad []string
	fs.VisitAll(func(f *flag.Flag) {
		if f.Name == "" || fromCommandLine[f.Name] {
			return
		}
		val, ok := conf[configKey(f.Name)]
		if !ok {
			return
		}
		if err := fs.Set(f.Name, val); err != nil {
			bad = append(bad, fmt.Sprintf("%s: invalid value %q (%v)", configKey(f.Name), val, err))
		}
	})
	if len(bad) > 0 {
		sort.Strings(bad)
		return fmt.Errorf("config: %s", strings.Join(bad, "; "))
	}
	return nil
}

// configKey maps a flag name to its YAML key: upper-cased, with
// dashes turned into underscores.
func configKey(flagName string) string {
	return strings.Replace(strings.ToUpper(flagName), "-", "_", -1)
}
