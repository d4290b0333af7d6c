// Package flagx lets several independent flag sets share one command line.
// Each consumer picks out only the flags it owns, so the config loader and
// the REPL can parse os.Args without tripping over each other's flags.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs keeps only the flags listed in owned, together with their values.
//
// Both "-f value" and "-f=value" forms are recognised. A token that follows an
// owned flag is taken as its value unless it starts with "-".
func FilterArgs(args []string, owned []string) []string {
	set := make(map[string]bool, len(owned))
	for _, f := range owned {
		set[f] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		if name, _, found := strings.Cut(arg, "="); found {
			if set[name] {
				out = append(out, arg)
			}
			continue
		}
		if !set[arg] {
			continue
		}
		out = append(out, arg)
		if next := i + 1; next < len(args) && !strings.HasPrefix(args[next], "-") {
			out = append(out, args[next])
			i = next
		}
	}
	return out
}

// ConfigFileFlag returns the config file path given with -c or -config, or an
// empty string when neither is present. The last occurrence wins.
func ConfigFileFlag(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
