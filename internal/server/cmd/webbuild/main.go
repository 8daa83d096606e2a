// Command webbuild bundles the debug viewer into web/client.js, which the
// server embeds. Run it from internal/server via go generate.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/evanw/esbuild/pkg/api"
)

func main() {
	minify := flag.Bool("minify", false, "minify the bundle")
	sourcemap := flag.Bool("sourcemap", true, "inline a source map")
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("getwd: %v", err)
	}

	entry := filepath.Join(wd, "web", "src", "main.ts")
	out := filepath.Join(wd, "web", "client.js")
	if _, err := os.Stat(entry); err != nil {
		log.Fatalf("viewer entry point: %v", err)
	}

	maps := api.SourceMapNone
	if *sourcemap {
		maps = api.SourceMapInline
	}

	result := api.Build(api.BuildOptions{
		EntryPoints:       []string{entry},
		Outfile:           out,
		AbsWorkingDir:     wd,
		Bundle:            true,
		Format:            api.FormatIIFE,
		Target:            api.ES2018,
		Platform:          api.PlatformBrowser,
		LogLevel:          api.LogLevelInfo,
		Sourcemap:         maps,
		MinifyWhitespace:  *minify,
		MinifyIdentifiers: *minify,
		MinifySyntax:      *minify,
		Write:             true,
		Banner:            map[string]string{"js": "// encounter engine debug viewer (generated)"},
		Loader: map[string]api.Loader{
			".ts": api.LoaderTS,
		},
	})
	if len(result.Errors) > 0 {
		for _, message := range result.Errors {
			log.Printf("esbuild error: %s", message.Text)
		}
		log.Fatalf("esbuild failed with %d error(s)", len(result.Errors))
	}
	log.Printf("wrote %s", out)
}
