// Package hanscan detects Han-script text inside source trees and rewrites
// it to English.
//
// Hanscan walks a repository, extracts translatable spans (comments,
// docstrings, string literals, identifiers) from source files, resolves the
// contained phrases against a phrase dictionary and a persistent translation
// map, routes unresolved phrases to an external translation provider, and
// rewrites the files with the translated text.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/hanscan/hanscan"
//	    "github.com/hanscan/hanscan/provider"
//	    "github.com/hanscan/hanscan/rewrite"
//	    "github.com/hanscan/hanscan/scanner"
//	    "github.com/hanscan/hanscan/store"
//	)
//
//	func main() {
//	    cfg := hanscan.DefaultConfig()
//
//	    p := hanscan.NewPipeline(cfg,
//	        hanscan.WithScanner(scanner.New(cfg)),
//	        hanscan.WithRewriter(rewrite.New(cfg)),
//	        hanscan.WithStore(store.NewFileStore("translation_map.json")),
//	        hanscan.WithProvider(provider.NewOpenAIProvider(provider.OpenAIConfig{
//	            APIKey: os.Getenv("OPENAI_API_KEY"),
//	        })),
//	    )
//
//	    report, err := p.Run(context.Background(), "./myproject")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("rewrote %d files\n", report.FilesChanged)
//	}
package hanscan
