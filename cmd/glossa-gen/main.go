// cmd/glossa-gen/main.go
//
// Headless generator. Coins words and sentences from a project's language
// without the TUI, for scripting and quick inspection.

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/miravel/glossa/internal/config"
	"github.com/miravel/glossa/internal/morphology"
	"github.com/miravel/glossa/internal/phonology"
	"github.com/miravel/glossa/internal/syntax"
)

func main() {
	wordCount := flag.Int("words", 10, "number of words to coin")
	syllables := flag.Int("syllables", 0, "syllables per word (0 = random 1-3)")
	sentences := flag.Int("sentences", 0, "number of sentences to build from the coined words")
	order := flag.String("order", "", "word order override (SVO, SOV, VSO)")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	projectDir := flag.String("project", "", "path to the project directory (defaults to cwd)")
	flag.Parse()

	project := *projectDir
	if project == "" {
		var err error
		project, err = os.Getwd()
		if err != nil {
			die("determine working directory: %v", err)
		}
	}
	absoluteProject, err := filepath.Abs(project)
	if err != nil {
		die("resolve project dir: %v", err)
	}
	if err := config.InitGlossaDir(absoluteProject); err != nil {
		die("init .glossa: %v", err)
	}
	cfg, err := config.NewConfig(absoluteProject)
	if err != nil {
		die("load config: %v", err)
	}

	source := *seed
	if source == 0 {
		source = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(source))

	phon := phonology.NewSystem(
		phonology.WithConsonants(cfg.Session.Language.Consonants),
		phonology.WithVowels(cfg.Session.Language.Vowels),
		phonology.WithPatterns(cfg.Session.Language.SyllablePatterns),
		phonology.WithMaxAttempts(cfg.Session.Generation.MaxAttempts),
		phonology.WithRand(r),
	)

	if *wordCount < 1 {
		die("--words must be at least 1")
	}
	words := make([]string, 0, *wordCount)
	for i := 0; i < *wordCount; i++ {
		word, err := phon.GenerateWord(*syllables)
		if err != nil {
			die("generate word: %v", err)
		}
		words = append(words, word)
	}
	morph := morphology.NewSystem()
	morphology.DefaultRules(morph)
	for _, word := range words {
		plural, err := morph.Apply(word, "plural")
		if err != nil {
			die("pluralize %q: %v", word, err)
		}
		fmt.Printf("%-14s %s\n", word, plural)
	}

	if *sentences <= 0 {
		return
	}
	syn := syntax.NewSystem()
	if strings.TrimSpace(*order) != "" {
		syn.SetWordOrder(*order)
	} else {
		syn.SetWordOrder(string(cfg.WordOrder()))
	}
	fmt.Printf("\nSentences (%s):\n", syn.WordOrder())
	for i := 0; i < *sentences; i++ {
		subject := words[r.Intn(len(words))]
		verb := words[r.Intn(len(words))]
		object := ""
		if len(words) > 1 {
			object = words[r.Intn(len(words))]
		}
		fmt.Printf("  %s\n", syn.Sentence(subject, verb, object))
	}
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
