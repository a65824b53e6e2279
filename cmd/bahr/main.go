// Command bahr is the scanner's command-line front end: a one-shot scan
// mode for scripting and an interactive REPL for exploring a line's
// possible metrical readings.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/bahr/config"
	"github.com/npillmayer/bahr/scan"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace { return tracing.Select("bahr.cmd") }

func main() {
	pterm.Info.Prefix = pterm.Prefix{Text: "  bahr", Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)}
	pterm.Error.Prefix = pterm.Prefix{Text: "  error", Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack)}

	configPath := flag.String("config", "", "path to a scanner YAML document (required)")
	showFeet := flag.Bool("feet", false, "insert foot separators into scan output")
	firstOnly := flag.Bool("first", false, "stop at the first accepting scan")
	tlevel := flag.String("trace", "Info", "trace level [Debug|Info|Error]")
	flag.Parse()

	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	if *configPath == "" {
		pterm.Error.Println("missing -config")
		os.Exit(2)
	}
	f, err := os.Open(*configPath)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	doc, err := config.LoadScanner(f)
	f.Close()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	scanner, err := config.BuildScanner(doc)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}

	opts := scan.Options{FirstOnly: *firstOnly, ShowFeet: *showFeet}

	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		runOne(scanner, input, opts)
		return
	}
	repl(scanner, opts)
}

// runOne scans a single line and renders its readings as a pterm table.
func runOne(scanner *scan.Scanner, input string, opts scan.Options) {
	results, err := scanner.Scan(input, opts)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	renderResults(input, results)
}

func renderResults(input string, results []scan.ScanResult) {
	if len(results) == 0 {
		pterm.Warning.Printfln("no meter matches %q", input)
		return
	}
	rows := pterm.TableData{{"meter", "scan", "cost"}}
	for _, r := range results {
		rows = append(rows, []string{r.MeterName, r.Scan, fmt.Sprintf("%d", r.Cost)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// repl opens an interactive readline session; each line entered is scanned
// immediately and its readings printed, exactly as trepl.REPL evaluates one
// s-expression per line.
func repl(scanner *scan.Scanner, opts scan.Options) {
	rl, err := readline.New("bahr> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	defer rl.Close()
	pterm.Info.Println("Quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on ctrl-D
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		results, err := scanner.Scan(line, opts)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		renderResults(line, results)
	}
	pterm.Info.Println("Good bye!")
}
