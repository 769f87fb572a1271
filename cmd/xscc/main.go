// Command xscc is the xsc shader cross-compiler CLI: it drives the
// reference analyzer, converter, and GLSL code generator over a fixture
// Program (see ast/astutil; there is no HLSL parser in this tree) and
// writes the resulting GLSL/ESSL/VKSL source to a file or stdout.
//
// Usage:
//
//	xscc [options] <fixture>
//
// Examples:
//
//	xscc -T vert -E VertexMain vertex_minimal          # compile to stdout
//	xscc -T frag -Vout GLSL130 -o out.glsl fragment_minimal
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/xsc/ast"
	"github.com/gogpu/xsc/ast/astutil"
	"github.com/gogpu/xsc/convert"
	"github.com/gogpu/xsc/glslgen"
	"github.com/gogpu/xsc/refanalyzer"
	"github.com/gogpu/xsc/report"
)

const xsccVersion = "0.1.0-dev"

var (
	entry      = flag.String("E", "", "primary entry point name (default: the fixture's own entry)")
	entry2     = flag.String("E2", "", "secondary entry point name, compiled concurrently with the primary")
	target     = flag.String("T", "", "target stage: vert|tesc|tese|geom|frag|comp (default: the fixture's own stage)")
	versionIn  = flag.String("Vin", "HLSL5", "input dialect/version: HLSL3|HLSL4|HLSL5|GLSL|ESSL|VKSL")
	versionOut = flag.String("Vout", "GLSL330", "output version: GLSL110..450|ESSL100|300|310|320|VKSL450")
	output     = flag.String("o", "", "output file pattern ('*' expands to <FIXTURE>.<ENTRY>.<TARGET>); empty writes to stdout")
	comments   = flag.String("comments", "ON", "ON|OFF: emit the banner/timestamp header comment")
	extension  = flag.String("extension", "ON", "ON|OFF: allow #extension directives below the requested version")
	showVer    = flag.Bool("version", false, "print version")
)

var includePaths stringList

type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }
func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func init() {
	flag.Var(&includePaths, "I", "include search path (repeatable; accepted for driver-surface parity, unused without a preprocessor)")
}

// Exit codes per the driver's external interface: 0 success, 1 diagnostic
// error, 2 I/O error, 3 usage error.
const (
	exitSuccess = 0
	exitDiag    = 1
	exitIO      = 2
	exitUsage   = 3
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *showVer {
		fmt.Printf("xscc version %s\n", xsccVersion)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input fixture specified")
		usage()
		os.Exit(exitUsage)
	}
	fixtureName := args[0]

	if *target != "" {
		if _, err := parseStage(*target); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitUsage)
		}
	}

	version, err := parseVersion(*versionOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	opts := glslgen.DefaultOptions()
	opts.Version = version
	opts.Extensions = onOff(*extension, true)
	opts.Formatting.Commentaries = onOff(*comments, true)

	type result struct {
		label  string
		source string
	}

	n := 1
	if *entry2 != "" {
		n = 2
	}
	// Each slot is written by exactly one goroutine, so no lock is needed
	// even though both run concurrently via errgroup.
	results := make([]result, n)

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		src, name, err := compileEntry(fixtureName, *target, *entry, opts)
		if err != nil {
			return err
		}
		results[0] = result{label: name, source: src}
		return nil
	})

	if *entry2 != "" {
		g.Go(func() error {
			src, name, err := compileEntry(fixtureName, *target, *entry2, opts)
			if err != nil {
				return err
			}
			results[1] = result{label: name, source: src}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Compilation error: %v\n", err)
		os.Exit(exitDiag)
	}

	for _, r := range results {
		if err := writeResult(fixtureName, r.label, r.source); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(exitIO)
		}
	}
}

// compileEntry loads its own copy of the fixture (astutil.Builder always
// returns a fresh *ast.Program) so the primary and secondary passes launched
// by main never share mutable state, even though they run concurrently over
// what is conceptually "the same" input. It returns the GLSL source and the
// name of the entry point it compiled.
func compileEntry(fixtureName, targetFlag, entryOverride string, opts glslgen.Options) (string, string, error) {
	fx, err := astutil.Load(fixtureName)
	if err != nil {
		return "", "", err
	}
	stage := fx.Stage
	if targetFlag != "" {
		if s, parseErr := parseStage(targetFlag); parseErr == nil {
			stage = s
		}
	}

	entryName := entryOverride
	if entryName == "" {
		entryName = fx.Entry
	}
	fn := findFunction(fx.Program, entryName)
	if fn == nil {
		return "", "", fmt.Errorf("entry point %q not found in fixture %q", entryName, fixtureName)
	}
	fn.IsEntryPoint = true
	fx.Program.EntryPointRef = fn

	sink := &report.Sink{}

	analyzer := refanalyzer.New(sink)
	if rep := analyzer.Analyze(fx.Program); rep != nil {
		return "", "", rep
	}

	conv := convert.New(stage, opts.Version.Number, sink)
	conv.Convert(fx.Program)

	bindings := conv.PromoteEntryPoint(fx.Program, fn)
	source := glslgen.Generate(fx.Program, stage, bindings, conv.ClipHelpers(), opts, sink)

	if sink.HasErrors() {
		var b strings.Builder
		for _, rep := range sink.Reports() {
			if rep.Severity == report.SeverityError {
				fmt.Fprintln(&b, rep.Error())
			}
		}
		return "", "", fmt.Errorf("%s", strings.TrimSpace(b.String()))
	}

	return source, entryName, nil
}

func findFunction(program *ast.Program, name string) *ast.FunctionDecl {
	for _, s := range program.GlobalStmnts {
		if fn, ok := s.(*ast.FunctionDecl); ok && fn.Ident == name {
			return fn
		}
	}
	return nil
}

// writeResult implements the '-o' pattern: a literal '*' expands to
// "<FIXTURE>.<ENTRY>.<TARGET>"; an empty pattern writes to stdout.
func writeResult(fixtureName, label, source string) error {
	pattern := *output
	if pattern == "" {
		_, err := fmt.Println(source)
		return err
	}
	path := strings.ReplaceAll(pattern, "*", fmt.Sprintf("%s.%s.%s", fixtureName, label, *target))
	return os.WriteFile(path, []byte(source), 0644)
}

func parseStage(s string) (ast.Stage, error) {
	switch s {
	case "vert":
		return ast.StageVertex, nil
	case "tesc":
		return ast.StageTessControl, nil
	case "tese":
		return ast.StageTessEvaluation, nil
	case "geom":
		return ast.StageGeometry, nil
	case "frag":
		return ast.StageFragment, nil
	case "comp":
		return ast.StageCompute, nil
	default:
		return ast.StageVertex, fmt.Errorf("unknown -T target %q (want vert|tesc|tese|geom|frag|comp)", s)
	}
}

// parseVersion recognizes GLSL110..GLSL450, ESSL100|300|310|320, and VKSL450.
func parseVersion(s string) (glslgen.Version, error) {
	switch {
	case strings.HasPrefix(s, "GLSL"):
		n, err := strconv.Atoi(strings.TrimPrefix(s, "GLSL"))
		if err != nil {
			return glslgen.Version{}, fmt.Errorf("bad -Vout %q: %v", s, err)
		}
		return glslgen.Version{Profile: glslgen.ProfileGLSL, Number: n}, nil
	case strings.HasPrefix(s, "ESSL"):
		n, err := strconv.Atoi(strings.TrimPrefix(s, "ESSL"))
		if err != nil {
			return glslgen.Version{}, fmt.Errorf("bad -Vout %q: %v", s, err)
		}
		return glslgen.Version{Profile: glslgen.ProfileESSL, Number: n}, nil
	case s == "VKSL450":
		return glslgen.VKSL450, nil
	default:
		return glslgen.Version{}, fmt.Errorf("unrecognized -Vout %q", s)
	}
}

func onOff(s string, def bool) bool {
	switch strings.ToUpper(s) {
	case "ON":
		return true
	case "OFF":
		return false
	default:
		return def
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: xscc [options] <fixture>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  xscc -T vert -E VertexMain vertex_minimal\n")
	fmt.Fprintf(os.Stderr, "  xscc -T frag -Vout GLSL130 -o out.glsl fragment_minimal\n")
}
