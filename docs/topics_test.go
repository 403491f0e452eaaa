package docs

import (
	"bufio"
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	bashSetup    = "bash setup"
	bashRun      = "bash run"
	consoleCheck = "console check"
	bashCheck    = "bash check"
)

// prelude is prepended to every bash block. fails succeeds only when its
// command fails.
const prelude = `set -e
fails() { if "$@"; then echo "unexpected success: $*" >&2; return 1; fi; }
`

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md must exist and every topic must be
	// listed.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); m != nil {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range listed {
		if _, err := Topic(topic); err != nil {
			t.Errorf("Topic(%q) failed: %v", topic, err)
		}
	}
	if got := Topics(); !slices.Equal(got, listed) {
		t.Errorf("Topics() = %v, readme.md lists %v", got, listed)
	}
}

func TestJoin(t *testing.T) {
	all, err := Join("*")
	if err != nil {
		t.Fatalf("Join(*) failed: %v", err)
	}
	for _, topic := range Topics() {
		content, _ := Topic(topic)
		if !strings.Contains(all, content) {
			t.Errorf("Join(*) misses topic %q", topic)
		}
	}
	if _, err := Join("ledger", "nope"); err == nil {
		t.Error("Join() with an unknown topic should fail")
	}
}

func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	mmDir := buildMM(t)
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			runBlocks(t, mmDir, file)
		})
	}
}

// Block is a fenced code block of a markdown file.
type Block struct {
	Type    string
	Content string
	File    string
	Line    int
}

// buildMM builds the mm executable and returns the directory holding it.
func buildMM(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	build := exec.Command("go", "build", "-o", filepath.Join(dir, "mm"), "../mm/")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("failed to build mm command: %v\n%s", err, out)
	}
	return dir
}

// parseMarkdown returns the testable blocks of a markdown file.
func parseMarkdown(t *testing.T, file string) []*Block {
	t.Helper()
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	var blocks []*Block
	root := goldmark.DefaultParser().Parse(text.NewReader(content))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		lang := string(fcb.Info.Segment.Value(content))
		switch lang {
		case bashCheck, bashSetup, bashRun, consoleCheck:
		default:
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			b.Write(line.Value(content))
		}
		blocks = append(blocks, &Block{
			Type:    lang,
			Content: b.String(),
			File:    file,
			Line:    bytes.Count(content[:fcb.Info.Segment.Start], []byte{'\n'}) + 1,
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// blockRunner runs the blocks of a file in sequence.
type blockRunner struct {
	env            []string
	previousOutput string
	dir            string
}

func (r *blockRunner) runBlock(t *testing.T, block *Block) {
	t.Helper()

	if block.Type == consoleCheck {
		want := strings.TrimSpace(block.Content)
		got := strings.TrimSpace(r.previousOutput)
		if want != got {
			t.Errorf("%s:%d: output mismatch:\ngot:\n\n%s\n\nwant:\n\n%s\n", block.File, block.Line, got, want)
		}
		return
	}
	// each setup starts a new scenario
	if block.Type == bashSetup {
		r.dir = t.TempDir()
	}

	cmd := exec.Command("bash", "-c", prelude+block.Content)
	cmd.Dir = r.dir
	cmd.Env = r.env
	output, err := cmd.CombinedOutput()
	if block.Type == bashRun {
		r.previousOutput = string(output)
	}
	if err == nil {
		return
	}
	if block.Type == bashCheck {
		t.Errorf("%s:%d: %s failed: %v with output:\n%s\n", block.File, block.Line, block.Type, err, output)
		return
	}
	t.Fatalf("%s:%d: %s failed: %v with output:\n%s\n", block.File, block.Line, block.Type, err, output)
}

// runBlocks executes the scenarios of a markdown file.
func runBlocks(t *testing.T, mmDir, file string) {
	t.Helper()
	blocks := parseMarkdown(t, file)
	if len(blocks) == 0 {
		return
	}

	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "MM_") && !strings.HasPrefix(kv, "PATH=") {
			env = append(env, kv)
		}
	}
	env = append(env,
		"PATH="+mmDir+string(os.PathListSeparator)+os.Getenv("PATH"),
		"MM_PLAIN=true",
		"MM_TODAY=2025-07-10",
	)

	r := blockRunner{env: env, dir: t.TempDir()}
	for _, block := range blocks {
		r.runBlock(t, block)
	}
}
