// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"io"
	"os/exec"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

var outer = []string{
	"enchrev/internal/app", "enchrev/internal/appshell",
	"enchrev/internal/cli", "enchrev/internal/config", "enchrev/internal/logging",
	"enchrev/cmd/",
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "enchrev/...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := sonic.ConfigStd.NewDecoder(&out)

	bans := map[string][]string{
		"enchrev/internal/model": append([]string{
			"enchrev/internal/vanilla", "enchrev/internal/observation", "enchrev/internal/candidates",
			"enchrev/internal/engine", "enchrev/internal/pipeline", "enchrev/internal/state",
		}, outer...),
		"enchrev/internal/engine": append([]string{
			"enchrev/internal/writers", "enchrev/internal/replay", "enchrev/internal/table",
			"enchrev/pkg/api",
		}, outer...),
		"enchrev/internal/pipeline": append([]string{
			"enchrev/internal/engine", "enchrev/internal/model",
		}, outer...),
		"enchrev/internal/replay":  append([]string{"enchrev/internal/engine", "enchrev/internal/pipeline"}, outer...),
		"enchrev/internal/writers": append([]string{"enchrev/internal/pipeline"}, outer...),
		"enchrev/internal/table":   append([]string{"enchrev/internal/engine", "enchrev/internal/pipeline"}, outer...),
		"enchrev/pkg/api":          {"enchrev/internal/"},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "enchrev/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if imp != prefix {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
