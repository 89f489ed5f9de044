package docgen

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/goliatone/go-checkdocs/internal/catalog"
)

// example is one matched sample source file, content included.
type example struct {
	Name    string
	Content string
}

// listExamples locates sample files for the record under the example tree.
// The record's example directory is derived from its qualified id; a missing
// directory is an expected condition (not every check ships examples) and
// yields no examples. Read failures are fatal.
func listExamples(fsys fs.FS, record *catalog.Record) ([]example, error) {
	if fsys == nil {
		return nil, nil
	}

	dir := record.ExamplePath()
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, ioError(dir, err)
	}

	pattern, err := regexp.Compile("^" + regexp.QuoteMeta(record.ShortName()) + `(Positive|Negative)Case.*$`)
	if err != nil {
		return nil, fmt.Errorf("docgen: compile example pattern for %s: %w", record.ShortName(), err)
	}

	var examples []example
	for _, entry := range entries {
		if entry.IsDir() || !pattern.MatchString(entry.Name()) {
			continue
		}
		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, ioError(path.Join(dir, entry.Name()), err)
		}
		examples = append(examples, example{Name: entry.Name(), Content: string(content)})
	}

	// Directory order is filesystem-dependent; sorted names keep output stable.
	sort.Slice(examples, func(i, j int) bool {
		return examples[i].Name < examples[j].Name
	})

	return examples, nil
}

// appendExamples writes the Examples section for the matched files, each
// wrapped in the configured code block style.
func appendExamples(page *strings.Builder, examples []example, usePygments bool) {
	if len(examples) == 0 {
		return
	}

	page.WriteString("\n----------\n\n")
	page.WriteString("# Examples\n")

	for _, ex := range examples {
		page.WriteString("__" + ex.Name + "__\n\n")
		if usePygments {
			page.WriteString("{% highlight java %}\n")
		} else {
			page.WriteString("```java\n")
		}
		page.WriteString(ex.Content + "\n")
		if usePygments {
			page.WriteString("{% endhighlight %}\n")
		} else {
			page.WriteString("```\n")
		}
		page.WriteString("\n")
	}
}
