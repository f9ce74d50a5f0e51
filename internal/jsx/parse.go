package jsx

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"unsafe"

	"github.com/alexaandru/go-sitter-forest/javascript"
	"github.com/alexaandru/go-sitter-forest/tsx"
	"github.com/alexaandru/go-sitter-forest/typescript"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

var (
	// ErrUnsupportedFile is returned for files whose extension has no grammar.
	ErrUnsupportedFile = errors.New("unsupported file type")

	errNoRootNode = errors.New("parser returned no root node")
	errPoolType   = errors.New("unexpected parser pool type")
)

// languageFuncs maps grammar names to their tree-sitter GetLanguage functions.
var languageFuncs = map[string]func() unsafe.Pointer{
	"javascript": javascript.GetLanguage,
	"tsx":        tsx.GetLanguage,
	"typescript": typescript.GetLanguage,
}

// extensions maps file extensions to grammar names. The javascript grammar
// parses JSX natively.
var extensions = map[string]string{
	".js":  "javascript",
	".jsx": "javascript",
	".mjs": "javascript",
	".cjs": "javascript",
	".tsx": "tsx",
	".ts":  "typescript",
	".mts": "typescript",
	".cts": "typescript",
}

var (
	languageCache sync.Map // grammar name -> *sitter.Language
	parserPools   sync.Map // grammar name -> *sync.Pool of *sitter.Parser
)

// Supported reports whether filename has an extension Parse understands.
func Supported(filename string) bool {
	_, ok := languageFor(filename)
	return ok
}

func languageFor(filename string) (string, bool) {
	name, ok := extensions[strings.ToLower(filepath.Ext(filename))]
	return name, ok
}

func getLanguage(name string) *sitter.Language {
	if cached, ok := languageCache.Load(name); ok {
		if lang, castOK := cached.(*sitter.Language); castOK {
			return lang
		}
	}

	fn, ok := languageFuncs[name]
	if !ok {
		return nil
	}

	lang := sitter.NewLanguage(fn())
	languageCache.Store(name, lang)

	return lang
}

func parserPool(name string) *sync.Pool {
	if pool, ok := parserPools.Load(name); ok {
		return pool.(*sync.Pool)
	}

	lang := getLanguage(name)
	pool := &sync.Pool{
		New: func() any {
			tsParser := sitter.NewParser()
			tsParser.SetLanguage(lang)

			return tsParser
		},
	}
	actual, _ := parserPools.LoadOrStore(name, pool)

	return actual.(*sync.Pool)
}

// Parse parses src with the grammar selected by filename's extension and
// converts the result into the package's node model. Syntax errors do not
// fail the parse: tree-sitter recovers and the broken region becomes an
// Other node of kind "ERROR".
func Parse(ctx context.Context, filename string, src []byte) (*Program, error) {
	name, ok := languageFor(filename)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, filename)
	}

	pool := parserPool(name)
	tsParser, ok := pool.Get().(*sitter.Parser)
	if !ok {
		return nil, errPoolType
	}
	defer pool.Put(tsParser)

	tree, err := tsParser.ParseString(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return nil, fmt.Errorf("parse %s: %w", filename, errNoRootNode)
	}

	c := converter{src: src}

	return c.program(root), nil
}
