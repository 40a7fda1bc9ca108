package git

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ignoreTemplates holds the static .gitignore bodies keyed by template name.
// Static content only; no logic lives here.
var ignoreTemplates = map[string]string{
	"Go": `# Binaries
*.exe
*.dll
*.so
*.dylib

# Test and coverage output
*.test
*.out
coverage.html

# Build output
bin/
dist/

# IDE files
.idea/
.vscode/
*.swp

# Environment
.env
`,
	"Python": `# Byte-compiled / optimized / DLL files
__pycache__/
*.py[cod]
*$py.class

# Distribution / packaging
dist/
build/
*.egg-info/

# Virtual environments
venv/
env/
.env/

# IDE files
.idea/
.vscode/
*.swp
*.swo

# Logs
*.log

# Local configuration
.env
`,
	"Node": `# Dependencies
node_modules/
npm-debug.log
yarn-error.log
yarn-debug.log

# Build
dist/
build/

# Environment variables
.env
.env.local
.env.development.local
.env.test.local
.env.production.local

# IDE
.idea/
.vscode/
*.swp
*.swo

# Logs
logs/
*.log

# OS
.DS_Store
Thumbs.db
`,
}

// IgnoreTemplateNames returns the known template names, sorted
func IgnoreTemplateNames() []string {
	names := make([]string, 0, len(ignoreTemplates))
	for name := range ignoreTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateIgnoreFile writes a .gitignore from the named template. An existing
// file is left untouched and reported as success; an unknown template name
// fails listing the known ones.
func (r *Repository) CreateIgnoreFile(template string) Result {
	if !r.isRepo {
		return Result{Ok: false, Message: notARepositoryMessage}
	}

	ignorePath := filepath.Join(r.path, ".gitignore")
	if _, err := os.Stat(ignorePath); err == nil {
		return Result{Ok: true, Message: ".gitignore already exists; leaving it as is"}
	}

	body, ok := ignoreTemplates[template]
	if !ok {
		return Result{Ok: false, Message: fmt.Sprintf("unknown .gitignore template %q; available: %s",
			template, strings.Join(IgnoreTemplateNames(), ", "))}
	}

	if err := os.WriteFile(ignorePath, []byte(body), 0644); err != nil {
		return Result{Ok: false, Message: fmt.Sprintf("failed to write .gitignore: %v", err)}
	}
	return Result{Ok: true, Message: fmt.Sprintf(".gitignore created from the %q template", template)}
}
