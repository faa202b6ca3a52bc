package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"text/template"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/go/ast/astutil"
)

const modulePath = "github.com/madhatterpub/site"

var moduleNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

var newModuleCmd = &cobra.Command{
	Use:   "new-module <name>",
	Short: "Scaffold a new site module",
	Long: `Create internal/modules/<name> with a module and a handler, then register
it in internal/app/modules.go and internal/app/dependencies.go.

Run it from the repository root. Module names are lowercase letters and
digits; the name is also the route prefix.

Examples:
  madhatter new-module events`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := os.Getwd()
		if err != nil {
			return err
		}
		if err := scaffoldModule(root, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Created module '%s' in internal/modules/%s/ and registered it in internal/app\n", args[0], args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newModuleCmd)
}

type templateData struct {
	Name       string
	PascalName string
	ModulePath string
}

// scaffoldModule generates the module below root and wires it into the app.
func scaffoldModule(root, name string) error {
	if !moduleNamePattern.MatchString(name) {
		return fmt.Errorf("invalid module name %q: use lowercase letters and digits", name)
	}
	data := templateData{
		Name:       name,
		PascalName: cases.Title(language.English).String(name),
		ModulePath: modulePath,
	}

	moduleDir := filepath.Join(root, "internal", "modules", name)
	if _, err := os.Stat(moduleDir); err == nil {
		return fmt.Errorf("module %s already exists", name)
	}
	if err := os.MkdirAll(moduleDir, 0o755); err != nil {
		return fmt.Errorf("failed to create module directory: %w", err)
	}
	if err := generateFile(filepath.Join(moduleDir, "module.go"), moduleTemplate, data); err != nil {
		return err
	}
	if err := generateFile(filepath.Join(moduleDir, "handler.go"), handlerTemplate, data); err != nil {
		return err
	}

	return errors.Join(
		updateModulesFile(filepath.Join(root, "internal", "app", "modules.go"), name),
		updateDependenciesFile(filepath.Join(root, "internal", "app", "dependencies.go"), name),
	)
}

func generateFile(path string, tmpl string, data templateData) error {
	t, err := template.New("").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format %s: %w", path, err)
	}
	return os.WriteFile(path, src, 0o644)
}

// updateModulesFile appends <name>.New(<name>Deps(deps)) to the slice
// returned by NewModules.
func updateModulesFile(path, name string) error {
	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	astutil.AddImport(fset, node, modulePath+"/internal/modules/"+name)

	found := false
	ast.Inspect(node, func(n ast.Node) bool {
		fn, ok := n.(*ast.FuncDecl)
		if !ok || fn.Name.Name != "NewModules" {
			return true
		}
		ast.Inspect(fn.Body, func(n ast.Node) bool {
			ret, ok := n.(*ast.ReturnStmt)
			if !ok || len(ret.Results) == 0 {
				return true
			}
			compLit, ok := ret.Results[0].(*ast.CompositeLit)
			if !ok {
				return false
			}
			compLit.Elts = append(compLit.Elts, &ast.CallExpr{
				Fun:  &ast.SelectorExpr{X: ast.NewIdent(name), Sel: ast.NewIdent("New")},
				Args: []ast.Expr{&ast.CallExpr{Fun: ast.NewIdent(name + "Deps"), Args: []ast.Expr{ast.NewIdent("deps")}}},
			})
			found = true
			return false
		})
		return false
	})
	if !found {
		return fmt.Errorf("no NewModules return statement in %s", path)
	}
	return writeASTToFile(fset, node, path)
}

// updateDependenciesFile adds the <name>Deps helper.
func updateDependenciesFile(path, name string) error {
	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	astutil.AddImport(fset, node, modulePath+"/internal/modules/"+name)

	depsType := &ast.SelectorExpr{X: ast.NewIdent(name), Sel: ast.NewIdent("Dependencies")}
	node.Decls = append(node.Decls, &ast.FuncDecl{
		Name: ast.NewIdent(name + "Deps"),
		Type: &ast.FuncType{
			Params: &ast.FieldList{List: []*ast.Field{
				{Names: []*ast.Ident{ast.NewIdent("deps")}, Type: ast.NewIdent("Dependencies")},
			}},
			Results: &ast.FieldList{List: []*ast.Field{{Type: depsType}}},
		},
		Body: &ast.BlockStmt{List: []ast.Stmt{
			&ast.ReturnStmt{Results: []ast.Expr{
				&ast.CompositeLit{
					Type: &ast.SelectorExpr{X: ast.NewIdent(name), Sel: ast.NewIdent("Dependencies")},
					Elts: []ast.Expr{&ast.KeyValueExpr{
						Key:   ast.NewIdent("Metrics"),
						Value: &ast.SelectorExpr{X: ast.NewIdent("deps"), Sel: ast.NewIdent("Metrics")},
					}},
				},
			}},
		}},
	})
	return writeASTToFile(fset, node, path)
}

func writeASTToFile(fset *token.FileSet, node *ast.File, filename string) error {
	var buf bytes.Buffer
	if err := format.Node(&buf, fset, node); err != nil {
		return fmt.Errorf("failed to format AST: %w", err)
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write to file %s: %w", filename, err)
	}
	return nil
}

const moduleTemplate = `package {{.Name}}

import (
	"context"

	"github.com/labstack/echo/v4"
	"{{.ModulePath}}/internal/metrics"
	"{{.ModulePath}}/internal/module"
	"{{.ModulePath}}/internal/registry"
)

// Dependencies holds what the {{.Name}} module needs from the application.
type Dependencies struct {
	Metrics *metrics.SiteMetrics
}

// Module serves the {{.Name}} routes.
type Module struct {
	module.BaseModule
	deps Dependencies
}

// New creates the {{.Name}} module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string {
	return "{{.Name}}"
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error {
	handler := NewHandler(registry.MustGet(reg, registry.ContentStoreKey))
	group.GET("", handler.Get)
	return nil
}
`

const handlerTemplate = `package {{.Name}}

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"{{.ModulePath}}/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Handler serves the {{.Name}} fragment.
type Handler struct {
	store *content.Store
}

// NewHandler creates a new {{.Name}} Handler.
func NewHandler(store *content.Store) *Handler {
	return &Handler{store: store}
}

// Get renders the {{.Name}} fragment.
func (h *Handler) Get(c echo.Context) error {
	return c.Render(http.StatusOK, "", Section(ID("{{.Name}}"), H2(g.Text("{{.PascalName}}"))))
}
`
