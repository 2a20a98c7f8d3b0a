package resolver

import (
	"github.com/mna/oberesolve/lang/ast"
	"github.com/mna/oberesolve/lang/scope"
)

// ResolveModule implements spec §4.4's per-module pipeline: build the
// import-alias view of registry (the real-module-name-keyed export scopes
// resolved so far), open the module's top-level scope off the variant's
// predefined scope, resolve every declaration and the module body, and
// finally compute the module's own export scope.
//
// registry must already hold the export scope of every module mod.Imports
// names; an import of a module absent from registry surfaces as
// UnknownModule. ResolveModules is the caller that knows how to grow
// registry lazily across a batch, so a single ResolveModule call never
// needs mod's siblings to be given in any particular order.
func ResolveModule(variant Variant, registry map[ast.Ident]*scope.Scope, mode Mode, mod ast.Module) (*ast.ResolvedModule, *scope.Scope, *scope.Error) {
	imports, err := resolveImportAliases(registry, mod)
	if err != nil {
		return nil, nil, err
	}

	ctx := &Context{Modules: imports, Variant: variant, Mode: mode}

	predefined := variant.DefaultPredefined()
	if mode&NameBlocks != 0 {
		predefined.SetName("predefined")
	}

	declScope, placedDecls, errs := LocalScope(ctx, mod.Decls, predefined)
	if mode&NameBlocks != 0 {
		declScope.SetName("module " + string(mod.Name))
	}
	if err := errs.Err(); err != nil {
		errs.Sort()
		return nil, nil, scope.Wrap(scope.InvalidDeclaration, mod.NamePos, "module %s has unresolved declarations", errs, mod.Name)
	}

	stmts, serr := ResolveBlock(ctx, declScope, mod.Body)
	if serr != nil {
		return nil, nil, serr
	}

	exportScope := scope.Exported(declScope, accessOf(mod.Decls))
	rm := &ast.ResolvedModule{Name: mod.Name, Imports: mod.Imports, Decls: placedDecls, Body: stmts}
	return rm, exportScope, nil
}

// ResolveModules resolves a batch of modules against a lazily-populated
// module table (spec §4.4's Module Resolver, applied until the batch
// reaches a fixed point): repeated passes over the still-unresolved
// modules feed each pass's newly-completed export scopes into registry, so
// mods need not be given in import-graph order — a module imported by an
// earlier entry in mods resolves as soon as its own turn comes, not only on
// a first pass. A pass that resolves nothing stops the loop; what remains
// pending at that point is either a genuine UnknownModule or a true import
// cycle (spec §4.4 notes cycles are not supported: building either
// module's export scope requires the other's to already exist).
//
// It does not stop at the first failing module: every module is attempted,
// and the returned map holds one Errors entry per module that ultimately
// failed to resolve, keyed by module name (spec §7), so a multi-module
// build can report which modules failed independently of which succeeded.
func ResolveModules(variant Variant, mods []ast.Module, mode Mode) (map[ast.Ident]*ast.ResolvedModule, map[ast.Ident]*scope.Scope, map[ast.Ident]scope.Errors) {
	resolved := make(map[ast.Ident]*ast.ResolvedModule, len(mods))
	registry := make(map[ast.Ident]*scope.Scope, len(mods))
	errs := make(map[ast.Ident]scope.Errors, len(mods))

	pending := mods
	for len(pending) > 0 {
		var next []ast.Module
		progressed := false

		for _, mod := range pending {
			rm, exp, err := ResolveModule(variant, registry, mode, mod)
			if err != nil {
				errs[mod.Name] = scope.Errors{err}
				next = append(next, mod)
				continue
			}
			delete(errs, mod.Name)
			resolved[mod.Name] = rm
			registry[mod.Name] = exp
			progressed = true
		}

		if !progressed {
			break
		}
		pending = next
	}

	return resolved, registry, errs
}

// resolveImportAliases builds the alias -> export scope map a module's body
// resolves qualified names against, detecting a local alias bound to two
// different modules as ClashingImports (spec §7).
func resolveImportAliases(registry map[ast.Ident]*scope.Scope, mod ast.Module) (map[ast.Ident]*scope.Scope, *scope.Error) {
	imports := make(map[ast.Ident]*scope.Scope, len(mod.Imports))
	owner := make(map[ast.Ident]ast.Ident, len(mod.Imports))
	var errs scope.Errors

	for _, imp := range mod.Imports {
		alias := imp.Alias
		if alias == "" {
			alias = imp.ModuleName
		}
		if prev, ok := owner[alias]; ok && prev != imp.ModuleName {
			errs.Add(scope.New(scope.ClashingImports, imp.Pos, ast.Unqualified(alias),
				"%s is already used as an import alias for module %s", alias, prev))
			continue
		}
		expScope, ok := registry[imp.ModuleName]
		if !ok {
			errs.Add(scope.New(scope.UnknownModule, imp.Pos, ast.Unqualified(imp.ModuleName), "unknown module: %s", imp.ModuleName))
			continue
		}
		owner[alias] = imp.ModuleName
		imports[alias] = expScope
	}

	if errs.Err() != nil {
		// Each import is independent (unlike an Ambiguous*/Invalid* site, these
		// are not alternatives of one another), so there is no single kind
		// that fits an aggregate of them: surface the earliest one, after
		// sorting by position for determinism (spec invariant 6).
		errs.Sort()
		return nil, errs[0]
	}
	return imports, nil
}

// accessOf collects the declared AccessMode of every name a module's
// top-level declarations introduce, keyed by name, for scope.Exported.
// Like LocalScope's Pass 1, only the first alternative at an ambiguous
// declaration site is consulted.
func accessOf(decls []ast.NodeWrap[ast.Declaration]) map[ast.Ident]ast.AccessMode {
	out := make(map[ast.Ident]ast.AccessMode, len(decls))
	for _, wrap := range decls {
		if wrap.Alts.Len() == 0 {
			continue
		}
		switch d := wrap.Alts[0].(type) {
		case ast.ConstDecl:
			out[d.Name] = d.Access
		case ast.TypeDecl:
			out[d.Name] = d.Access
		case ast.VarDecl:
			for i, name := range d.Names {
				out[name] = d.Access[i]
			}
		case ast.ProcedureDecl:
			if d.Heading.Alts.Len() > 0 {
				if ph, ok := d.Heading.Alts[0].(ast.PlainHeading); ok {
					out[ph.Name] = ph.Access
				}
			}
		case ast.ForwardDecl:
			out[d.Name] = d.Access
		}
	}
	return out
}
