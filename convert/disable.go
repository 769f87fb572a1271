// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package convert

import "github.com/gogpu/xsc/ast"

// disableDeadNodes implements §4.4.6's node-disabling pass for the cases
// this AST models directly: statements that follow an unconditional
// control transfer (isDeadCode) get disableCodeGen set too, since unlike
// the reference analyzer's reachability flag, isDeadCode alone does not
// stop the generator from visiting a node — only disableCodeGen does.
func (c *Converter) disableDeadNodes(program *ast.Program) {
	for _, s := range program.GlobalStmnts {
		if fn, ok := s.(*ast.FunctionDecl); ok && fn.CodeBlock != nil {
			markDeadCode(fn.CodeBlock.Stmts)
		}
	}
}

// markDeadCode scans a statement list for an unconditional control
// transfer (return/break/continue/discard at the top level of the list,
// ignoring the contents of nested blocks) and marks every statement after
// it dead and disabled for code generation.
func markDeadCode(stmts []ast.Stmt) {
	dead := false
	for _, s := range stmts {
		if dead {
			s.Base().SetDeadCode()
			s.Base().SetDisableCodeGen()
			continue
		}
		switch stmt := s.(type) {
		case *ast.ReturnStmt:
			dead = true
		case *ast.CtrlTransferStmt:
			dead = true
		case *ast.IfStmt:
			// An if/else both of whose arms transfer control unconditionally
			// is itself a transfer, but determining that requires recursing
			// into both arms; we only recurse to disable nested dead code,
			// not to propagate deadness past the if statement itself.
			markDeadCodeInStmt(stmt.Body)
			if stmt.Else != nil {
				markDeadCodeInStmt(stmt.Else)
			}
		default:
			markDeadCodeInStmt(s)
		}
	}
}

func markDeadCodeInStmt(s ast.Stmt) {
	switch stmt := s.(type) {
	case *ast.CodeBlock:
		markDeadCode(stmt.Stmts)
	case *ast.CodeBlockStmt:
		markDeadCode(stmt.Body.Stmts)
	case *ast.ForLoopStmt:
		markDeadCodeInStmt(stmt.Body)
	case *ast.WhileLoopStmt:
		markDeadCodeInStmt(stmt.Body)
	case *ast.DoWhileLoopStmt:
		markDeadCodeInStmt(stmt.Body)
	case *ast.IfStmt:
		markDeadCodeInStmt(stmt.Body)
		if stmt.Else != nil {
			markDeadCodeInStmt(stmt.Else)
		}
	case *ast.SwitchStmt:
		for _, c := range stmt.Cases {
			markDeadCode(c.Stmts)
		}
	}
}
